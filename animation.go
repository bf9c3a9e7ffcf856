package spoke

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// sizeDirection tags which size tween, if any, is active on an item.
type sizeDirection uint8

const (
	sizeIdle sizeDirection = iota
	sizeGrow
	sizeShrink
)

// itemTweens holds the animation slots for a single item: a one-shot move
// pair played at open, and at most one size pair at any time. Keeping grow
// and shrink in the same slot is what makes them mutually exclusive.
type itemTweens struct {
	moveX, moveY *gween.Tween
	sizeW, sizeH *gween.Tween
	sizeDir      sizeDirection
}

// Animator advances the tweens of a menu's items. It wraps gween the same way
// the rest of the engine does: no global manager, the owner calls Update(dt)
// once per frame and reads the interpolated values afterwards.
type Animator struct {
	slots map[*Item]*itemTweens
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{slots: make(map[*Item]*itemTweens)}
}

func (a *Animator) slot(it *Item) *itemTweens {
	s := a.slots[it]
	if s == nil {
		s = &itemTweens{}
		a.slots[it] = s
	}
	return s
}

// StartMove begins interpolating the item's offset from its current value to
// target over duration seconds. A second move is never queued while one is
// still running; repeated open requests therefore leave the placement tween
// untouched.
func (a *Animator) StartMove(it *Item, target Vec2, duration float64) {
	s := a.slot(it)
	if s.moveX != nil {
		return
	}
	d := float32(duration)
	s.moveX = gween.New(float32(it.Offset.X), float32(target.X), d, ease.Linear)
	s.moveY = gween.New(float32(it.Offset.Y), float32(target.Y), d, ease.Linear)
}

// MoveActive reports whether the item's placement tween is still running.
func (a *Animator) MoveActive(it *Item) bool {
	s := a.slots[it]
	return s != nil && s.moveX != nil
}

// FocusIn starts growing the item's box toward focusSize×focusSize. A running
// shrink tween is cancelled first; if a grow tween is already running it is
// left alone. The grow starts from the box's current size, so a hover that
// interrupts a shrink picks up mid-size without snapping.
func (a *Animator) FocusIn(it *Item, focusSize, duration float64) {
	s := a.slot(it)
	if s.sizeDir == sizeShrink {
		s.sizeW, s.sizeH = nil, nil
		s.sizeDir = sizeIdle
	}
	if s.sizeDir == sizeGrow {
		return
	}
	d := float32(duration)
	s.sizeW = gween.New(float32(it.BoxSize.X), float32(focusSize), d, ease.Linear)
	s.sizeH = gween.New(float32(it.BoxSize.Y), float32(focusSize), d, ease.Linear)
	s.sizeDir = sizeGrow
}

// FocusOut is the mirror of FocusIn: cancel a running grow, then shrink the
// box toward normalSize×normalSize unless a shrink is already running.
func (a *Animator) FocusOut(it *Item, normalSize, duration float64) {
	s := a.slot(it)
	if s.sizeDir == sizeGrow {
		s.sizeW, s.sizeH = nil, nil
		s.sizeDir = sizeIdle
	}
	if s.sizeDir == sizeShrink {
		return
	}
	d := float32(duration)
	s.sizeW = gween.New(float32(it.BoxSize.X), float32(normalSize), d, ease.Linear)
	s.sizeH = gween.New(float32(it.BoxSize.Y), float32(normalSize), d, ease.Linear)
	s.sizeDir = sizeShrink
}

// Growing reports whether a grow tween is running on the item.
func (a *Animator) Growing(it *Item) bool {
	s := a.slots[it]
	return s != nil && s.sizeDir == sizeGrow
}

// Shrinking reports whether a shrink tween is running on the item.
func (a *Animator) Shrinking(it *Item) bool {
	s := a.slots[it]
	return s != nil && s.sizeDir == sizeShrink
}

// Cancel drops all of the item's tweens. Used when the menu tears down.
func (a *Animator) Cancel(it *Item) {
	delete(a.slots, it)
}

// CancelAll drops every tween.
func (a *Animator) CancelAll() {
	clear(a.slots)
}

// Update advances all running tweens by dt seconds and writes the
// interpolated values into the items. Finished tweens are dropped; the
// slot itself stays until Cancel so hover state survives a completed move.
func (a *Animator) Update(dt float32) {
	for it, s := range a.slots {
		if it.IsDisposed() {
			delete(a.slots, it)
			continue
		}
		if s.moveX != nil {
			x, doneX := s.moveX.Update(dt)
			y, doneY := s.moveY.Update(dt)
			it.Offset.X = float64(x)
			it.Offset.Y = float64(y)
			if doneX && doneY {
				s.moveX, s.moveY = nil, nil
			}
		}
		if s.sizeW != nil {
			w, doneW := s.sizeW.Update(dt)
			h, doneH := s.sizeH.Update(dt)
			it.BoxSize.X = float64(w)
			it.BoxSize.Y = float64(h)
			if doneW && doneH {
				s.sizeW, s.sizeH = nil, nil
				s.sizeDir = sizeIdle
			}
		}
	}
}
