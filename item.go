package spoke

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// itemIDCounter is a plain counter (no atomic — spoke is single-threaded).
var itemIDCounter uint32

func nextItemID() uint32 {
	itemIDCounter++
	return itemIDCounter
}

// Item is one selectable wedge of a radial menu: a caption, an optional icon,
// a background texture, and the animated box geometry the menu positions each
// frame. Items are created through NewItem/NewIconItem or Menu.AddCaptionButton
// and owned by the menu once added; outside the tween engine, only the menu
// mutates Offset and BoxSize.
type Item struct {
	// Identity
	ID      uint32
	Caption string

	// Visuals
	Icon           *ebiten.Image
	BackgroundPath string

	// Geometry. Offset is the current animated center-relative offset; the
	// on-screen position is derived from it every frame, never stored.
	BoxSize Vec2
	Offset  Vec2

	// OnActivate runs when the item is pressed. Unused on the close item,
	// whose activation always disposes the menu.
	OnActivate func(*Item)

	// UserData is an arbitrary caller-attached value.
	UserData any

	close    bool
	hovered  bool
	disposed bool
}

// NewItem creates a menu item with the given caption and no icon.
func NewItem(caption string) *Item {
	return &Item{
		ID:      nextItemID(),
		Caption: caption,
	}
}

// NewIconItem creates a menu item with a caption and an icon image.
func NewIconItem(caption string, icon *ebiten.Image) *Item {
	it := NewItem(caption)
	it.Icon = icon
	return it
}

// newCloseItem creates the dedicated close item. One exists per menu.
func newCloseItem(caption string) *Item {
	it := NewItem(caption)
	it.close = true
	return it
}

// IsClose reports whether this is the menu's dedicated close item.
func (it *Item) IsClose() bool {
	return it.close
}

// Hovered reports whether the pointer is currently over this item.
func (it *Item) Hovered() bool {
	return it.hovered
}

// Position returns the top-left screen position of the item's box for the
// given menu anchor: the box is centered on the animated offset point.
func (it *Item) Position(anchor Vec2) Vec2 {
	return Vec2{
		X: anchor.X + it.Offset.X - it.BoxSize.X/2,
		Y: anchor.Y + it.Offset.Y - it.BoxSize.Y/2,
	}
}

// Bounds returns the item's screen rectangle for the given menu anchor.
func (it *Item) Bounds(anchor Vec2) Rect {
	pos := it.Position(anchor)
	return Rect{X: pos.X, Y: pos.Y, Width: it.BoxSize.X, Height: it.BoxSize.Y}
}

// dispose releases the item's references. Idempotent.
func (it *Item) dispose() {
	if it.disposed {
		return
	}
	it.disposed = true
	it.ID = 0
	it.Icon = nil
	it.OnActivate = nil
	it.UserData = nil
	it.hovered = false
}

// IsDisposed returns true if this item has been disposed.
func (it *Item) IsDisposed() bool {
	return it.disposed
}
