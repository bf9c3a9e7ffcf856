package spoke

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Menu is a radial selection menu: N items spaced evenly on a ring around an
// anchor point, plus a dedicated close item that always occupies the last
// step of the ring. A menu is constructed closed, opened through one of the
// Open variants, and torn down by Close. Once closed it is done; build a new
// menu to show it again.
//
// All methods must be called from the host's single UI thread.
type Menu struct {
	// Parent reports the surface size for the centered open variants.
	// Optional; without it those variants keep the previous anchor.
	Parent ParentContainer

	// Projector resolves attached entities to screen positions. Optional.
	Projector Projector

	cfg       Config
	items     []*Item
	closeItem *Item

	open     bool
	disposed bool
	anchor   Vec2

	attached    EntityID
	hasAttached bool

	animator *Animator
	label    CaptionLabel
	hovered  *Item

	observers observerRegistry
}

// NewMenu creates a closed menu with the given configuration. The dedicated
// close item is created immediately so the ring is never empty.
func NewMenu(cfg Config) *Menu {
	m := &Menu{
		cfg:      cfg,
		animator: NewAnimator(),
	}
	m.closeItem = newCloseItem("Close")
	m.initItem(m.closeItem)
	return m
}

// initItem applies menu defaults to a freshly added item.
func (m *Menu) initItem(it *Item) {
	it.BoxSize = Vec2{m.cfg.NormalSize, m.cfg.NormalSize}
	if it.BackgroundPath == "" {
		it.BackgroundPath = m.cfg.BackgroundPath
	}
}

// --- Item management ---

// AddButton adds an item to the menu and returns it for further
// configuration. Insertion order is angular order. Panics if item is nil or
// already disposed. Adding to an open menu recomputes the ring; items whose
// placement tween is still running keep it.
func (m *Menu) AddButton(item *Item) *Item {
	if item == nil {
		panic("spoke: cannot add nil item")
	}
	if item.IsDisposed() {
		panic("spoke: cannot add disposed item")
	}
	m.initItem(item)
	m.items = append(m.items, item)
	if m.open {
		m.layout()
	}
	return item
}

// AddCaptionButton creates an item from a caption and optional icon, adds it,
// and returns it.
func (m *Menu) AddCaptionButton(caption string, icon *ebiten.Image) *Item {
	return m.AddButton(NewIconItem(caption, icon))
}

// Items returns the regular items in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (m *Menu) Items() []*Item {
	return m.items
}

// CloseItem returns the menu's dedicated close item.
func (m *Menu) CloseItem() *Item {
	return m.closeItem
}

// ringItems returns regular items followed by the close item, the order used
// for angular layout.
func (m *Menu) ringItems() []*Item {
	all := make([]*Item, 0, len(m.items)+1)
	all = append(all, m.items...)
	return append(all, m.closeItem)
}

// --- Opening ---

// IsOpen reports whether the menu is currently open.
func (m *Menu) IsOpen() bool {
	return m.open
}

// Anchor returns the menu's current screen anchor point.
func (m *Menu) Anchor() Vec2 {
	return m.anchor
}

// Open shows the menu at its current anchor. No-op if already open.
func (m *Menu) Open() {
	if m.open || m.disposed {
		return
	}
	m.show()
}

// OpenAt shows the menu anchored at the given screen position.
func (m *Menu) OpenAt(pos Vec2) {
	if m.open || m.disposed {
		return
	}
	m.anchor = pos
	m.show()
}

// OpenCentered shows the menu at the center of the parent container. Without
// a parent the anchor is left where it was.
func (m *Menu) OpenCentered() {
	m.OpenCenteredAt(Vec2{0.5, 0.5})
}

// OpenCenteredLeft shows the menu centered vertically in the left half of
// the parent container.
func (m *Menu) OpenCenteredLeft() {
	m.OpenCenteredAt(Vec2{0.25, 0.5})
}

// OpenCenteredAt shows the menu at the given fractional point of the parent
// container, e.g. {0.5, 0.5} for the center. Without a parent the anchor is
// left where it was.
func (m *Menu) OpenCenteredAt(fraction Vec2) {
	if m.open || m.disposed {
		return
	}
	if m.Parent != nil {
		w, h := m.Parent.Size()
		m.anchor = Vec2{w * fraction.X, h * fraction.Y}
	}
	m.show()
}

// OpenAttached shows the menu anchored to a world entity. The entity stays
// attached until the menu closes; Update re-resolves its screen position
// every frame through the Projector.
func (m *Menu) OpenAttached(id EntityID) {
	if m.open || m.disposed {
		return
	}
	m.attach(id)
	m.resolveAttachedAnchor()
	m.show()
}

// show runs the layout pass and flips the menu open. Items start from a zero
// offset at the anchor and tween outward to their ring positions.
func (m *Menu) show() {
	m.open = true
	m.layout()
}

// layout computes each ring item's polar target and starts its placement
// tween. The close item counts toward the angular division with its own
// index.
func (m *Menu) layout() {
	all := m.ringItems()
	n := len(all)
	distance := RingDistance(n, 0, m.cfg.NormalSize, m.cfg.FocusSize)
	for i, it := range all {
		target := PolarOffset(StepAngle(i, n), distance)
		m.animator.StartMove(it, target, m.cfg.MoveTime)
	}
}

// --- Entity attachment ---

// AttachEntity anchors the menu to a world entity and notifies attached
// subscribers. Attaching while another entity is attached detaches it first.
func (m *Menu) AttachEntity(id EntityID) {
	m.attach(id)
}

// DetachEntity clears the attached entity, if any, and notifies detached
// subscribers. The menu keeps its last resolved anchor.
func (m *Menu) DetachEntity() {
	if !m.hasAttached {
		return
	}
	prev := m.attached
	m.hasAttached = false
	m.attached = 0
	m.observers.fireDetached(prev)
}

// AttachedEntity returns the attached entity and whether one is attached.
func (m *Menu) AttachedEntity() (EntityID, bool) {
	return m.attached, m.hasAttached
}

func (m *Menu) attach(id EntityID) {
	if m.hasAttached {
		if m.attached == id {
			return
		}
		m.DetachEntity()
	}
	m.attached = id
	m.hasAttached = true
	m.observers.fireAttached(id)
}

func (m *Menu) resolveAttachedAnchor() {
	if !m.hasAttached || m.Projector == nil {
		return
	}
	if pos, ok := m.Projector.EntityScreenPosition(m.attached); ok {
		m.anchor = pos
	}
}

// --- Hover and activation ---

// PointerEnter gives hover focus to the item: its box grows toward the focus
// size and the caption label is measured, repositioned, and shown. The host
// delivers at most one enter without a prior exit.
func (m *Menu) PointerEnter(it *Item) {
	if !m.open || it.IsDisposed() {
		return
	}
	it.hovered = true
	m.hovered = it
	m.animator.FocusIn(it, m.cfg.FocusSize, m.cfg.FocusTime)
	if m.cfg.ActionVisible {
		width := MeasureCaption(m.cfg.Font, it.Caption)
		count := len(m.items) + 1
		distance := RingDistance(count, labelRingPad, m.cfg.NormalSize, m.cfg.FocusSize)
		m.label.Text = it.Caption
		m.label.Offset = labelOffset(width, distance)
		m.label.Visible = true
	}
}

// PointerExit removes hover focus from the item: its box shrinks back toward
// the normal size and the label is hidden.
func (m *Menu) PointerExit(it *Item) {
	if !m.open || it.IsDisposed() {
		return
	}
	it.hovered = false
	if m.hovered == it {
		m.hovered = nil
	}
	m.animator.FocusOut(it, m.cfg.NormalSize, m.cfg.FocusTime)
	m.label.Visible = false
}

// Press activates the item: the close item disposes the menu, a regular item
// runs its OnActivate callback.
func (m *Menu) Press(it *Item) {
	if !m.open || it.IsDisposed() {
		return
	}
	if it.IsClose() {
		m.Close()
		return
	}
	if it.OnActivate != nil {
		it.OnActivate(it)
	}
}

// HoveredItem returns the item currently holding hover focus, or nil.
func (m *Menu) HoveredItem() *Item {
	return m.hovered
}

// Label returns the caption label's current state.
func (m *Menu) Label() CaptionLabel {
	return m.label
}

// --- Per-frame update ---

// Update advances the menu by dt seconds: an attached entity's anchor is
// re-resolved, then all running tweens progress. Item screen positions are
// derived from the animated offsets afterwards via Item.Position, so a draw
// step in the same frame always sees this frame's values.
func (m *Menu) Update(dt float32) {
	if !m.open {
		return
	}
	m.resolveAttachedAnchor()
	m.animator.Update(dt)
}

// --- Closing ---

// Close disposes the menu: closed subscribers are notified first, then all
// outstanding tweens are cancelled and every item is released. Idempotent.
func (m *Menu) Close() {
	if m.disposed {
		return
	}
	m.open = false
	m.disposed = true
	m.observers.fireClosed()
	if m.hasAttached {
		prev := m.attached
		m.hasAttached = false
		m.attached = 0
		m.observers.fireDetached(prev)
	}
	m.animator.CancelAll()
	for _, it := range m.items {
		it.dispose()
	}
	m.items = nil
	m.closeItem.dispose()
	m.hovered = nil
	m.label = CaptionLabel{}
}

// IsDisposed reports whether the menu has been closed and torn down.
func (m *Menu) IsDisposed() bool {
	return m.disposed
}

// --- Observers ---

type closedHandler struct {
	id uint32
	fn func()
}

type entityHandler struct {
	id uint32
	fn func(EntityID)
}

type observerRegistry struct {
	closed   []closedHandler
	attached []entityHandler
	detached []entityHandler
	nextID   uint32
}

func (r *observerRegistry) fireClosed() {
	for _, h := range r.closed {
		h.fn()
	}
}

func (r *observerRegistry) fireAttached(id EntityID) {
	for _, h := range r.attached {
		h.fn(id)
	}
}

func (r *observerRegistry) fireDetached(id EntityID) {
	for _, h := range r.detached {
		h.fn(id)
	}
}

// menuEvent identifies an observable menu transition.
type menuEvent uint8

const (
	eventClosed menuEvent = iota
	eventAttached
	eventDetached
)

// Subscription allows removing a registered menu observer.
type Subscription struct {
	id    uint32
	reg   *observerRegistry
	event menuEvent
}

// Remove unregisters the observer. Safe to call more than once.
func (s Subscription) Remove() {
	if s.reg == nil {
		return
	}
	switch s.event {
	case eventClosed:
		s.reg.closed = removeHandler(s.reg.closed, s.id, func(h closedHandler) uint32 { return h.id })
	case eventAttached:
		s.reg.attached = removeHandler(s.reg.attached, s.id, func(h entityHandler) uint32 { return h.id })
	case eventDetached:
		s.reg.detached = removeHandler(s.reg.detached, s.id, func(h entityHandler) uint32 { return h.id })
	}
}

func removeHandler[H any](handlers []H, id uint32, idOf func(H) uint32) []H {
	for i, h := range handlers {
		if idOf(h) == id {
			return append(handlers[:i], handlers[i+1:]...)
		}
	}
	return handlers
}

// OnClose registers a callback fired when the menu is disposed, before item
// resources are released. Multiple independent subscribers are supported.
func (m *Menu) OnClose(fn func()) Subscription {
	m.observers.nextID++
	id := m.observers.nextID
	m.observers.closed = append(m.observers.closed, closedHandler{id: id, fn: fn})
	return Subscription{id: id, reg: &m.observers, event: eventClosed}
}

// OnAttached registers a callback fired when an entity is attached.
func (m *Menu) OnAttached(fn func(EntityID)) Subscription {
	m.observers.nextID++
	id := m.observers.nextID
	m.observers.attached = append(m.observers.attached, entityHandler{id: id, fn: fn})
	return Subscription{id: id, reg: &m.observers, event: eventAttached}
}

// OnDetached registers a callback fired when the attached entity is cleared.
func (m *Menu) OnDetached(fn func(EntityID)) Subscription {
	m.observers.nextID++
	id := m.observers.nextID
	m.observers.detached = append(m.observers.detached, entityHandler{id: id, fn: fn})
	return Subscription{id: id, reg: &m.observers, event: eventDetached}
}
