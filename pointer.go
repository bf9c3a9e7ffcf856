package spoke

// Pointer bridge. Hosts with their own hit testing can call
// Menu.PointerEnter/PointerExit/Press directly; hosts that just have a cursor
// position feed it through these helpers instead. Hit testing is rectangular
// over each item's current animated box.

// hitItem returns the topmost item under (x, y), or nil. The close item is
// tested last so it behaves like any other ring member.
func (m *Menu) hitItem(x, y float64) *Item {
	if !m.open {
		return nil
	}
	for _, it := range m.ringItems() {
		if it.Bounds(m.anchor).Contains(x, y) {
			return it
		}
	}
	return nil
}

// PointerMove processes a cursor position: when the item under the cursor
// changes, the previous item receives an exit and the new one an enter. At
// most one item is hovered at a time.
func (m *Menu) PointerMove(x, y float64) {
	if !m.open {
		return
	}
	target := m.hitItem(x, y)
	if target == m.hovered {
		return
	}
	if m.hovered != nil {
		m.PointerExit(m.hovered)
	}
	if target != nil {
		m.PointerEnter(target)
	}
}

// PointerPress activates the item under the cursor, if any. Returns true
// when an item was pressed.
func (m *Menu) PointerPress(x, y float64) bool {
	it := m.hitItem(x, y)
	if it == nil {
		return false
	}
	m.Press(it)
	return true
}
