// Package spoke is a radial ("pie") selection menu widget for [Ebitengine].
//
// A menu holds N selectable items spaced evenly on a ring around an anchor
// point, plus a dedicated close item that always occupies the last step.
// Opening tweens every item outward from the anchor to its ring position;
// hovering an item grows its box toward the focus size and shows a caption
// label centered under it. Tweens are driven by [gween]; the menu itself is
// pure layout and animation state, drawn with plain ebiten calls.
//
// # Quick start
//
//	menu := spoke.NewMenu(spoke.DefaultConfig())
//	menu.AddCaptionButton("Attack", attackIcon).OnActivate = func(it *spoke.Item) {
//		// ...
//	}
//	menu.OpenAt(spoke.Vec2{X: 320, Y: 240})
//
// Each frame, feed the cursor and advance the animations:
//
//	menu.PointerMove(cx, cy)
//	if clicked {
//		menu.PointerPress(cx, cy)
//	}
//	menu.Update(dt)
//	menu.Draw(screen, assets)
//
// Pressing the close item disposes the menu and fires the callbacks
// registered with [Menu.OnClose]. A disposed menu stays closed; construct a
// new one to reopen.
//
// All of spoke is single-threaded: call it only from the host's update loop.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package spoke
