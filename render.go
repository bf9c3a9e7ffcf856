package spoke

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureSource resolves an item's background texture path to an image.
// Returning nil skips the background for that item.
type TextureSource interface {
	Texture(path string) *ebiten.Image
}

// RenderAssets bundles what Draw needs from the host: texture lookup for
// item backgrounds and, when captions should be visible, the atlas image of
// the menu's MetricsFont.
type RenderAssets struct {
	Textures  TextureSource
	FontAtlas *ebiten.Image
}

// Draw renders the open menu onto dst. Each item's background is scaled to
// its current animated box and centered on its animated offset, the icon is
// drawn over it, and the caption label is blitted glyph by glyph while
// visible. Compositing is plain ebiten draws; there is no retained display
// list.
func (m *Menu) Draw(dst *ebiten.Image, assets RenderAssets) {
	if !m.open {
		return
	}

	for _, it := range m.ringItems() {
		m.drawItem(dst, assets, it)
	}

	if m.label.Visible && assets.FontAtlas != nil {
		if f, ok := m.cfg.Font.(*MetricsFont); ok {
			pos := m.anchor.Add(m.label.Offset)
			drawCaption(dst, assets.FontAtlas, f, m.label.Text, pos)
		}
	}
}

func (m *Menu) drawItem(dst *ebiten.Image, assets RenderAssets, it *Item) {
	pos := it.Position(m.anchor)

	if assets.Textures != nil && it.BackgroundPath != "" {
		if bg := assets.Textures.Texture(it.BackgroundPath); bg != nil {
			b := bg.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(it.BoxSize.X/float64(b.Dx()), it.BoxSize.Y/float64(b.Dy()))
			op.GeoM.Translate(pos.X, pos.Y)
			dst.DrawImage(bg, op)
		}
	}

	if it.Icon != nil {
		b := it.Icon.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			m.anchor.X+it.Offset.X-float64(b.Dx())/2,
			m.anchor.Y+it.Offset.Y-float64(b.Dy())/2,
		)
		dst.DrawImage(it.Icon, op)
	}
}

// drawCaption blits the caption's glyphs from the font atlas, advancing the
// pen the same way MeasureCaption counts width so the label lands where the
// measurement said it would.
func drawCaption(dst, atlas *ebiten.Image, f *MetricsFont, text string, pos Vec2) {
	penX := pos.X
	for _, r := range text {
		g := f.glyph(r)
		if g == nil {
			continue
		}
		src := atlas.SubImage(image.Rect(
			int(g.x), int(g.y),
			int(g.x)+int(g.width), int(g.y)+int(g.height),
		)).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(penX, pos.Y)
		dst.DrawImage(src, op)
		penX += float64(g.width) + float64(g.xAdvance)
	}
}
