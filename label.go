package spoke

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// GlyphMetrics reports per-glyph sizing for caption measurement. ok is false
// when the font has no entry for the rune; such glyphs contribute nothing to
// a measurement.
type GlyphMetrics interface {
	Glyph(r rune) (width, advance float64, ok bool)
}

// MeasureCaption returns the pixel width of text under the given metrics:
// the sum of width+advance over each rune. Runes without metrics are skipped.
// A nil font measures everything as zero.
func MeasureCaption(m GlyphMetrics, text string) float64 {
	if m == nil {
		return 0
	}
	var total float64
	for _, r := range text {
		w, adv, ok := m.Glyph(r)
		if !ok {
			continue
		}
		total += w + adv
	}
	return total
}

// Label placement constants. The horizontal shift is a quarter of the
// measured width, not half — the widget has always biased the caption
// slightly right of true center and callers rely on where it lands.
const (
	labelBaseY   = 18.5
	labelRingPad = 4.5
)

// labelOffset returns the caption label's anchor-relative offset for a
// measured text width and the label's ring distance.
func labelOffset(width, distance float64) Vec2 {
	return Vec2{X: -width / 4, Y: labelBaseY + distance}
}

// CaptionLabel is the single shared caption display of a menu. It is shown
// and repositioned while an item holds hover focus and hidden otherwise.
type CaptionLabel struct {
	Text    string
	Offset  Vec2
	Visible bool
}

// --- MetricsFont ---

const asciiGlyphCount = 128

// metricsGlyph stores one glyph's measurement and atlas region.
type metricsGlyph struct {
	id       rune
	x, y     uint16
	width    uint16
	height   uint16
	xAdvance int16
}

// MetricsFont is a glyph-metrics table parsed from BMFont .fnt text data.
// It carries enough atlas geometry to blit glyphs in Menu.Draw, but its
// primary job is implementing GlyphMetrics for caption measurement.
type MetricsFont struct {
	lineHeight float64

	asciiGlyphs [asciiGlyphCount]metricsGlyph // fixed array for ASCII, zero-alloc lookup
	asciiSet    [asciiGlyphCount]bool
	extGlyphs   map[rune]*metricsGlyph
}

// Glyph returns the width and advance of the glyph for r.
func (f *MetricsFont) Glyph(r rune) (width, advance float64, ok bool) {
	g := f.glyph(r)
	if g == nil {
		return 0, 0, false
	}
	return float64(g.width), float64(g.xAdvance), true
}

// LineHeight returns the vertical distance between baselines.
func (f *MetricsFont) LineHeight() float64 {
	return f.lineHeight
}

func (f *MetricsFont) glyph(r rune) *metricsGlyph {
	if r >= 0 && r < asciiGlyphCount {
		if f.asciiSet[r] {
			return &f.asciiGlyphs[r]
		}
		return nil
	}
	if g, ok := f.extGlyphs[r]; ok {
		return g
	}
	return nil
}

// LoadMetricsFont parses BMFont .fnt text-format data into a MetricsFont.
// Only the fields the menu needs are read; kerning and page records are
// ignored.
func LoadMetricsFont(fntData []byte) (*MetricsFont, error) {
	f := &MetricsFont{}

	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	var charCount int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		fields := parseFields(rest)

		switch tag {
		case "common":
			if v, ok := fields["lineHeight"]; ok {
				f.lineHeight, _ = strconv.ParseFloat(v, 64)
			}

		case "char":
			charCount++
			g := metricsGlyph{}
			if v, ok := fields["id"]; ok {
				id, _ := strconv.Atoi(v)
				g.id = rune(id)
			}
			if v, ok := fields["x"]; ok {
				val, _ := strconv.Atoi(v)
				g.x = uint16(val)
			}
			if v, ok := fields["y"]; ok {
				val, _ := strconv.Atoi(v)
				g.y = uint16(val)
			}
			if v, ok := fields["width"]; ok {
				val, _ := strconv.Atoi(v)
				g.width = uint16(val)
			}
			if v, ok := fields["height"]; ok {
				val, _ := strconv.Atoi(v)
				g.height = uint16(val)
			}
			if v, ok := fields["xadvance"]; ok {
				val, _ := strconv.Atoi(v)
				g.xAdvance = int16(val)
			}

			if g.id >= 0 && g.id < asciiGlyphCount {
				f.asciiGlyphs[g.id] = g
				f.asciiSet[g.id] = true
			} else {
				if f.extGlyphs == nil {
					f.extGlyphs = make(map[rune]*metricsGlyph)
				}
				g := g // copy for heap allocation
				f.extGlyphs[g.id] = &g
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("spoke: error reading .fnt data: %w", err)
	}

	if charCount == 0 {
		return nil, fmt.Errorf("spoke: .fnt data has no char definitions")
	}

	return f, nil
}

// splitTag splits a BMFont line into its tag and the rest of the line.
func splitTag(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx+1:]
}

// parseFields parses "key=value key=value ..." into a map.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Fields(s) {
		eq := strings.IndexByte(part, '=')
		if eq == -1 {
			continue
		}
		key := part[:eq]
		val := part[eq+1:]
		// Strip quotes from values like face="Arial"
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		fields[key] = val
	}
	return fields
}
