package spoke

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the
// API. The coordinate system has its origin at the top-left, with Y increasing
// downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EntityID identifies a host world entity a menu can be anchored to. The menu
// never interprets the value; it only stores it and hands it to a Projector.
type EntityID uint32

// Default configuration values applied by DefaultConfig.
const (
	DefaultNormalSize    = 50.0
	DefaultFocusSize     = 64.0
	DefaultMoveTime      = 0.3
	DefaultFocusTime     = 0.25
	DefaultActionVisible = true
)

// Config holds the tunable presentation values of a menu. Zero-value fields
// are not filled in by NewMenu; start from DefaultConfig and override.
type Config struct {
	// NormalSize and FocusSize are the item box edge lengths in pixels for
	// the resting and hover-focused states.
	NormalSize float64
	FocusSize  float64

	// MoveTime is the duration in seconds of the open placement tween;
	// FocusTime the duration of a grow/shrink tween.
	MoveTime  float64
	FocusTime float64

	// ActionVisible controls whether the caption label is shown while an
	// item has hover focus.
	ActionVisible bool

	// BackgroundPath is the theme-resolved texture path applied to items
	// that do not set their own.
	BackgroundPath string

	// Font supplies per-glyph metrics for caption measurement. Optional;
	// without it the label is placed with zero measured width.
	Font GlyphMetrics
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		NormalSize:    DefaultNormalSize,
		FocusSize:     DefaultFocusSize,
		MoveTime:      DefaultMoveTime,
		FocusTime:     DefaultFocusTime,
		ActionVisible: DefaultActionVisible,
	}
}

// ParentContainer reports the size of the surface the menu is laid out on.
// The host's root container or screen satisfies this.
type ParentContainer interface {
	Size() (width, height float64)
}

// Projector converts a world entity into a screen position. Hosts that attach
// menus to world entities provide one; the second return value is false when
// the entity cannot currently be projected.
type Projector interface {
	EntityScreenPosition(id EntityID) (Vec2, bool)
}
