package panzoom

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout the
// API. Depending on context it holds screen-space pixels or world-space
// coordinates; the two are never mixed without an explicit conversion.
type Vec2 struct {
	X, Y float64
}

// Size describes the dimensions of a container or content box.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// VisibleRect is the world-space window currently shown inside the container.
// It is always derived from the committed position, scale, and container size,
// never stored as an independent source of truth.
type VisibleRect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the visible rectangle in world units.
func (v VisibleRect) Width() float64 {
	return v.Right - v.Left
}

// Height returns the vertical extent of the visible rectangle in world units.
func (v VisibleRect) Height() float64 {
	return v.Bottom - v.Top
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
