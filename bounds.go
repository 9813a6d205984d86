package panzoom

import "math"

// boundsDeadBand is the threshold below which a measured bounds change is
// ignored, preventing oscillation from sub-pixel jitter.
const boundsDeadBand = 1.0

// BoundsTracker measures the world-space box enclosing all tracked content.
// It is the only writer of the bounds; every other component reads it through
// Bounds(). A scan is requested with Invalidate and runs on the next update
// tick; if the stage's content layer is not ready yet, the scan retries on
// the following tick instead of giving up.
type BoundsTracker struct {
	stage Stage
	view  *View

	bounds  Rect
	pending bool

	// manualWidth and manualHeight override the measured envelope when
	// non-zero.
	manualWidth  float64
	manualHeight float64

	// onChange is invoked after a committed bounds change. Set once by the
	// engine during wiring.
	onChange func(Rect)
}

// newBoundsTracker creates a tracker with degenerate unit bounds and a scan
// already pending for the first tick.
func newBoundsTracker(stage Stage, view *View, manualWidth, manualHeight float64) *BoundsTracker {
	return &BoundsTracker{
		stage:        stage,
		view:         view,
		bounds:       Rect{Width: 1, Height: 1},
		pending:      true,
		manualWidth:  manualWidth,
		manualHeight: manualHeight,
	}
}

// Bounds returns the last committed content bounds.
func (b *BoundsTracker) Bounds() Rect {
	return b.bounds
}

// Invalidate requests a rescan on the next update tick. Multiple requests
// within one tick collapse into a single scan.
func (b *BoundsTracker) Invalidate() {
	b.pending = true
}

// update runs a pending scan. Called once per tick by the engine.
func (b *BoundsTracker) update() {
	if !b.pending {
		return
	}
	if !b.stage.ContentReady() {
		// Content layer not mounted yet; keep pending and retry next tick.
		return
	}
	b.pending = false
	b.scan()
}

// scan measures all content nodes and commits the envelope if it moved past
// the dead band. Zero nodes leave the stored bounds untouched.
func (b *BoundsTracker) scan() {
	nodes := b.stage.ContentNodes()
	if len(nodes) == 0 {
		return
	}

	pos := b.view.Position()
	scale := b.view.Scale()

	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for _, n := range nodes {
		r := n.ScreenRect()
		// Convert the screen-space box to world coordinates under the
		// current transform.
		wx := (r.X - pos.X) / scale
		wy := (r.Y - pos.Y) / scale
		ww := r.Width / scale
		wh := r.Height / scale

		minX = math.Min(minX, wx)
		minY = math.Min(minY, wy)
		maxX = math.Max(maxX, wx+ww)
		maxY = math.Max(maxY, wy+wh)
	}

	width := maxX - minX
	height := maxY - minY
	if b.manualWidth > 0 {
		width = b.manualWidth
	}
	if b.manualHeight > 0 {
		height = b.manualHeight
	}

	// Candidate is anchored at the world origin; a floor of 1 on each
	// dimension prevents division by zero in scale computation.
	candidate := Rect{
		Width:  math.Max(width, 1),
		Height: math.Max(height, 1),
	}

	if !exceedsDeadBand(b.bounds, candidate) {
		return
	}
	b.bounds = candidate
	if b.onChange != nil {
		b.onChange(candidate)
	}
}

// exceedsDeadBand reports whether any field of next differs from prev by more
// than the dead band.
func exceedsDeadBand(prev, next Rect) bool {
	return math.Abs(next.X-prev.X) > boundsDeadBand ||
		math.Abs(next.Y-prev.Y) > boundsDeadBand ||
		math.Abs(next.Width-prev.Width) > boundsDeadBand ||
		math.Abs(next.Height-prev.Height) > boundsDeadBand
}
