package panzoom

import "math"

// WheelEvent is a single wheel gesture sample as delivered by the input
// layer. Position is the cursor location in screen space.
type WheelEvent struct {
	Position  Vec2
	DeltaX    float64
	DeltaY    float64
	Modifiers KeyModifiers
}

// ScrollClassifier decides whether a wheel event without a zoom modifier is
// an intentional scroll. Unintentional events arriving shortly after a zoom
// gesture are discarded rather than panning the view — trackpads keep
// emitting inertial samples after a pinch ends.
type ScrollClassifier interface {
	Intentional(ev WheelEvent) bool
}

// ClassifierFunc adapts a plain function to the ScrollClassifier interface.
type ClassifierFunc func(WheelEvent) bool

// Intentional calls f(ev).
func (f ClassifierFunc) Intentional(ev WheelEvent) bool {
	return f(ev)
}

// wheelStepThreshold separates discrete mouse-wheel notches from trackpad
// inertia samples. Notches arrive as large integral steps; inertia decays
// through small fractional deltas.
const wheelStepThreshold = 4.0

// defaultClassifier treats large or exactly-integral vertical deltas as
// intentional.
type defaultClassifier struct{}

func (defaultClassifier) Intentional(ev WheelEvent) bool {
	dy := math.Abs(ev.DeltaY)
	if dy >= wheelStepThreshold {
		return true
	}
	return dy > 0 && dy == math.Trunc(dy)
}

// WheelRouter classifies wheel events into zoom and pan. A held Ctrl or Meta
// modifier always zooms; everything else pans unless it falls inside the
// post-zoom cooldown without being classified as intentional.
type WheelRouter struct {
	view *View
	zoom *ZoomController
	opts *Options

	classifier ScrollClassifier
	// clock returns the engine's accumulated time in seconds.
	clock func() float64

	lastZoomAt float64
	hasZoomed  bool
}

func newWheelRouter(view *View, zoom *ZoomController, opts *Options, clock func() float64) *WheelRouter {
	return &WheelRouter{
		view:       view,
		zoom:       zoom,
		opts:       opts,
		classifier: defaultClassifier{},
		clock:      clock,
	}
}

// SetClassifier replaces the intentional-scroll classifier.
func (r *WheelRouter) SetClassifier(c ScrollClassifier) {
	if c != nil {
		r.classifier = c
	}
}

// Route dispatches one wheel event to the zoom controller or pans the view.
func (r *WheelRouter) Route(ev WheelEvent) {
	if ev.Modifiers&(ModCtrl|ModMeta) != 0 {
		dir := ZoomOut
		if ev.DeltaY < 0 {
			dir = ZoomIn
		}
		r.zoom.HandleZoom(ev.Position, dir, math.Abs(ev.DeltaY))
		r.lastZoomAt = r.clock()
		r.hasZoomed = true
		return
	}

	if !r.classifier.Intentional(ev) &&
		r.hasZoomed && r.clock()-r.lastZoomAt < r.opts.ZoomPanTransitionDelay {
		return
	}

	// A pan landing mid-tween must win over the animation, like drags do.
	r.zoom.cancelAnim()
	speed := math.Sqrt(r.opts.PanSpeed)
	pos := r.view.Position()
	r.view.SetPosition(Vec2{
		X: pos.X - ev.DeltaX*speed,
		Y: pos.Y - ev.DeltaY*speed,
	})
}
