package panzoom

import (
	"math"
	"testing"
)

// newWheelFixture wires a wheel router with a manually advanced clock.
func newWheelFixture(opts Options) (*WheelRouter, *View, *float64) {
	stage := newFakeStage(true)
	view := newTestView(Size{Width: 800, Height: 600})
	tr := newBoundsTracker(stage, view, 0, 0)
	tr.bounds = Rect{Width: 1000, Height: 500}
	zoom := newZoomController(view, tr, &opts)
	now := new(float64)
	r := newWheelRouter(view, zoom, &opts, func() float64 { return *now })
	return r, view, now
}

func TestWheelCtrlRoutesToZoom(t *testing.T) {
	opts := DefaultOptions()
	opts.ZoomSpeed = 5
	r, view, _ := newWheelFixture(opts)

	r.Route(WheelEvent{Position: Vec2{X: 100, Y: 100}, DeltaY: -10, Modifiers: ModCtrl})
	if !approxEqual(view.Scale(), 3, epsilon) {
		t.Errorf("Scale = %f, want 3 (ctrl-wheel zooms in)", view.Scale())
	}
}

func TestWheelMetaRoutesToZoom(t *testing.T) {
	opts := DefaultOptions()
	opts.ZoomSpeed = 5
	r, view, _ := newWheelFixture(opts)

	r.Route(WheelEvent{Position: Vec2{}, DeltaY: 10, Modifiers: ModMeta})
	if view.Scale() >= 1 {
		t.Errorf("Scale = %f, want < 1 (positive delta zooms out)", view.Scale())
	}
}

func TestWheelPanAppliesSqrtPanSpeed(t *testing.T) {
	opts := DefaultOptions()
	opts.PanSpeed = 4
	r, view, _ := newWheelFixture(opts)

	// Integral deltas classify as intentional.
	r.Route(WheelEvent{DeltaX: 3, DeltaY: 5})
	want := Vec2{X: -3 * math.Sqrt(4), Y: -5 * math.Sqrt(4)}
	if view.Position() != want {
		t.Errorf("Position = %v, want %v", view.Position(), want)
	}
}

func TestWheelCooldownDiscardsUnintentionalPan(t *testing.T) {
	opts := DefaultOptions()
	opts.ZoomPanTransitionDelay = 0.1
	r, view, now := newWheelFixture(opts)
	r.SetClassifier(ClassifierFunc(func(WheelEvent) bool { return false }))

	r.Route(WheelEvent{Position: Vec2{X: 50, Y: 50}, DeltaY: -10, Modifiers: ModCtrl})
	posAfterZoom := view.Position()

	// 50ms later, inside the 100ms cooldown: discarded.
	*now = 0.05
	r.Route(WheelEvent{DeltaY: 5})
	if view.Position() != posAfterZoom {
		t.Errorf("Position = %v, want unchanged %v", view.Position(), posAfterZoom)
	}

	// Past the cooldown the same event pans.
	*now = 0.2
	r.Route(WheelEvent{DeltaY: 5})
	if view.Position() == posAfterZoom {
		t.Error("pan after cooldown did not move the view")
	}
}

func TestWheelIntentionalPanBypassesCooldown(t *testing.T) {
	opts := DefaultOptions()
	opts.ZoomPanTransitionDelay = 0.1
	r, view, now := newWheelFixture(opts)
	r.SetClassifier(ClassifierFunc(func(WheelEvent) bool { return true }))

	r.Route(WheelEvent{Position: Vec2{X: 50, Y: 50}, DeltaY: -10, Modifiers: ModCtrl})
	posAfterZoom := view.Position()

	*now = 0.05
	r.Route(WheelEvent{DeltaY: 5})
	if view.Position() == posAfterZoom {
		t.Error("intentional pan inside cooldown was discarded")
	}
}

func TestWheelNoCooldownBeforeFirstZoom(t *testing.T) {
	opts := DefaultOptions()
	r, view, _ := newWheelFixture(opts)
	r.SetClassifier(ClassifierFunc(func(WheelEvent) bool { return false }))

	// No zoom has happened; even an unintentional event pans.
	r.Route(WheelEvent{DeltaY: 5})
	if view.Position() == (Vec2{}) {
		t.Error("pan before any zoom was discarded")
	}
}

func TestWheelPanCancelsRunningAnimation(t *testing.T) {
	opts := DefaultOptions()
	r, view, _ := newWheelFixture(opts)
	view.SetTransform(Vec2{X: -400, Y: 0}, 1.8)

	r.zoom.ResetZoom(true)
	if r.zoom.anim == nil {
		t.Fatal("animated reset did not start a tween")
	}

	r.Route(WheelEvent{DeltaX: 3, DeltaY: 5})
	if r.zoom.anim != nil {
		t.Error("wheel pan left the reset tween running")
	}

	// A discarded event must not cancel the animation.
	r2, view2, _ := newWheelFixture(opts)
	r2.SetClassifier(ClassifierFunc(func(WheelEvent) bool { return false }))
	view2.SetTransform(Vec2{X: -400, Y: 0}, 1.8)
	r2.Route(WheelEvent{Position: Vec2{X: 50, Y: 50}, DeltaY: -10, Modifiers: ModCtrl})
	r2.zoom.ResetZoom(true)
	r2.Route(WheelEvent{DeltaY: 0.5}) // inside the cooldown, unintentional
	if r2.zoom.anim == nil {
		t.Error("discarded wheel event cancelled the tween")
	}
}

func TestDefaultClassifier(t *testing.T) {
	c := defaultClassifier{}
	if !c.Intentional(WheelEvent{DeltaY: 5}) {
		t.Error("large step not intentional")
	}
	if !c.Intentional(WheelEvent{DeltaY: -1}) {
		t.Error("integral notch not intentional")
	}
	if c.Intentional(WheelEvent{DeltaY: 0.37}) {
		t.Error("fractional inertia sample classified intentional")
	}
	if c.Intentional(WheelEvent{}) {
		t.Error("zero delta classified intentional")
	}
}
