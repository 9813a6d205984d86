package panzoom

import (
	"math"
	"testing"
)

func TestFitScaleExact(t *testing.T) {
	// Content at 1000x500 in an 800x400 container fits at min(0.8, 0.8).
	s := FitScale(Rect{Width: 1000, Height: 500}, Size{Width: 800, Height: 400})
	if !approxEqual(s, 0.8, epsilon) {
		t.Errorf("FitScale = %f, want 0.8", s)
	}
}

func TestFitScaleTighterAxisWins(t *testing.T) {
	s := FitScale(Rect{Width: 1000, Height: 100}, Size{Width: 500, Height: 400})
	if !approxEqual(s, 0.5, epsilon) {
		t.Errorf("FitScale = %f, want 0.5 (width-limited)", s)
	}
}

func TestFitScaleDegenerateBounds(t *testing.T) {
	if s := FitScale(Rect{}, Size{Width: 800, Height: 600}); s != 1 {
		t.Errorf("FitScale with zero bounds = %f, want 1", s)
	}
	if s := FitScale(Rect{Width: 100}, Size{Width: 800, Height: 600}); s != 1 {
		t.Errorf("FitScale with zero height = %f, want 1", s)
	}
}

func TestFitScaleDegenerateContainer(t *testing.T) {
	s := FitScale(Rect{Width: 100, Height: 100}, Size{})
	if s != 1 {
		t.Errorf("FitScale with zero container = %f, want 1", s)
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		t.Errorf("FitScale must never return NaN/Inf, got %f", s)
	}
}

func TestInitialPositionCentered(t *testing.T) {
	// Aspect-matched content at origin centers at (0, 0).
	p := InitialPosition(Rect{Width: 1000, Height: 500}, Size{Width: 800, Height: 400}, 0.8)
	if !approxEqual(p.X, 0, epsilon) || !approxEqual(p.Y, 0, epsilon) {
		t.Errorf("InitialPosition = %v, want (0,0)", p)
	}
}

func TestInitialPositionOffOrigin(t *testing.T) {
	// Content anchored at (100, 0): the translation must pull it back.
	p := InitialPosition(Rect{X: 100, Width: 1000, Height: 500}, Size{Width: 800, Height: 400}, 0.8)
	if !approxEqual(p.X, -80, epsilon) {
		t.Errorf("InitialPosition.X = %f, want -80", p.X)
	}
}

func TestInitialPositionSlackAxis(t *testing.T) {
	// A wide box fit into a square container leaves vertical slack.
	bounds := Rect{Width: 1000, Height: 100}
	container := Size{Width: 500, Height: 500}
	scale := FitScale(bounds, container) // 0.5
	p := InitialPosition(bounds, container, scale)
	if !approxEqual(p.X, 0, epsilon) {
		t.Errorf("InitialPosition.X = %f, want 0", p.X)
	}
	if !approxEqual(p.Y, 225, epsilon) {
		t.Errorf("InitialPosition.Y = %f, want 225", p.Y)
	}
}

func TestResetTransformComposes(t *testing.T) {
	bounds := Rect{Width: 1000, Height: 500}
	container := Size{Width: 800, Height: 400}
	pos, scale := ResetTransform(bounds, container)
	if !approxEqual(scale, 0.8, epsilon) {
		t.Errorf("scale = %f, want 0.8", scale)
	}
	if !approxEqual(pos.X, 0, epsilon) || !approxEqual(pos.Y, 0, epsilon) {
		t.Errorf("pos = %v, want (0,0)", pos)
	}
}

func TestVisibleRectForIdentity(t *testing.T) {
	vr := VisibleRectFor(Vec2{}, 1, Size{Width: 800, Height: 600})
	if vr.Left != 0 || vr.Top != 0 || vr.Right != 800 || vr.Bottom != 600 {
		t.Errorf("VisibleRectFor identity = %+v", vr)
	}
}

func TestVisibleRectForZoomedAndPanned(t *testing.T) {
	vr := VisibleRectFor(Vec2{X: -200, Y: -100}, 2, Size{Width: 800, Height: 600})
	if !approxEqual(vr.Left, 100, epsilon) || !approxEqual(vr.Top, 50, epsilon) {
		t.Errorf("origin = (%f,%f), want (100,50)", vr.Left, vr.Top)
	}
	if !approxEqual(vr.Width(), 400, epsilon) || !approxEqual(vr.Height(), 300, epsilon) {
		t.Errorf("size = (%f,%f), want (400,300)", vr.Width(), vr.Height())
	}
}

func TestClampPositionAtFitScaleCollapses(t *testing.T) {
	bounds := Rect{Width: 1000, Height: 500}
	container := Size{Width: 800, Height: 400}
	fitPos, fitScale := ResetTransform(bounds, container)

	// At the fit scale there is no panning range: every candidate clamps
	// to the initial position.
	for _, candidate := range []Vec2{{X: 500, Y: 500}, {X: -500, Y: -500}, {}} {
		got := ClampPosition(candidate, fitScale, container, bounds)
		if !approxEqual(got.X, fitPos.X, epsilon) || !approxEqual(got.Y, fitPos.Y, epsilon) {
			t.Errorf("ClampPosition(%v) = %v, want %v", candidate, got, fitPos)
		}
	}
}

func TestClampPositionRangeGrowsWithZoom(t *testing.T) {
	bounds := Rect{Width: 1000, Height: 500}
	container := Size{Width: 800, Height: 400}

	// At 2x the fit scale, half the content is off-screen; panning is
	// allowed but bounded.
	scale := 1.6
	inside := ClampPosition(Vec2{X: -100, Y: -100}, scale, container, bounds)
	if !approxEqual(inside.X, -100, epsilon) || !approxEqual(inside.Y, -100, epsilon) {
		t.Errorf("in-range candidate moved: %v", inside)
	}

	far := ClampPosition(Vec2{X: -99999, Y: 99999}, scale, container, bounds)
	if far.X < -800 || far.Y > 0 {
		t.Errorf("out-of-range candidate not clamped: %v", far)
	}
}

func TestClampPositionIdempotent(t *testing.T) {
	bounds := Rect{Width: 1200, Height: 700}
	container := Size{Width: 800, Height: 400}
	for _, scale := range []float64{0.5, 1, 1.7, 3} {
		once := ClampPosition(Vec2{X: -512.3, Y: 217.9}, scale, container, bounds)
		twice := ClampPosition(once, scale, container, bounds)
		if once != twice {
			t.Errorf("scale %f: clamp not idempotent: %v then %v", scale, once, twice)
		}
	}
}

func TestClampPositionDegenerateBounds(t *testing.T) {
	// Degenerate bounds fall back to scale 1 internally; the call must not
	// produce NaN.
	got := ClampPosition(Vec2{X: 10, Y: 10}, 2, Size{Width: 800, Height: 400}, Rect{})
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Errorf("ClampPosition produced NaN: %v", got)
	}
}
