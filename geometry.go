package panzoom

import "math"

// FitScale returns the uniform scale at which bounds exactly fits inside
// container on its tighter axis. Returns 1 when either input has a zero
// dimension so a degenerate box never collapses the view or produces
// NaN/Inf downstream.
func FitScale(bounds Rect, container Size) float64 {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return 1
	}
	s := math.Min(container.Width/bounds.Width, container.Height/bounds.Height)
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 1
	}
	return s
}

// InitialPosition returns the screen-space translation that centers bounds
// inside container at the given scale.
func InitialPosition(bounds Rect, container Size, scale float64) Vec2 {
	return Vec2{
		X: (container.Width-bounds.Width*scale)/2 - bounds.X*scale,
		Y: (container.Height-bounds.Height*scale)/2 - bounds.Y*scale,
	}
}

// ResetTransform returns the fit scale and the centered position for bounds
// inside container, i.e. the transform the view starts from and resets to.
func ResetTransform(bounds Rect, container Size) (Vec2, float64) {
	scale := FitScale(bounds, container)
	return InitialPosition(bounds, container, scale), scale
}

// VisibleRectFor projects the container through the given transform and
// returns the world-space window it shows.
func VisibleRectFor(position Vec2, scale float64, container Size) VisibleRect {
	left := -position.X / scale
	top := -position.Y / scale
	return VisibleRect{
		Left:   left,
		Top:    top,
		Right:  left + container.Width/scale,
		Bottom: top + container.Height/scale,
	}
}

// ClampPosition restricts candidate so the visible rectangle stays within the
// window defined by the initial fit of bounds to container, scaled by the
// current zoom. The panning range shrinks as the zoom approaches the fit
// scale; at exactly the fit scale the range collapses to the initial
// position and no panning is possible.
func ClampPosition(candidate Vec2, scale float64, container Size, bounds Rect) Vec2 {
	fitPos, fitScale := ResetTransform(bounds, container)
	fitRect := VisibleRectFor(fitPos, fitScale, container)

	maxX := -fitRect.Left * scale
	minX := -fitRect.Right*scale + container.Width
	maxY := -fitRect.Top * scale
	minY := -fitRect.Bottom*scale + container.Height

	return Vec2{
		X: clampAxis(candidate.X, minX, maxX),
		Y: clampAxis(candidate.Y, minY, maxY),
	}
}

// clampAxis clamps v into [min, max]. Below the fit scale the interval is
// inverted; the midpoint keeps the content centered in that case.
func clampAxis(v, min, max float64) float64 {
	if min > max {
		return (min + max) / 2
	}
	return math.Max(min, math.Min(v, max))
}
