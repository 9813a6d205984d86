package panzoom

// ResizeAdapter recomputes the transform when the container changes size.
// The world point at the old container's center stays at the new container's
// center, and the zoom level relative to a pure fit is preserved: a view
// zoomed 2x past fit at the old size is still 2x past fit at the new size.
type ResizeAdapter struct {
	view   *View
	bounds *BoundsTracker
	opts   *Options
	prev   Size
}

func newResizeAdapter(view *View, bounds *BoundsTracker, opts *Options) *ResizeAdapter {
	return &ResizeAdapter{view: view, bounds: bounds, opts: opts, prev: view.Container()}
}

// Resize applies new container dimensions. No-op when the size is unchanged
// or degenerate.
func (a *ResizeAdapter) Resize(next Size) {
	if next == a.prev || next.Width <= 0 || next.Height <= 0 {
		return
	}

	pos := a.view.Position()
	scale := a.view.Scale()
	bounds := a.bounds.Bounds()

	// World point at the previous container's center.
	center := Vec2{
		X: (-pos.X + a.prev.Width/2) / scale,
		Y: (-pos.Y + a.prev.Height/2) / scale,
	}

	relative := scale / FitScale(bounds, a.prev)
	newScale := clampScale(FitScale(bounds, next)*relative, a.opts)

	a.view.setContainer(next)
	a.view.SetTransform(Vec2{
		X: next.Width/2 - center.X*newScale,
		Y: next.Height/2 - center.Y*newScale,
	}, newScale)
	a.prev = next
}
