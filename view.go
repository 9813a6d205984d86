package panzoom

// View owns the committed transform state: one uniform scale and one
// screen-space translation. Every controller routes position changes through
// SetPosition or SetTransform — this is the sole clamping enforcement point
// and the only writer of the state.
type View struct {
	position  Vec2
	scale     float64
	container Size

	clamp    bool
	boundsFn func() Rect

	// onCommit is invoked after every committed change with flags for
	// which quantities moved. Set once by the engine during wiring.
	onCommit func(positionChanged, scaleChanged bool)
}

// newView creates a View at the default transform (scale 1, origin).
func newView(container Size, clamp bool) *View {
	return &View{scale: 1, container: container, clamp: clamp}
}

// Position returns the committed screen-space translation.
func (v *View) Position() Vec2 {
	return v.position
}

// Scale returns the committed uniform scale.
func (v *View) Scale() float64 {
	return v.scale
}

// Container returns the container dimensions the view projects into.
func (v *View) Container() Size {
	return v.container
}

// VisibleRect derives the world-space window currently shown. Recomputed on
// every call; never cached across transform commits.
func (v *View) VisibleRect() VisibleRect {
	return VisibleRectFor(v.position, v.scale, v.container)
}

// SetPosition commits a new position, clamping it first when clamping is
// enabled.
func (v *View) SetPosition(p Vec2) {
	v.commit(p, v.scale)
}

// SetTransform commits a new scale and then a new position. The scale is
// committed first so the position clamp sees the scale it will be shown at.
func (v *View) SetTransform(p Vec2, scale float64) {
	if scale <= 0 {
		return
	}
	v.commit(p, scale)
}

func (v *View) commit(p Vec2, scale float64) {
	scaleChanged := scale != v.scale
	v.scale = scale

	if v.clamp && v.boundsFn != nil {
		p = ClampPosition(p, v.scale, v.container, v.boundsFn())
	}
	positionChanged := p != v.position
	v.position = p

	if (positionChanged || scaleChanged) && v.onCommit != nil {
		v.onCommit(positionChanged, scaleChanged)
	}
}

// setContainer records new container dimensions. Used by the resize adapter
// before it commits the recomputed transform.
func (v *View) setContainer(s Size) {
	v.container = s
}
