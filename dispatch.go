package panzoom

// Dispatcher fans committed state out to external observers through one
// throttled channel per observable quantity. Channels are independent: a
// burst of position changes never delays a zoom notification. Values are
// read at emission time, so a trailing emission always carries the settled
// value.
type Dispatcher struct {
	view   *View
	bounds *BoundsTracker

	onPosition    []func(Vec2)
	onZoom        []func(float64)
	onBounds      []func(Rect)
	onVisibleRect []func(VisibleRect)

	position    *throttle
	zoom        *throttle
	boundsCh    *throttle
	visibleRect *throttle
}

func newDispatcher(view *View, bounds *BoundsTracker, opts *Options) *Dispatcher {
	d := &Dispatcher{view: view, bounds: bounds}
	d.position = newThrottle(opts.PositionThrottle, func() {
		for _, fn := range d.onPosition {
			fn(d.view.Position())
		}
	})
	d.zoom = newThrottle(opts.ZoomThrottle, func() {
		for _, fn := range d.onZoom {
			fn(d.view.Scale())
		}
	})
	d.boundsCh = newThrottle(opts.BoundsThrottle, func() {
		for _, fn := range d.onBounds {
			fn(d.bounds.Bounds())
		}
	})
	d.visibleRect = newThrottle(opts.VisibleRectThrottle, func() {
		for _, fn := range d.onVisibleRect {
			fn(d.view.VisibleRect())
		}
	})
	return d
}

// transformCommitted routes a committed view change into the affected
// channels. The visible rectangle derives from both position and scale, so
// it notifies on either.
func (d *Dispatcher) transformCommitted(positionChanged, scaleChanged bool) {
	if positionChanged && len(d.onPosition) > 0 {
		d.position.call()
	}
	if scaleChanged && len(d.onZoom) > 0 {
		d.zoom.call()
	}
	if len(d.onVisibleRect) > 0 {
		d.visibleRect.call()
	}
}

// boundsCommitted routes a committed bounds change.
func (d *Dispatcher) boundsCommitted() {
	if len(d.onBounds) > 0 {
		d.boundsCh.call()
	}
}

// update advances all throttle windows. Called once per tick.
func (d *Dispatcher) update(dt float64) {
	d.position.update(dt)
	d.zoom.update(dt)
	d.boundsCh.update(dt)
	d.visibleRect.update(dt)
}

// dispose cancels every pending trailing emission.
func (d *Dispatcher) dispose() {
	d.position.cancel()
	d.zoom.cancel()
	d.boundsCh.cancel()
	d.visibleRect.cancel()
}
