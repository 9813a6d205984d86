package panzoom

import (
	"io"

	"github.com/charmbracelet/log"
)

// Engine is the top-level viewport object. It owns the transform state and
// every controller, drives them from Update, and pushes committed state into
// the stage so the stage never becomes a second source of truth.
//
// The engine is single-threaded and cooperative: all mutation happens inside
// a discrete input call (Wheel, StartDrag, DragTo) or inside Update, never
// concurrently. "Defer to the next tick" means the next Update call.
type Engine struct {
	stage Stage
	opts  Options

	view     *View
	tracker  *BoundsTracker
	watcher  *ChangeWatcher
	zoom     *ZoomController
	drag     *DragController
	wheel    *WheelRouter
	resize   *ResizeAdapter
	dispatch *Dispatcher
	minimap  *Minimap

	onAdded    []func([]uint32)
	onRemoved  []func([]uint32)
	onModified []func([]uint32)

	logger   *log.Logger
	now      float64
	disposed bool
}

// NewEngine creates an engine observing stage inside a container of the
// given size.
func NewEngine(stage Stage, container Size, opts Options) *Engine {
	e := &Engine{
		stage:  stage,
		opts:   opts,
		logger: log.New(io.Discard),
	}

	e.view = newView(container, opts.ClampPosition)
	e.tracker = newBoundsTracker(stage, e.view, opts.BoundsWidth, opts.BoundsHeight)
	e.view.boundsFn = e.tracker.Bounds

	e.watcher = newChangeWatcher(stage)
	e.zoom = newZoomController(e.view, e.tracker, &e.opts)
	e.drag = newDragController(e.view)
	e.wheel = newWheelRouter(e.view, e.zoom, &e.opts, func() float64 { return e.now })
	e.resize = newResizeAdapter(e.view, e.tracker, &e.opts)
	e.dispatch = newDispatcher(e.view, e.tracker, &e.opts)
	e.minimap = newMinimap(stage, e.view, e.tracker, &e.opts)

	e.view.onCommit = func(positionChanged, scaleChanged bool) {
		e.stage.SetTransform(e.view.Position(), e.view.Scale())
		e.dispatch.transformCommitted(positionChanged, scaleChanged)
	}

	e.tracker.onChange = func(bounds Rect) {
		e.logger.Debug("bounds committed",
			"width", bounds.Width, "height", bounds.Height)
		e.zoom.boundsCommitted(bounds)
		e.dispatch.boundsCommitted()
		e.minimap.Invalidate()
	}

	e.watcher.onAdded = func(ids []uint32) {
		e.logger.Debug("nodes added", "count", len(ids))
		e.tracker.Invalidate()
		e.minimap.Invalidate()
		for _, fn := range e.onAdded {
			fn(ids)
		}
	}
	e.watcher.onRemoved = func(ids []uint32) {
		e.logger.Debug("nodes removed", "count", len(ids))
		e.tracker.Invalidate()
		e.minimap.Invalidate()
		for _, fn := range e.onRemoved {
			fn(ids)
		}
	}
	e.watcher.onModified = func(ids []uint32) {
		e.tracker.Invalidate()
		e.minimap.Invalidate()
		for _, fn := range e.onModified {
			fn(ids)
		}
	}

	return e
}

// SetLogger installs a structured logger for engine diagnostics. The default
// logger discards everything.
func (e *Engine) SetLogger(l *log.Logger) {
	if l != nil {
		e.logger = l
	}
}

// Update advances the engine by dt seconds: runs the coalesced node diff,
// any pending bounds scan, active zoom tweens, and every throttle window.
func (e *Engine) Update(dt float64) {
	if e.disposed {
		return
	}
	e.now += dt
	e.watcher.update()
	e.tracker.update()
	e.zoom.update(float32(dt))
	e.dispatch.update(dt)
	e.minimap.update(dt)
}

// --- Input entry points ---

// Wheel routes one wheel event (zoom with Ctrl/Meta, pan otherwise).
func (e *Engine) Wheel(ev WheelEvent) {
	if e.disposed {
		return
	}
	e.wheel.Route(ev)
}

// StartDrag begins a free pan at the given screen position.
func (e *Engine) StartDrag(pointer Vec2) {
	if e.disposed {
		return
	}
	e.zoom.cancelAnim()
	e.drag.Start(pointer)
}

// DragTo continues a free pan. No-op when no drag is in progress.
func (e *Engine) DragTo(pointer Vec2) {
	e.drag.Move(pointer)
}

// EndDrag ends a free pan.
func (e *Engine) EndDrag() {
	e.drag.End()
}

// --- Imperative surface ---

// ResetZoom returns the view to the centered fit transform.
func (e *Engine) ResetZoom(animate bool) {
	if e.disposed {
		return
	}
	e.zoom.ResetZoom(animate)
}

// ZoomToElement fits the view to one node's box inflated by paddingPercent
// on each side.
func (e *Engine) ZoomToElement(node ContentNode, paddingPercent float64, animate bool) {
	if e.disposed {
		return
	}
	e.zoom.ZoomToElement(node, paddingPercent, animate)
}

// SetContainerSize adapts the transform to new container dimensions,
// preserving the centered world point and the zoom relative to fit.
func (e *Engine) SetContainerSize(s Size) {
	if e.disposed {
		return
	}
	e.resize.Resize(s)
	e.minimap.Invalidate()
}

// Bounds returns the current content bounds.
func (e *Engine) Bounds() Rect {
	return e.tracker.Bounds()
}

// Position returns the committed screen-space translation.
func (e *Engine) Position() Vec2 {
	return e.view.Position()
}

// Scale returns the committed zoom level.
func (e *Engine) Scale() float64 {
	return e.view.Scale()
}

// VisibleRect returns the world-space window currently shown.
func (e *Engine) VisibleRect() VisibleRect {
	return e.view.VisibleRect()
}

// Minimap returns the overview widget.
func (e *Engine) Minimap() *Minimap {
	return e.minimap
}

// SetScrollClassifier replaces the intentional-scroll heuristic used by the
// wheel router.
func (e *Engine) SetScrollClassifier(c ScrollClassifier) {
	e.wheel.SetClassifier(c)
}

// --- Observers ---

// OnPositionChanged registers a throttled observer of the position.
func (e *Engine) OnPositionChanged(fn func(Vec2)) {
	e.dispatch.onPosition = append(e.dispatch.onPosition, fn)
}

// OnZoomChanged registers a throttled observer of the scale.
func (e *Engine) OnZoomChanged(fn func(float64)) {
	e.dispatch.onZoom = append(e.dispatch.onZoom, fn)
}

// OnBoundsChanged registers a throttled observer of the content bounds.
func (e *Engine) OnBoundsChanged(fn func(Rect)) {
	e.dispatch.onBounds = append(e.dispatch.onBounds, fn)
}

// OnVisibleRectChanged registers a throttled observer of the visible
// rectangle.
func (e *Engine) OnVisibleRectChanged(fn func(VisibleRect)) {
	e.dispatch.onVisibleRect = append(e.dispatch.onVisibleRect, fn)
}

// OnNodesAdded registers an observer of added-node batches.
func (e *Engine) OnNodesAdded(fn func([]uint32)) {
	e.onAdded = append(e.onAdded, fn)
}

// OnNodesRemoved registers an observer of removed-node batches.
func (e *Engine) OnNodesRemoved(fn func([]uint32)) {
	e.onRemoved = append(e.onRemoved, fn)
}

// OnNodesModified registers an observer of modified-node batches.
func (e *Engine) OnNodesModified(fn func([]uint32)) {
	e.onModified = append(e.onModified, fn)
}

// Dispose releases node subscriptions and cancels every scheduled tick and
// pending throttled invocation. The engine is inert afterwards.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.watcher.dispose()
	e.dispatch.dispose()
	e.minimap.dispose()
	e.zoom.cancelAnim()
	e.drag.End()
	e.logger.Debug("engine disposed")
}
