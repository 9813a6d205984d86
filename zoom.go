package panzoom

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ZoomDirection selects whether a zoom gesture moves in or out.
type ZoomDirection int

const (
	ZoomIn  ZoomDirection = iota // increase scale
	ZoomOut                      // decrease scale
)

// zoomAnim holds the active tweens for an animated transform change.
// Scale and position are interpolated jointly so the view glides rather
// than snapping one axis at a time.
type zoomAnim struct {
	scale *gween.Tween
	posX  *gween.Tween
	posY  *gween.Tween
	done  bool
}

// ZoomController applies pointer-anchored zoom, reset-to-fit, and
// zoom-to-element transforms, optionally animated.
type ZoomController struct {
	view   *View
	bounds *BoundsTracker
	opts   *Options

	anim *zoomAnim
	// Ease is the tween curve for animated transitions.
	Ease ease.TweenFunc

	autoFitDone bool
}

func newZoomController(view *View, bounds *BoundsTracker, opts *Options) *ZoomController {
	return &ZoomController{view: view, bounds: bounds, opts: opts, Ease: ease.OutQuad}
}

// HandleZoom applies an anchor-preserving zoom step: the world point under
// the pointer stays under the pointer after the scale change. The step size
// grows with the wheel delta and shrinks with the configured zoom speed.
func (z *ZoomController) HandleZoom(pointer Vec2, direction ZoomDirection, delta float64) {
	if delta < 0 {
		return
	}
	z.cancelAnim()

	factor := 1 + delta/z.opts.ZoomSpeed
	scale := z.view.Scale()
	newScale := scale * factor
	if direction == ZoomOut {
		newScale = scale / factor
	}
	newScale = clampScale(newScale, z.opts)

	anchor := Vec2{
		X: (pointer.X - z.view.Position().X) / scale,
		Y: (pointer.Y - z.view.Position().Y) / scale,
	}
	z.view.SetTransform(Vec2{
		X: pointer.X - anchor.X*newScale,
		Y: pointer.Y - anchor.Y*newScale,
	}, newScale)
}

// ResetZoom returns the view to the centered fit transform. When animate is
// true the change is tweened over the configured duration instead of
// snapping.
func (z *ZoomController) ResetZoom(animate bool) {
	bounds := z.bounds.Bounds()
	container := z.view.Container()
	scale := clampScale(FitScale(bounds, container), z.opts)
	z.transitionTo(InitialPosition(bounds, container, scale), scale, animate)
}

// ZoomToElement fits the view to a single node's world-space box, inflated by
// paddingPercent on each side.
func (z *ZoomController) ZoomToElement(node ContentNode, paddingPercent float64, animate bool) {
	if node == nil {
		return
	}
	r := node.ScreenRect()
	pos := z.view.Position()
	scale := z.view.Scale()
	box := Rect{
		X:      (r.X - pos.X) / scale,
		Y:      (r.Y - pos.Y) / scale,
		Width:  r.Width / scale,
		Height: r.Height / scale,
	}

	padX := box.Width * paddingPercent
	padY := box.Height * paddingPercent
	box = Rect{
		X:      box.X - padX,
		Y:      box.Y - padY,
		Width:  box.Width + 2*padX,
		Height: box.Height + 2*padY,
	}

	container := z.view.Container()
	newScale := clampScale(FitScale(box, container), z.opts)
	z.transitionTo(InitialPosition(box, container, newScale), newScale, animate)
}

// transitionTo commits the target transform directly or starts a joint tween
// toward it.
func (z *ZoomController) transitionTo(pos Vec2, scale float64, animate bool) {
	z.cancelAnim()
	d := float32(z.opts.ZoomAnimationDuration)
	if !animate || d <= 0 {
		z.view.SetTransform(pos, scale)
		return
	}
	cur := z.view.Position()
	z.anim = &zoomAnim{
		scale: gween.New(float32(z.view.Scale()), float32(scale), d, z.Ease),
		posX:  gween.New(float32(cur.X), float32(pos.X), d, z.Ease),
		posY:  gween.New(float32(cur.Y), float32(pos.Y), d, z.Ease),
	}
}

// boundsCommitted fires the one-shot fit: when the bounds first become
// non-degenerate and the scale is still the default 1, snap to the fit
// transform. Wired to the bounds tracker by the engine.
func (z *ZoomController) boundsCommitted(bounds Rect) {
	if z.autoFitDone {
		return
	}
	if bounds.Width <= 1 && bounds.Height <= 1 {
		return
	}
	z.autoFitDone = true
	if z.view.Scale() == 1 {
		z.ResetZoom(false)
	}
}

// update advances a running transform tween. Called once per tick.
func (z *ZoomController) update(dt float32) {
	if z.anim == nil {
		return
	}
	s, doneS := z.anim.scale.Update(dt)
	x, doneX := z.anim.posX.Update(dt)
	y, doneY := z.anim.posY.Update(dt)
	z.view.SetTransform(Vec2{X: float64(x), Y: float64(y)}, float64(s))
	if doneS && doneX && doneY {
		z.anim = nil
	}
}

// cancelAnim drops any running tween so direct input wins immediately.
func (z *ZoomController) cancelAnim() {
	z.anim = nil
}

// clampScale bounds a candidate scale to [MinZoom, MaxZoom].
func clampScale(s float64, opts *Options) float64 {
	return math.Max(opts.MinZoom, math.Min(s, opts.MaxZoom))
}
