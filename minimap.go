package panzoom

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// minimapMargin is the default widget offset from the container edge.
const minimapMargin = 10.0

// Minimap maintains a low-resolution overview of the full content with a
// live viewport indicator. The snapshot is re-rasterized through a
// leading+trailing throttle whenever nodes change or the container resizes;
// the overlay rectangle is recomputed every frame from the derived visible
// rectangle. The widget can be dragged to a different on-screen position
// (repositioning the frame only, not the main viewport) and clamps itself to
// the container.
type Minimap struct {
	stage  Stage
	view   *View
	bounds *BoundsTracker
	opts   *Options

	snapshot *ebiten.Image
	regen    *throttle

	pos      Vec2
	placed   bool
	dragging bool
	last     Vec2
}

func newMinimap(stage Stage, view *View, bounds *BoundsTracker, opts *Options) *Minimap {
	m := &Minimap{stage: stage, view: view, bounds: bounds, opts: opts}
	m.regen = newThrottle(opts.MinimapThrottle, m.render)
	return m
}

// Invalidate requests a snapshot re-rasterization. No-op until the stage's
// content is ready.
func (m *Minimap) Invalidate() {
	if !m.opts.Minimap.Show || !m.stage.ContentReady() {
		return
	}
	m.regen.call()
}

// update advances the rasterization throttle. Called once per tick.
func (m *Minimap) update(dt float64) {
	m.regen.update(dt)
}

// render rasterizes the full content area at minimap density.
func (m *Minimap) render() {
	density := m.initialScale() * m.opts.Minimap.Size
	if density <= 0 {
		return
	}
	m.snapshot = m.stage.Rasterize(m.bounds.Bounds(), density)
}

// initialScale is the fit scale of the content in the container, the
// reference zoom the overlay math is expressed in.
func (m *Minimap) initialScale() float64 {
	return FitScale(m.bounds.Bounds(), m.view.Container())
}

// WidgetRect returns the widget's screen rectangle.
func (m *Minimap) WidgetRect() Rect {
	container := m.view.Container()
	pct := m.opts.Minimap.Size
	if !m.placed {
		m.pos = Vec2{
			X: container.Width - container.Width*pct - minimapMargin,
			Y: container.Height - container.Height*pct - minimapMargin,
		}
		m.placed = true
	}
	return Rect{
		X:      m.pos.X,
		Y:      m.pos.Y,
		Width:  container.Width * pct,
		Height: container.Height * pct,
	}
}

// Overlay returns the viewport indicator rectangle in widget-local
// coordinates. The padding terms compensate for the centering offset when
// the content is smaller than the container at fit scale.
func (m *Minimap) Overlay() Rect {
	bounds := m.bounds.Bounds()
	container := m.view.Container()
	s0 := m.initialScale()
	pct := m.opts.Minimap.Size
	vr := m.view.VisibleRect()

	padX := math.Max(0, (container.Width/s0-bounds.Width)/2)
	padY := math.Max(0, (container.Height/s0-bounds.Height)/2)

	return Rect{
		X:      (vr.Left + padX) * s0 * pct,
		Y:      (vr.Top + padY) * s0 * pct,
		Width:  vr.Width() * s0 * pct,
		Height: vr.Height() * s0 * pct,
	}
}

// --- Widget dragging ---

// StartDrag begins repositioning the widget frame.
func (m *Minimap) StartDrag(pointer Vec2) {
	m.dragging = true
	m.last = pointer
}

// DragTo moves the widget by the pointer delta, clamped to the container.
// No-op unless a widget drag is in progress.
func (m *Minimap) DragTo(pointer Vec2) {
	if !m.dragging {
		return
	}
	r := m.WidgetRect()
	container := m.view.Container()
	m.pos.X = clampAxis(m.pos.X+pointer.X-m.last.X, 0, container.Width-r.Width)
	m.pos.Y = clampAxis(m.pos.Y+pointer.Y-m.last.Y, 0, container.Height-r.Height)
	m.last = pointer
}

// EndDrag ends a widget drag.
func (m *Minimap) EndDrag() {
	m.dragging = false
}

// --- Drawing ---

var minimapPixel *ebiten.Image

func pixel() *ebiten.Image {
	if minimapPixel == nil {
		minimapPixel = ebiten.NewImage(1, 1)
		minimapPixel.Fill(color.White)
	}
	return minimapPixel
}

// Draw renders the widget background, the content snapshot, and the viewport
// overlay onto screen.
func (m *Minimap) Draw(screen *ebiten.Image) {
	if !m.opts.Minimap.Show {
		return
	}
	r := m.WidgetRect()

	fillRect(screen, r, color.RGBA{0, 0, 0, 160})

	if m.snapshot != nil {
		bounds := m.bounds.Bounds()
		container := m.view.Container()
		s0 := m.initialScale()
		pct := m.opts.Minimap.Size
		padX := math.Max(0, (container.Width/s0-bounds.Width)/2)
		padY := math.Max(0, (container.Height/s0-bounds.Height)/2)

		var op ebiten.DrawImageOptions
		op.GeoM.Translate(r.X+padX*s0*pct, r.Y+padY*s0*pct)
		screen.DrawImage(m.snapshot, &op)
	}

	ov := m.Overlay()
	ov.X += r.X
	ov.Y += r.Y
	strokeRect(screen, ov, color.RGBA{255, 255, 255, 220})
}

// fillRect draws a solid rectangle by scaling a 1x1 image.
func fillRect(dst *ebiten.Image, r Rect, c color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(pixel(), &op)
}

// strokeRect draws a 1px rectangle outline as four thin fills.
func strokeRect(dst *ebiten.Image, r Rect, c color.Color) {
	fillRect(dst, Rect{X: r.X, Y: r.Y, Width: r.Width, Height: 1}, c)
	fillRect(dst, Rect{X: r.X, Y: r.Y + r.Height - 1, Width: r.Width, Height: 1}, c)
	fillRect(dst, Rect{X: r.X, Y: r.Y, Width: 1, Height: r.Height}, c)
	fillRect(dst, Rect{X: r.X + r.Width - 1, Y: r.Y, Width: 1, Height: r.Height}, c)
}

// dispose cancels any pending rasterization.
func (m *Minimap) dispose() {
	m.regen.cancel()
}
