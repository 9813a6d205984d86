package panzoom

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// canvasNodeIDCounter is a plain counter (no atomic — the engine is
// single-threaded). IDs start at 1 and are never reused.
var canvasNodeIDCounter uint32

func nextCanvasNodeID() uint32 {
	canvasNodeIDCounter++
	return canvasNodeIDCounter
}

// CanvasStage is an Ebitengine-backed Stage: a flat list of drawable
// rectangle nodes under a single content layer. It satisfies the full
// content contract — enumeration, per-node mutation signals, a writable
// transform, and rasterization — and is what the examples and integration
// tests run the engine against.
type CanvasStage struct {
	nodes    []*CanvasNode
	position Vec2
	scale    float64
	ready    bool
}

// NewCanvasStage creates an empty stage at the identity transform. The stage
// reports not-ready until MarkReady is called, mirroring asynchronous
// content mounting.
func NewCanvasStage() *CanvasStage {
	return &CanvasStage{scale: 1}
}

// MarkReady signals that the content layer is mounted.
func (s *CanvasStage) MarkReady() {
	s.ready = true
}

// ContentReady reports whether the content layer is mounted.
func (s *CanvasStage) ContentReady() bool {
	return s.ready
}

// Add attaches a node to the content layer.
func (s *CanvasStage) Add(n *CanvasNode) {
	n.stage = s
	s.nodes = append(s.nodes, n)
}

// Remove detaches a node. No-op if the node is not attached.
func (s *CanvasStage) Remove(n *CanvasNode) {
	for i, c := range s.nodes {
		if c == n {
			copy(s.nodes[i:], s.nodes[i+1:])
			s.nodes[len(s.nodes)-1] = nil
			s.nodes = s.nodes[:len(s.nodes)-1]
			n.stage = nil
			return
		}
	}
}

// ContentNodes enumerates the attached nodes.
func (s *CanvasStage) ContentNodes() []ContentNode {
	out := make([]ContentNode, len(s.nodes))
	for i, n := range s.nodes {
		out[i] = n
	}
	return out
}

// Transform returns the stage translation and scale.
func (s *CanvasStage) Transform() (Vec2, float64) {
	return s.position, s.scale
}

// SetTransform applies a translation and scale to the stage.
func (s *CanvasStage) SetTransform(position Vec2, scale float64) {
	s.position = position
	s.scale = scale
}

// Rasterize renders the given world region into a new image at the given
// pixel density. The stage transform is temporarily replaced for the draw
// and restored before returning.
func (s *CanvasStage) Rasterize(region Rect, density float64) *ebiten.Image {
	w := int(math.Ceil(region.Width * density))
	h := int(math.Ceil(region.Height * density))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := ebiten.NewImage(w, h)

	prevPos, prevScale := s.position, s.scale
	s.SetTransform(Vec2{X: -region.X * density, Y: -region.Y * density}, density)
	for _, n := range s.nodes {
		n.draw(img)
	}
	s.SetTransform(prevPos, prevScale)

	return img
}

// Draw renders every node onto screen under the current stage transform.
func (s *CanvasStage) Draw(screen *ebiten.Image) {
	for _, n := range s.nodes {
		n.draw(screen)
	}
}

// --- CanvasNode ---

// CanvasNode is a drawable rectangle in world space, optionally textured
// with an image. Mutating setters fire the node's subscription signal as one
// batched notification per call, regardless of how many visual properties
// the mutation touches.
type CanvasNode struct {
	id    uint32
	stage *CanvasStage

	x, y, w, h float64
	fill       color.RGBA
	image      *ebiten.Image

	subs    map[uint32]func()
	nextSub uint32
}

// NewCanvasNode creates a node covering the given world-space rectangle.
func NewCanvasNode(x, y, w, h float64) *CanvasNode {
	return &CanvasNode{
		id:   nextCanvasNodeID(),
		x:    x,
		y:    y,
		w:    w,
		h:    h,
		fill: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// ID returns the node's stable identity.
func (n *CanvasNode) ID() uint32 {
	return n.id
}

// Rect returns the node's world-space rectangle.
func (n *CanvasNode) Rect() Rect {
	return Rect{X: n.x, Y: n.y, Width: n.w, Height: n.h}
}

// ScreenRect returns the node's bounding rectangle after the stage
// transform. Zero when the node is detached.
func (n *CanvasNode) ScreenRect() Rect {
	if n.stage == nil {
		return Rect{}
	}
	pos, scale := n.stage.Transform()
	return Rect{
		X:      n.x*scale + pos.X,
		Y:      n.y*scale + pos.Y,
		Width:  n.w * scale,
		Height: n.h * scale,
	}
}

// SetPosition moves the node in world space and notifies subscribers.
func (n *CanvasNode) SetPosition(x, y float64) {
	n.x = x
	n.y = y
	n.notify()
}

// SetSize resizes the node and notifies subscribers.
func (n *CanvasNode) SetSize(w, h float64) {
	n.w = w
	n.h = h
	n.notify()
}

// SetFill changes the node's solid color and notifies subscribers.
func (n *CanvasNode) SetFill(c color.RGBA) {
	n.fill = c
	n.notify()
}

// SetImage attaches a texture drawn stretched over the node's rectangle, and
// notifies subscribers. A nil image reverts to the solid fill.
func (n *CanvasNode) SetImage(img *ebiten.Image) {
	n.image = img
	n.notify()
}

// Subscribe registers a mutation callback and returns its unsubscribe
// function.
func (n *CanvasNode) Subscribe(fn func()) func() {
	if n.subs == nil {
		n.subs = make(map[uint32]func())
	}
	n.nextSub++
	id := n.nextSub
	n.subs[id] = fn
	return func() {
		delete(n.subs, id)
	}
}

func (n *CanvasNode) notify() {
	for _, fn := range n.subs {
		fn()
	}
}

// draw renders the node through the stage transform.
func (n *CanvasNode) draw(dst *ebiten.Image) {
	r := n.ScreenRect()
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	if n.image != nil {
		b := n.image.Bounds()
		op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
		op.GeoM.Translate(r.X, r.Y)
		dst.DrawImage(n.image, &op)
		return
	}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(n.fill)
	dst.DrawImage(pixel(), &op)
}
