package panzoom

import "github.com/hajimehoshi/ebiten/v2"

// Stage is the external scene-graph collaborator the engine observes but does
// not own. The engine is the single source of truth for the transform; it
// pushes committed state into the stage via SetTransform and any read-only
// operation that temporarily alters the stage transform (such as Rasterize)
// must restore it before returning.
type Stage interface {
	// ContentReady reports whether the content layer is mounted and its
	// nodes can be enumerated. While false, bounds scans retry on the next
	// update tick instead of failing.
	ContentReady() bool

	// ContentNodes enumerates all drawable nodes under the content layer.
	ContentNodes() []ContentNode

	// Transform returns the stage's current translation and scale.
	Transform() (Vec2, float64)

	// SetTransform applies a translation and scale to the stage.
	SetTransform(position Vec2, scale float64)

	// Rasterize renders the given world-space region into a new image at
	// the given pixel density (image pixels per world unit). The stage
	// transform is unchanged when Rasterize returns.
	Rasterize(region Rect, density float64) *ebiten.Image
}

// ContentNode is a single drawable node exposed by the stage.
type ContentNode interface {
	// ID returns the node's stable identity. IDs are never reused.
	ID() uint32

	// ScreenRect returns the node's bounding rectangle in screen space,
	// i.e. after the stage's current transform.
	ScreenRect() Rect

	// Subscribe registers a callback fired whenever any visual property of
	// the node mutates (position, scale, skew, rotation, offset, stroke,
	// fill, radius, size). Mutations are delivered as a single batched
	// signal per node, not one callback per property. The returned
	// function unsubscribes; it is safe to call more than once.
	Subscribe(fn func()) (unsubscribe func())
}
