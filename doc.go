// Package panzoom is the interactive-viewport engine behind a pannable,
// zoomable canvas surface built on [Ebitengine].
//
// The engine tracks the bounding region of arbitrary drawable content,
// maintains the screen-to-world transform (one uniform scale plus a
// translation), responds to drag, wheel, and programmatic gestures, keeps
// the view clamped to content, adapts the transform when the container is
// resized, detects content mutation, and produces a low-resolution overview
// of the full content with a live viewport indicator.
//
// # Quick start
//
// Create a [Stage] (or use the bundled [CanvasStage]), hand it to
// [NewEngine], and drive the engine from your game loop:
//
//	stage := panzoom.NewCanvasStage()
//	stage.Add(panzoom.NewCanvasNode(0, 0, 400, 300))
//	stage.MarkReady()
//
//	engine := panzoom.NewEngine(stage, panzoom.Size{Width: 800, Height: 600},
//		panzoom.DefaultOptions())
//	input := panzoom.NewInputAdapter(engine)
//
//	// in ebiten.Game.Update:
//	input.Update()
//	engine.Update(1.0 / float64(ebiten.TPS()))
//
// The engine never renders content itself; the stage owns shape geometry
// and rendering. The engine owns the canonical transform and pushes every
// committed change into the stage, so the stage never becomes a second
// source of truth.
//
// # Model
//
// All state mutation happens inside a discrete input call or inside
// [Engine.Update] — the engine is single-threaded and cooperative, like the
// game loop that drives it. Transform state is ephemeral, scoped to the
// engine's lifetime; call [Engine.Dispose] to release node subscriptions
// and pending throttled notifications.
//
// Externally observable state — position, zoom, content bounds, visible
// rectangle — fans out through independently throttled channels with
// leading and trailing emissions, so the first change and the final settled
// value are never dropped.
//
// [Ebitengine]: https://ebitengine.org
package panzoom
