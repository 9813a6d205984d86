package panzoom

import "github.com/hajimehoshi/ebiten/v2"

// InputAdapter polls Ebitengine cursor, button, wheel, and modifier state
// each frame and feeds the engine. A press beginning over the minimap widget
// drags the widget frame; any other press pans the main viewport.
type InputAdapter struct {
	engine *Engine

	prevDown    bool
	minimapDrag bool
}

// NewInputAdapter creates an adapter for the given engine.
func NewInputAdapter(engine *Engine) *InputAdapter {
	return &InputAdapter{engine: engine}
}

// modifierKeys maps each modifier bit to the generic, left, and right key
// codes that set it.
var modifierKeys = map[KeyModifiers][]ebiten.Key{
	ModShift: {ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	ModCtrl:  {ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight},
	ModAlt:   {ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight},
	ModMeta:  {ebiten.KeyMeta, ebiten.KeyMetaLeft, ebiten.KeyMetaRight},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	for mod, keys := range modifierKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				mods |= mod
				break
			}
		}
	}
	return mods
}

// Update polls input once. Call from the game's Update before Engine.Update.
func (a *InputAdapter) Update() {
	mx, my := ebiten.CursorPosition()
	pointer := Vec2{X: float64(mx), Y: float64(my)}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		a.engine.Wheel(WheelEvent{
			Position:  pointer,
			DeltaX:    dx,
			DeltaY:    dy,
			Modifiers: readModifiers(),
		})
	}

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case down && !a.prevDown:
		if a.engine.Minimap().WidgetRect().Contains(pointer.X, pointer.Y) {
			a.minimapDrag = true
			a.engine.Minimap().StartDrag(pointer)
		} else {
			a.engine.StartDrag(pointer)
		}
	case down && a.prevDown:
		if a.minimapDrag {
			a.engine.Minimap().DragTo(pointer)
		} else {
			a.engine.DragTo(pointer)
		}
	case !down && a.prevDown:
		if a.minimapDrag {
			a.minimapDrag = false
			a.engine.Minimap().EndDrag()
		} else {
			a.engine.EndDrag()
		}
	}
	a.prevDown = down
}
