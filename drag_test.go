package panzoom

import "testing"

func TestDragPansOneToOne(t *testing.T) {
	view := newTestView(Size{Width: 800, Height: 600})
	view.SetTransform(Vec2{}, 3) // zoom must not affect drag deltas
	d := newDragController(view)

	d.Start(Vec2{X: 100, Y: 100})
	d.Move(Vec2{X: 130, Y: 90})
	if view.Position() != (Vec2{X: 30, Y: -10}) {
		t.Errorf("Position = %v, want (30,-10)", view.Position())
	}

	d.Move(Vec2{X: 140, Y: 90})
	if view.Position() != (Vec2{X: 40, Y: -10}) {
		t.Errorf("Position = %v, want (40,-10)", view.Position())
	}
}

func TestDragMoveOutsideDraggingIsNoop(t *testing.T) {
	view := newTestView(Size{Width: 800, Height: 600})
	d := newDragController(view)

	d.Move(Vec2{X: 50, Y: 50})
	if view.Position() != (Vec2{}) {
		t.Errorf("Position = %v, want origin (idle move ignored)", view.Position())
	}

	d.Start(Vec2{X: 0, Y: 0})
	d.End()
	d.Move(Vec2{X: 50, Y: 50})
	if view.Position() != (Vec2{}) {
		t.Errorf("Position = %v, want origin (post-end move ignored)", view.Position())
	}
}

func TestDragStateMachine(t *testing.T) {
	view := newTestView(Size{Width: 800, Height: 600})
	d := newDragController(view)

	if d.Dragging() {
		t.Error("new controller must be idle")
	}
	d.Start(Vec2{})
	if !d.Dragging() {
		t.Error("Start must enter dragging")
	}
	d.End()
	if d.Dragging() {
		t.Error("End must return to idle")
	}
}

func TestDragEndIdempotent(t *testing.T) {
	view := newTestView(Size{Width: 800, Height: 600})
	d := newDragController(view)
	d.End()
	d.End()
	if d.Dragging() {
		t.Error("End on idle must stay idle")
	}
}
