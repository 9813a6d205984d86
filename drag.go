package panzoom

// DragController pans the view 1:1 with the pointer in screen pixels,
// regardless of zoom. State machine: idle → dragging → idle. Calls outside
// the dragging state are silent no-ops.
type DragController struct {
	view *View

	dragging bool
	last     Vec2
	hasLast  bool
}

func newDragController(view *View) *DragController {
	return &DragController{view: view}
}

// Dragging reports whether a drag is in progress.
func (d *DragController) Dragging() bool {
	return d.dragging
}

// Start captures the pointer position and enters the dragging state.
func (d *DragController) Start(pointer Vec2) {
	d.dragging = true
	d.last = pointer
	d.hasLast = true
}

// Move applies the screen-space delta since the last sample to the position.
// No-op unless a drag is in progress with a resolvable previous sample.
func (d *DragController) Move(pointer Vec2) {
	if !d.dragging || !d.hasLast {
		return
	}
	pos := d.view.Position()
	d.view.SetPosition(Vec2{
		X: pos.X + pointer.X - d.last.X,
		Y: pos.Y + pointer.Y - d.last.Y,
	})
	d.last = pointer
}

// End clears the sample and returns to the idle state.
func (d *DragController) End() {
	d.dragging = false
	d.hasLast = false
}
