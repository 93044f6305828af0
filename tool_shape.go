package pictor

// shapeTool creates two-point shapes (segments, rectangles, circles) with a
// press-drag-release gesture. The shape only enters the scene on release.
type shapeTool struct {
	kind   ToolKind
	state  toolState
	anchor Vec2
}

func (t *shapeTool) Kind() ToolKind { return t.kind }

func (t *shapeTool) Reset() {
	t.state = stateWait
}

func (t *shapeTool) build(attr Attributes, a, b Vec2) Shape {
	switch t.kind {
	case ToolRectangle:
		return NewRectangle(attr, a, b)
	case ToolCircle:
		return NewCircle(attr, a, b)
	}
	return NewSegment(attr, a, b)
}

func (t *shapeTool) ProcessEvent(ev Event, ed *Editor) {
	switch {
	case ev.IsPrimaryDown():
		t.anchor = ev.Pos
		t.state = stateInteract
	case ev.IsPrimaryUp() && t.state == stateInteract:
		ed.PushUndo()
		ed.scene.Add(t.build(ed.style.Current(), t.anchor, ev.Pos))
		t.state = stateWait
	}
}

func (t *shapeTool) Draw(s Surface, ed *Editor) {
	if t.state != stateInteract {
		return
	}
	t.build(ed.style.Current(), t.anchor, ed.mouse).Draw(s)
}

// polygonTool builds an open polyline one click at a time. The polygon is
// appended to the scene on the first click so it renders while being built;
// index tracks it there and poly identifies it if the scene is reordered.
type polygonTool struct {
	building bool
	index    int
	poly     *Polygon
}

func (t *polygonTool) Kind() ToolKind { return ToolPolygon }

func (t *polygonTool) Reset() {
	t.building = false
	t.index = -1
	t.poly = nil
}

// current returns the polygon under construction, or nil if it is no
// longer in the scene. index is refreshed when the polygon has moved.
func (t *polygonTool) current(ed *Editor) *Polygon {
	if !t.building {
		return nil
	}
	if ed.scene.At(t.index) == Shape(t.poly) {
		return t.poly
	}
	for i := 0; i < ed.scene.Len(); i++ {
		if ed.scene.At(i) == Shape(t.poly) {
			t.index = i
			return t.poly
		}
	}
	return nil
}

func (t *polygonTool) ProcessEvent(ev Event, ed *Editor) {
	switch {
	case ev.IsPrimaryDown():
		p := t.current(ed)
		if p == nil {
			ed.PushUndo()
			p = NewPolygon(ed.style.Current())
			t.index = ed.scene.Add(p)
			t.poly = p
			t.building = true
		}
		p.AddPoint(ev.Pos)
	case ev.IsSecondaryDown():
		t.Finish(ed)
	case ev.Type == EventKeyDown && ev.Key == "Escape":
		t.Finish(ed)
	}
}

// Finish ends construction. A polygon with fewer than two points is
// removed from the scene.
func (t *polygonTool) Finish(ed *Editor) {
	if p := t.current(ed); p != nil && len(p.Points) < 2 {
		ed.scene.Remove(t.index)
	}
	t.Reset()
}

func (t *polygonTool) Draw(s Surface, ed *Editor) {
	p := t.current(ed)
	if p == nil || len(p.Points) == 0 {
		return
	}
	attr := ed.style.Current()
	p.DrawOutline(s, attr.Border, attr.Thickness)
	s.DrawLine(p.Points[len(p.Points)-1], ed.mouse, attr.Border, attr.Thickness)
}
