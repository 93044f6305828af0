package pictor

// editPointTolerance is how close (in pixels) a press must land to a
// control point for the edit-points tool to grab it.
const editPointTolerance = 8.0

// selectTool picks the front-most shape under a press, drags it while the
// primary button is held, and deletes it on a secondary press or any key.
type selectTool struct {
	dragging bool
	moved    bool
	last     Vec2
}

func (t *selectTool) Kind() ToolKind { return ToolSelect }

func (t *selectTool) Reset() {
	t.dragging = false
	t.moved = false
}

func (t *selectTool) ProcessEvent(ev Event, ed *Editor) {
	switch {
	case ev.Type == EventMouseMove:
		g := ed.scene.SelectedShape()
		if !t.dragging || g == nil {
			return
		}
		if !t.moved {
			// One snapshot per drag gesture.
			ed.PushUndo()
			t.moved = true
		}
		g.MoveBy(ev.Pos.Sub(t.last))
		t.last = ev.Pos

	case ev.IsPrimaryDown():
		i := ed.scene.HitTest(ev.Pos)
		ed.scene.Select(i)
		t.dragging = i >= 0
		t.moved = false
		t.last = ev.Pos

	case ev.IsPrimaryUp():
		t.Reset()

	case ev.IsSecondaryDown(), ev.Type == EventKeyDown && ev.Modifiers&ModCtrl == 0:
		t.Reset()
		i := ed.scene.Selected()
		if i < 0 {
			return
		}
		if ed.snapshotOnDelete {
			ed.PushUndo()
		}
		ed.scene.Remove(i)
		ed.logger.Debug("shape deleted", "index", i)
	}
}

func (t *selectTool) Draw(s Surface, ed *Editor) {
	g := ed.scene.SelectedShape()
	if g == nil {
		return
	}
	g.DrawOutline(s, ColorYellow.WithAlpha(ed.pulse.Alpha()), 2)
}

// editPointsTool drags individual control points. Every shape shows its
// handles while the tool is active.
type editPointsTool struct {
	dragging bool
	moved    bool
	obj      int
	point    int
}

func (t *editPointsTool) Kind() ToolKind { return ToolEditPoints }

func (t *editPointsTool) Reset() {
	t.dragging = false
	t.moved = false
	t.obj = -1
	t.point = -1
}

// tracked returns the shape holding the tracked point, or nil if the pair
// no longer refers to a live control point.
func (t *editPointsTool) tracked(ed *Editor) Shape {
	g := ed.scene.At(t.obj)
	if g == nil || t.point < 0 || t.point >= g.PointCount() {
		return nil
	}
	return g
}

// pick scans shapes front to back, and each shape's points in order, for
// the first control point within editPointTolerance of p.
func pick(sc *Scene, p Vec2) (obj, point int) {
	for i := sc.Len() - 1; i >= 0; i-- {
		g := sc.At(i)
		for j, n := 0, g.PointCount(); j < n; j++ {
			if g.Point(j).Dist(p) <= editPointTolerance {
				return i, j
			}
		}
	}
	return -1, -1
}

func (t *editPointsTool) ProcessEvent(ev Event, ed *Editor) {
	switch {
	case ev.Type == EventMouseMove:
		if !t.dragging {
			return
		}
		g := t.tracked(ed)
		if g == nil {
			t.Reset()
			return
		}
		if !t.moved {
			ed.PushUndo()
			t.moved = true
		}
		g.SetPoint(t.point, ev.Pos)

	case ev.IsPrimaryDown():
		t.Reset()
		t.obj, t.point = pick(ed.scene, ev.Pos)
		t.dragging = t.obj >= 0
		ed.scene.Select(t.obj)

	case ev.IsPrimaryUp():
		t.dragging = false
		t.moved = false
	}
}

func (t *editPointsTool) Draw(s Surface, ed *Editor) {
	for _, g := range ed.scene.Objects() {
		g.DrawPoints(s)
	}
	g := t.tracked(ed)
	if g == nil {
		return
	}
	const half = 6.0
	p := g.Point(t.point)
	s.DrawRect(p.Sub(Vec2{half, half}), Vec2{2 * half, 2 * half}, ColorRed, true, 0)
}
