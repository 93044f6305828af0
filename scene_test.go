package pictor

import "testing"

func sceneOf(shapes ...Shape) *Scene {
	s := NewScene()
	for _, g := range shapes {
		s.Add(g)
	}
	return s
}

func seg(x1, y1, x2, y2 float64) *Segment {
	return NewSegment(DefaultAttributes, Vec2{x1, y1}, Vec2{x2, y2})
}

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if s.Selected() != -1 {
		t.Errorf("Selected() = %d, want -1", s.Selected())
	}
	if s.At(0) != nil {
		t.Error("At(0) on empty scene should be nil")
	}
}

func TestSceneHitTestFrontMostWins(t *testing.T) {
	back := NewRectangle(DefaultAttributes, Vec2{0, 0}, Vec2{100, 100})
	front := NewRectangle(DefaultAttributes, Vec2{50, 50}, Vec2{150, 150})
	s := sceneOf(back, front)

	tests := []struct {
		p    Vec2
		want int
	}{
		{Vec2{75, 75}, 1},
		{Vec2{10, 10}, 0},
		{Vec2{140, 140}, 1},
		{Vec2{200, 200}, -1},
	}
	for _, tt := range tests {
		if got := s.HitTest(tt.p); got != tt.want {
			t.Errorf("HitTest(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestSceneRemoveAdjustsSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		remove   int
		want     int
	}{
		{"remove selected", 1, 1, -1},
		{"remove below selected", 2, 0, 1},
		{"remove above selected", 0, 2, 0},
		{"no selection", -1, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sceneOf(seg(0, 0, 1, 1), seg(0, 0, 2, 2), seg(0, 0, 3, 3))
			s.Select(tt.selected)
			if !s.Remove(tt.remove) {
				t.Fatal("Remove returned false")
			}
			if s.Len() != 2 {
				t.Fatalf("Len() = %d, want 2", s.Len())
			}
			if got := s.Selected(); got != tt.want {
				t.Errorf("Selected() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSceneRemoveOutOfRange(t *testing.T) {
	s := sceneOf(seg(0, 0, 1, 1))
	if s.Remove(1) || s.Remove(-1) {
		t.Error("out-of-range Remove should return false")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSceneSwapFollowsSelection(t *testing.T) {
	a, b := seg(0, 0, 1, 1), seg(0, 0, 2, 2)
	s := sceneOf(a, b)
	s.Select(0)
	if !s.Swap(0, 1) {
		t.Fatal("Swap returned false")
	}
	if s.At(0) != Shape(b) || s.At(1) != Shape(a) {
		t.Error("shapes not swapped")
	}
	if s.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", s.Selected())
	}
	if s.Swap(0, 2) {
		t.Error("out-of-range Swap should return false")
	}
}

func TestSceneStaleSelection(t *testing.T) {
	s := sceneOf(seg(0, 0, 1, 1), seg(0, 0, 2, 2))
	s.Select(1)
	// Shrink the scene behind the selection's back.
	s.objects = s.objects[:1]
	if s.Selected() != -1 {
		t.Errorf("Selected() = %d, want -1 for a stale index", s.Selected())
	}
	if s.SelectedShape() != nil {
		t.Error("SelectedShape() should be nil for a stale index")
	}
	s.validateSelection()
	if s.selected != -1 {
		t.Errorf("selected = %d after validate, want -1", s.selected)
	}
}

func TestSceneSelectOutOfRangeClears(t *testing.T) {
	s := sceneOf(seg(0, 0, 1, 1))
	s.Select(0)
	s.Select(5)
	if s.Selected() != -1 {
		t.Errorf("Selected() = %d, want -1", s.Selected())
	}
}

func TestSceneClearAndReplace(t *testing.T) {
	s := sceneOf(seg(0, 0, 1, 1), seg(0, 0, 2, 2))
	s.Select(1)
	s.Replace([]Shape{seg(5, 5, 6, 6)})
	if s.Len() != 1 || s.Selected() != -1 {
		t.Errorf("after Replace: len %d selected %d", s.Len(), s.Selected())
	}
	s.Select(0)
	s.Clear()
	if s.Len() != 0 || s.Selected() != -1 {
		t.Errorf("after Clear: len %d selected %d", s.Len(), s.Selected())
	}
}

func TestSceneDrawBackToFront(t *testing.T) {
	red := NewSegment(Attributes{Border: ColorRed, Thickness: 1}, Vec2{0, 0}, Vec2{1, 1})
	blue := NewSegment(Attributes{Border: ColorBlue, Thickness: 1}, Vec2{0, 0}, Vec2{1, 1})
	var r recordingSurface
	sceneOf(red, blue).Draw(&r)
	if len(r.calls) != 2 || r.calls[0].color != ColorRed || r.calls[1].color != ColorBlue {
		t.Errorf("draw order = %v, want red then blue", &r)
	}
}
