package pictor

import "testing"

func TestNewStyleStateDefaults(t *testing.T) {
	s := NewStyleState()
	if s.Current() != DefaultAttributes {
		t.Errorf("Current() = %+v, want %+v", s.Current(), DefaultAttributes)
	}
}

func TestCycleBorderWraps(t *testing.T) {
	s := NewStyleState()
	start := paletteIndex(DefaultAttributes.Border)
	for i := 1; i <= len(Palette); i++ {
		s.CycleBorder()
		want := Palette[(start+i)%len(Palette)]
		if got := s.Current().Border; got != want {
			t.Fatalf("after %d cycles border = %+v, want %+v", i, got, want)
		}
	}
	if s.Current().Border != DefaultAttributes.Border {
		t.Error("a full cycle should return to the starting color")
	}
}

func TestCycleFillIndependentOfBorder(t *testing.T) {
	s := NewStyleState()
	s.CycleFill()
	if s.Current().Border != DefaultAttributes.Border {
		t.Error("cycling fill changed border")
	}
	want := Palette[(paletteIndex(DefaultAttributes.Fill)+1)%len(Palette)]
	if s.Current().Fill != want {
		t.Errorf("fill = %+v, want %+v", s.Current().Fill, want)
	}
}

func TestCycleThickness(t *testing.T) {
	s := NewStyleState()
	var got []float64
	for range Thicknesses {
		s.CycleThickness()
		got = append(got, s.Current().Thickness)
	}
	want := []float64{3, 5, 8, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("thickness sequence = %v, want %v", got, want)
		}
	}
}

func TestToggleFillAndReset(t *testing.T) {
	s := NewStyleState()
	s.ToggleFill()
	if !s.Current().Filled {
		t.Fatal("ToggleFill should set Filled")
	}
	s.CycleBorder()
	s.CycleThickness()
	s.Reset()
	if s.Current() != DefaultAttributes {
		t.Errorf("after Reset = %+v, want defaults", s.Current())
	}
	// Cycle positions are re-synchronized too.
	s.CycleBorder()
	if s.Current().Border != Palette[paletteIndex(DefaultAttributes.Border)+1] {
		t.Error("cycle after Reset should continue from the default color")
	}
}

func TestStyleStatesAreIndependent(t *testing.T) {
	a := NewStyleState()
	b := NewStyleState()
	a.CycleBorder()
	a.CycleBorder()
	if b.Current().Border != DefaultAttributes.Border {
		t.Error("cycling one style changed another")
	}
}

func TestShapesOwnAttributesByValue(t *testing.T) {
	s := NewStyleState()
	g := NewSegment(s.Current(), Vec2{0, 0}, Vec2{1, 1})
	s.CycleBorder()
	s.ToggleFill()
	if g.Attributes() != DefaultAttributes {
		t.Error("style change leaked into an existing shape")
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		c    Color
		want [4]uint8
	}{
		{ColorWhite, [4]uint8{255, 255, 255, 255}},
		{ColorGray, [4]uint8{128, 128, 128, 255}},
		{Color{1, 0, 0, 0.5}, [4]uint8{128, 0, 0, 128}},
		{Color{2, -1, 0, 1}, [4]uint8{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		got := tt.c.RGBA()
		if [4]uint8{got.R, got.G, got.B, got.A} != tt.want {
			t.Errorf("%+v.RGBA() = %v, want %v", tt.c, got, tt.want)
		}
	}
}
