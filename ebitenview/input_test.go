package ebitenview

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestIsModifier(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want bool
	}{
		{ebiten.KeyControlLeft, true},
		{ebiten.KeyShiftRight, true},
		{ebiten.KeyAlt, true},
		{ebiten.KeyMetaLeft, true},
		{ebiten.KeyZ, false},
		{ebiten.KeyEscape, false},
		{ebiten.KeyDelete, false},
	}
	for _, tt := range tests {
		if got := isModifier(tt.key); got != tt.want {
			t.Errorf("isModifier(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

// The editor matches shortcut and Escape keys by these names.
func TestKeyNames(t *testing.T) {
	for key, want := range map[ebiten.Key]string{
		ebiten.KeyZ:      "Z",
		ebiten.KeyV:      "V",
		ebiten.KeyEscape: "Escape",
	} {
		if got := key.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", key, got, want)
		}
	}
}

func TestStrokeWidth(t *testing.T) {
	for in, want := range map[float64]float32{0: 1, -2: 1, 1: 1, 2.5: 2.5} {
		if got := width(in); got != want {
			t.Errorf("width(%v) = %v, want %v", in, got, want)
		}
	}
}
