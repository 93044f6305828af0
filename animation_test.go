package pictor

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestPulseStartsHigh(t *testing.T) {
	p := NewPulse(0.2, 0.8, 1, ease.Linear)
	if p.Alpha() != 0.8 {
		t.Errorf("Alpha() = %v, want 0.8", p.Alpha())
	}
}

func TestPulsePingPong(t *testing.T) {
	p := NewPulse(0, 1, 1, ease.Linear)

	p.Update(0.5)
	if math.Abs(p.Alpha()-0.5) > 0.01 {
		t.Errorf("half way down = %v, want ~0.5", p.Alpha())
	}
	p.Update(0.5)
	if math.Abs(p.Alpha()) > 0.01 {
		t.Errorf("bottom = %v, want ~0", p.Alpha())
	}
	p.Update(0.5)
	if math.Abs(p.Alpha()-0.5) > 0.01 {
		t.Errorf("half way up = %v, want ~0.5", p.Alpha())
	}
	p.Update(0.5)
	if math.Abs(p.Alpha()-1) > 0.01 {
		t.Errorf("top = %v, want ~1", p.Alpha())
	}
}

func TestPulseStaysInRange(t *testing.T) {
	p := NewPulse(pulseLow, pulseHigh, pulseDuration, ease.InOutSine)
	for i := 0; i < 500; i++ {
		p.Update(1.0 / 60)
		if a := p.Alpha(); a < pulseLow-1e-6 || a > pulseHigh+1e-6 {
			t.Fatalf("frame %d: alpha %v outside [%v, %v]", i, a, pulseLow, pulseHigh)
		}
	}
}

func TestPulseZeroDurationIsStatic(t *testing.T) {
	p := NewPulse(0, 1, 0, nil)
	p.Update(1)
	if p.Alpha() != 1 {
		t.Errorf("Alpha() = %v, want 1", p.Alpha())
	}
}
