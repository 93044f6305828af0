package pictor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse oscillates a value between Low and High, easing each half cycle
// with fn. The editor uses it to make the selection highlight breathe.
//
// There is no global animation manager: callers advance it with Update.
type Pulse struct {
	Low, High float64

	half   float32
	fn     ease.TweenFunc
	tween  *gween.Tween
	value  float64
	rising bool
}

// Default selection highlight pulse.
const (
	pulseLow      = 0.35
	pulseHigh     = 1.0
	pulseDuration = 0.6 // seconds per half cycle
)

// NewPulse creates a pulse starting at high and easing down first. half is
// the duration of one sweep in seconds.
func NewPulse(low, high float64, half float32, fn ease.TweenFunc) *Pulse {
	if fn == nil {
		fn = ease.Linear
	}
	p := &Pulse{Low: low, High: high, half: half, fn: fn, value: high}
	p.restart()
	return p
}

func (p *Pulse) restart() {
	from, to := p.High, p.Low
	if p.rising {
		from, to = p.Low, p.High
	}
	p.tween = gween.New(float32(from), float32(to), p.half, p.fn)
}

// Update advances the pulse by dt seconds.
func (p *Pulse) Update(dt float32) {
	if p.half <= 0 {
		return
	}
	val, finished := p.tween.Update(dt)
	p.value = float64(val)
	if finished {
		p.rising = !p.rising
		p.restart()
	}
}

// Alpha returns the current value.
func (p *Pulse) Alpha() float64 {
	return p.value
}
