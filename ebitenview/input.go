package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/pictor"
)

var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	pb pictor.MouseButton
}{
	{ebiten.MouseButtonLeft, pictor.MouseButtonLeft},
	{ebiten.MouseButtonRight, pictor.MouseButtonRight},
	{ebiten.MouseButtonMiddle, pictor.MouseButtonMiddle},
}

// inputPoller turns Ebitengine's polled input state into discrete
// pictor events.
type inputPoller struct {
	lastX, lastY int
	started      bool
	keys         []ebiten.Key
}

// poll appends this frame's events to dst: cursor movement first, then
// button transitions, then key transitions.
func (p *inputPoller) poll(dst []pictor.Event) []pictor.Event {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if !p.started || mx != p.lastX || my != p.lastY {
		dst = append(dst, pictor.MouseMove(x, y))
		p.lastX, p.lastY = mx, my
		p.started = true
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			dst = append(dst, pictor.MouseDown(x, y, b.pb))
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			dst = append(dst, pictor.MouseUp(x, y, b.pb))
		}
	}

	mods := readModifiers()
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if isModifier(k) {
			continue
		}
		dst = append(dst, pictor.KeyDown(k.String(), mods))
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if isModifier(k) {
			continue
		}
		dst = append(dst, pictor.Event{Type: pictor.EventKeyUp, Key: k.String(), Modifiers: mods})
	}
	return dst
}

// isModifier reports keys that only ever act through KeyModifiers. They are
// never delivered as events so that holding Ctrl for a shortcut does not
// count as a key press to the active tool.
func isModifier(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight,
		ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight,
		ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight,
		ebiten.KeyMeta, ebiten.KeyMetaLeft, ebiten.KeyMetaRight:
		return true
	}
	return false
}

func readModifiers() pictor.KeyModifiers {
	var mods pictor.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= pictor.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= pictor.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= pictor.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= pictor.ModMeta
	}
	return mods
}
