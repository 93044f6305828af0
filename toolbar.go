package pictor

import "path/filepath"

// Button is a rectangular hit region that triggers a named editor action
// when pressed. Icon is the texture path handed to Surface.DrawTexturedRect.
type Button struct {
	Name   string
	Icon   string
	Bounds Rect
	Action Action
}

// Contains reports whether p lies on the button.
func (b Button) Contains(p Vec2) bool {
	return b.Bounds.Contains(p.X, p.Y)
}

// Draw renders the icon with a gray outer frame and a black inner frame.
func (b Button) Draw(s Surface) {
	pos, size := b.Bounds.Pos(), b.Bounds.Size()
	s.DrawTexturedRect(b.Icon, pos, size)
	s.DrawRect(pos, size, ColorGray, false, 2)
	s.DrawRect(pos.Add(Vec2{2, 2}), size.Sub(Vec2{4, 4}), ColorBlack, false, 2)
}

// Toolbar is the row of buttons along the top edge of the window. It gets
// the first chance at every mouse press.
type Toolbar struct {
	Buttons []Button
}

type buttonSpec struct {
	name   string
	icon   string
	action Action
}

var defaultButtons = []buttonSpec{
	{"Segment", "tool_segment.png", ActionToolSegment},
	{"Rectangle", "tool_rectangle.png", ActionToolRectangle},
	{"Circle", "tool_circle.png", ActionToolCircle},
	{"Polygon", "tool_polygon.png", ActionToolPolygon},
	{"Select", "tool_select.png", ActionToolSelect},
	{"Edit points", "tool_edit.png", ActionToolEditPoints},
	{"Border color", "style_border.png", ActionCycleBorder},
	{"Fill color", "style_fill.png", ActionCycleFill},
	{"Thickness", "style_thickness.png", ActionCycleThickness},
	{"Fill on/off", "style_filled.png", ActionToggleFill},
	{"Bring forward", "order_front.png", ActionFront},
	{"Send backward", "order_back.png", ActionBack},
	{"Clear", "scene_clear.png", ActionClear},
	{"Save", "file_save.png", ActionSave},
	{"Load", "file_load.png", ActionLoad},
	{"Undo", "edit_undo.png", ActionUndo},
}

// NewToolbar lays out the default buttons left to right at y=0, each size
// pixels square, with icons resolved relative to iconDir.
func NewToolbar(iconDir string, size float64) *Toolbar {
	tb := &Toolbar{Buttons: make([]Button, 0, len(defaultButtons))}
	x := 0.0
	for _, spec := range defaultButtons {
		tb.Buttons = append(tb.Buttons, Button{
			Name:   spec.name,
			Icon:   filepath.Join(iconDir, spec.icon),
			Bounds: Rect{X: x, Y: 0, Width: size, Height: size},
			Action: spec.action,
		})
		x += size
	}
	return tb
}

// HitTest returns the button under p. ok is false when p misses them all.
func (tb *Toolbar) HitTest(p Vec2) (b Button, ok bool) {
	for _, b := range tb.Buttons {
		if b.Contains(p) {
			return b, true
		}
	}
	return Button{}, false
}

// Draw renders every button.
func (tb *Toolbar) Draw(s Surface) {
	for _, b := range tb.Buttons {
		b.Draw(s)
	}
}
