package pictor

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Named colors used by the default palette and editor chrome.
var (
	ColorBlack   = Color{0, 0, 0, 1}
	ColorWhite   = Color{1, 1, 1, 1}
	ColorGray    = Color{0.5, 0.5, 0.5, 1}
	ColorRed     = Color{1, 0, 0, 1}
	ColorGreen   = Color{0, 1, 0, 1}
	ColorBlue    = Color{0, 0, 1, 1}
	ColorYellow  = Color{1, 1, 0, 1}
	ColorCyan    = Color{0, 1, 1, 1}
	ColorMagenta = Color{1, 0, 1, 1}
)

// RGBA converts c to a premultiplied color.RGBA, clamping each channel.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. Coordinates are screen pixels with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromCorners returns the rectangle spanned by two opposite corners given
// in any order.
func RectFromCorners(a, b Vec2) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(a.X - b.X),
		Height: math.Abs(a.Y - b.Y),
	}
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 { return Vec2{r.X, r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventMouseDown EventType = iota // a mouse button was pressed
	EventMouseUp                    // a mouse button was released
	EventMouseMove                  // the cursor moved
	EventKeyDown                    // a key was pressed
	EventKeyUp                      // a key was released
)

var eventTypeNames = [...]string{"MouseDown", "MouseUp", "MouseMove", "KeyDown", "KeyUp"}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// Event is one discrete input event in screen coordinates. Key holds the
// key name (e.g. "Escape", "A") for keyboard events and is empty otherwise.
type Event struct {
	Type      EventType
	Pos       Vec2
	Button    MouseButton
	Key       string
	Modifiers KeyModifiers
}

// IsPrimaryDown reports whether e is a left-button press.
func (e Event) IsPrimaryDown() bool {
	return e.Type == EventMouseDown && e.Button == MouseButtonLeft
}

// IsPrimaryUp reports whether e is a left-button release.
func (e Event) IsPrimaryUp() bool {
	return e.Type == EventMouseUp && e.Button == MouseButtonLeft
}

// IsSecondaryDown reports whether e is a press of any non-primary button.
func (e Event) IsSecondaryDown() bool {
	return e.Type == EventMouseDown && e.Button != MouseButtonLeft
}

// MouseDown builds a button press event at (x, y).
func MouseDown(x, y float64, b MouseButton) Event {
	return Event{Type: EventMouseDown, Pos: Vec2{x, y}, Button: b}
}

// MouseUp builds a button release event at (x, y).
func MouseUp(x, y float64, b MouseButton) Event {
	return Event{Type: EventMouseUp, Pos: Vec2{x, y}, Button: b}
}

// MouseMove builds a cursor move event at (x, y).
func MouseMove(x, y float64) Event {
	return Event{Type: EventMouseMove, Pos: Vec2{x, y}}
}

// KeyDown builds a key press event.
func KeyDown(key string, mods KeyModifiers) Event {
	return Event{Type: EventKeyDown, Key: key, Modifiers: mods}
}
