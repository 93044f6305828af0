package pictor

// Attributes is the drawing style carried by every shape. Shapes own their
// Attributes by value: changing the editor's current style never alters
// shapes that already exist.
type Attributes struct {
	Border    Color
	Fill      Color
	Filled    bool
	Thickness float64
}

// DefaultAttributes is the style a fresh editor (or a cleared scene) starts with.
var DefaultAttributes = Attributes{
	Border:    ColorWhite,
	Fill:      ColorGray,
	Filled:    false,
	Thickness: 2,
}

// Palette is the sequence border and fill colors cycle through.
var Palette = []Color{
	ColorWhite,
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorYellow,
	ColorCyan,
	ColorMagenta,
	ColorGray,
	ColorBlack,
}

// Thicknesses is the sequence stroke widths cycle through.
var Thicknesses = []float64{1, 2, 3, 5, 8}

// StyleState holds the attributes stamped onto the next created shape along
// with the palette positions used by the cycle actions. Each editor owns
// its own StyleState, so sessions never share cycle positions.
type StyleState struct {
	current   Attributes
	border    int
	fill      int
	thickness int
}

// NewStyleState returns a style positioned on DefaultAttributes.
func NewStyleState() StyleState {
	var s StyleState
	s.Reset()
	return s
}

// Current returns the attributes the next shape will receive.
func (s *StyleState) Current() Attributes {
	return s.current
}

// Reset restores DefaultAttributes and re-synchronizes the cycle positions.
func (s *StyleState) Reset() {
	s.current = DefaultAttributes
	s.border = paletteIndex(DefaultAttributes.Border)
	s.fill = paletteIndex(DefaultAttributes.Fill)
	s.thickness = thicknessIndex(DefaultAttributes.Thickness)
}

// CycleBorder advances the border color to the next palette entry.
func (s *StyleState) CycleBorder() {
	s.border = (s.border + 1) % len(Palette)
	s.current.Border = Palette[s.border]
}

// CycleFill advances the fill color to the next palette entry.
func (s *StyleState) CycleFill() {
	s.fill = (s.fill + 1) % len(Palette)
	s.current.Fill = Palette[s.fill]
}

// CycleThickness advances the stroke width to the next entry of Thicknesses.
func (s *StyleState) CycleThickness() {
	s.thickness = (s.thickness + 1) % len(Thicknesses)
	s.current.Thickness = Thicknesses[s.thickness]
}

// ToggleFill flips whether new shapes are filled.
func (s *StyleState) ToggleFill() {
	s.current.Filled = !s.current.Filled
}

func paletteIndex(c Color) int {
	for i, p := range Palette {
		if p == c {
			return i
		}
	}
	return 0
}

func thicknessIndex(t float64) int {
	for i, v := range Thicknesses {
		if v == t {
			return i
		}
	}
	return 0
}
