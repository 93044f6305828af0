package pictor

// Surface is the drawing backend the editor renders into. Implementations
// exist for an Ebitengine screen (package ebitenview) and for offline PNG
// export (PNGSurface).
//
// Rectangles are given by their top-left corner and size. A thickness of
// zero or less is treated as 1.
type Surface interface {
	DrawLine(a, b Vec2, c Color, thickness float64)
	DrawRect(pos, size Vec2, c Color, filled bool, thickness float64)
	DrawCircle(center Vec2, radius float64, c Color, filled bool, thickness float64)
	DrawTexturedRect(texture string, pos, size Vec2)
	DrawText(pos Vec2, s string, size float64, c Color)
}

// handleHalfSize is half the edge length of a control-point marker.
const handleHalfSize = 4.0

// drawHandle renders the marker used for an editable control point.
func drawHandle(s Surface, p Vec2) {
	pos := p.Sub(Vec2{handleHalfSize, handleHalfSize})
	size := Vec2{2 * handleHalfSize, 2 * handleHalfSize}
	s.DrawRect(pos, size, ColorWhite, true, 0)
	s.DrawRect(pos, size, ColorBlack, false, 1)
}
