package pictor

import "math"

// HitTolerance is the maximum distance in pixels between a point and a
// segment (or polygon edge) for the point to count as a hit.
const HitTolerance = 6.0

// ShapeKind distinguishes the geometric variants a scene can hold.
type ShapeKind uint8

const (
	ShapeSegment   ShapeKind = iota // straight line between two endpoints
	ShapeRectangle                  // axis-aligned box spanned by two corners
	ShapeCircle                     // center and radius
	ShapePolygon                    // open polyline through its vertices
)

// Tag returns the snapshot type tag of the kind.
func (k ShapeKind) Tag() string {
	switch k {
	case ShapeSegment:
		return "SEG"
	case ShapeRectangle:
		return "RECT"
	case ShapeCircle:
		return "CIRC"
	case ShapePolygon:
		return "POLY"
	}
	return "?"
}

// Shape is the capability set shared by every scene object. Tools operate
// on shapes only through this interface.
type Shape interface {
	Kind() ShapeKind
	Attributes() Attributes

	// Draw renders the shape. The fill is drawn before the border.
	Draw(s Surface)
	// DrawOutline renders the shape's outline in a single color, ignoring
	// its own attributes. Used for selection highlighting.
	DrawOutline(s Surface, c Color, thickness float64)
	// DrawPoints renders a handle at every control point.
	DrawPoints(s Surface)

	HitTest(p Vec2) bool
	MoveBy(d Vec2)

	// PointCount, Point and SetPoint expose the editable control points.
	// Out-of-range indices read as the zero vector and writes are ignored.
	PointCount() int
	Point(i int) Vec2
	SetPoint(i int, p Vec2)

	// Clone returns a deep copy.
	Clone() Shape
}

// distToSegment returns the distance from p to the nearest point of the
// segment a-b. A degenerate segment measures the distance to a.
func distToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Dist(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Dist(a.Add(ab.Scale(t)))
}

// --- Segment ---

// Segment is a straight line between P1 and P2.
type Segment struct {
	Attr   Attributes
	P1, P2 Vec2
}

// NewSegment creates a segment from a to b.
func NewSegment(attr Attributes, a, b Vec2) *Segment {
	return &Segment{Attr: attr, P1: a, P2: b}
}

func (g *Segment) Kind() ShapeKind        { return ShapeSegment }
func (g *Segment) Attributes() Attributes { return g.Attr }

func (g *Segment) Draw(s Surface) {
	s.DrawLine(g.P1, g.P2, g.Attr.Border, g.Attr.Thickness)
}

func (g *Segment) DrawOutline(s Surface, c Color, thickness float64) {
	s.DrawLine(g.P1, g.P2, c, thickness)
}

func (g *Segment) DrawPoints(s Surface) { drawPoints(s, g) }

func (g *Segment) HitTest(p Vec2) bool {
	return distToSegment(p, g.P1, g.P2) <= HitTolerance
}

func (g *Segment) MoveBy(d Vec2) {
	g.P1 = g.P1.Add(d)
	g.P2 = g.P2.Add(d)
}

func (g *Segment) PointCount() int { return 2 }

func (g *Segment) Point(i int) Vec2 {
	switch i {
	case 0:
		return g.P1
	case 1:
		return g.P2
	}
	return Vec2{}
}

func (g *Segment) SetPoint(i int, p Vec2) {
	switch i {
	case 0:
		g.P1 = p
	case 1:
		g.P2 = p
	}
}

func (g *Segment) Clone() Shape {
	c := *g
	return &c
}

// --- Rectangle ---

// Rectangle is an axis-aligned box spanned by two opposite corners given in
// any order.
type Rectangle struct {
	Attr   Attributes
	P1, P2 Vec2
}

// NewRectangle creates a rectangle spanned by corners a and b.
func NewRectangle(attr Attributes, a, b Vec2) *Rectangle {
	return &Rectangle{Attr: attr, P1: a, P2: b}
}

func (g *Rectangle) Kind() ShapeKind        { return ShapeRectangle }
func (g *Rectangle) Attributes() Attributes { return g.Attr }

// Bounds returns the normalized rectangle.
func (g *Rectangle) Bounds() Rect { return RectFromCorners(g.P1, g.P2) }

func (g *Rectangle) Draw(s Surface) {
	drawBox(s, g.Bounds(), g.Attr)
}

func (g *Rectangle) DrawOutline(s Surface, c Color, thickness float64) {
	r := g.Bounds()
	s.DrawRect(r.Pos(), r.Size(), c, false, thickness)
}

func (g *Rectangle) DrawPoints(s Surface) { drawPoints(s, g) }

func (g *Rectangle) HitTest(p Vec2) bool {
	return g.Bounds().Contains(p.X, p.Y)
}

func (g *Rectangle) MoveBy(d Vec2) {
	g.P1 = g.P1.Add(d)
	g.P2 = g.P2.Add(d)
}

func (g *Rectangle) PointCount() int { return 2 }

func (g *Rectangle) Point(i int) Vec2 {
	switch i {
	case 0:
		return g.P1
	case 1:
		return g.P2
	}
	return Vec2{}
}

func (g *Rectangle) SetPoint(i int, p Vec2) {
	switch i {
	case 0:
		g.P1 = p
	case 1:
		g.P2 = p
	}
}

func (g *Rectangle) Clone() Shape {
	c := *g
	return &c
}

// drawBox fills (when requested) and then strokes an axis-aligned box.
func drawBox(s Surface, r Rect, a Attributes) {
	if a.Filled {
		s.DrawRect(r.Pos(), r.Size(), a.Fill, true, 0)
	}
	s.DrawRect(r.Pos(), r.Size(), a.Border, false, a.Thickness)
}

// --- Circle ---

// Circle is defined by its center and radius. Its second control point is
// a synthetic radius handle at Center+(Radius, 0).
type Circle struct {
	Attr   Attributes
	Center Vec2
	Radius float64
}

// NewCircle creates a circle centered at center passing through rim.
func NewCircle(attr Attributes, center, rim Vec2) *Circle {
	return &Circle{Attr: attr, Center: center, Radius: center.Dist(rim)}
}

func (g *Circle) Kind() ShapeKind        { return ShapeCircle }
func (g *Circle) Attributes() Attributes { return g.Attr }

func (g *Circle) Draw(s Surface) {
	drawDisc(s, g.Center, g.Radius, g.Attr)
}

func (g *Circle) DrawOutline(s Surface, c Color, thickness float64) {
	s.DrawCircle(g.Center, g.Radius, c, false, thickness)
}

func (g *Circle) DrawPoints(s Surface) { drawPoints(s, g) }

// HitTest reports whether p lies inside or on the circle.
func (g *Circle) HitTest(p Vec2) bool {
	dx := p.X - g.Center.X
	dy := p.Y - g.Center.Y
	return dx*dx+dy*dy <= g.Radius*g.Radius
}

func (g *Circle) MoveBy(d Vec2) {
	g.Center = g.Center.Add(d)
}

func (g *Circle) PointCount() int { return 2 }

func (g *Circle) Point(i int) Vec2 {
	switch i {
	case 0:
		return g.Center
	case 1:
		return g.Center.Add(Vec2{g.Radius, 0})
	}
	return Vec2{}
}

// SetPoint moves the whole circle for index 0 and recomputes the radius
// for index 1.
func (g *Circle) SetPoint(i int, p Vec2) {
	switch i {
	case 0:
		g.Center = p
	case 1:
		g.Radius = p.Dist(g.Center)
	}
}

func (g *Circle) Clone() Shape {
	c := *g
	return &c
}

// drawDisc fills (when requested) and then strokes a circle.
func drawDisc(s Surface, center Vec2, radius float64, a Attributes) {
	if a.Filled {
		s.DrawCircle(center, radius, a.Fill, true, 0)
	}
	s.DrawCircle(center, radius, a.Border, false, a.Thickness)
}

// --- Polygon ---

// Polygon is an open polyline: consecutive points are joined, the last
// point is not joined back to the first. Polygons are never filled.
type Polygon struct {
	Attr   Attributes
	Points []Vec2
}

// NewPolygon creates a polygon with a copy of pts.
func NewPolygon(attr Attributes, pts ...Vec2) *Polygon {
	p := &Polygon{Attr: attr}
	p.Points = append(p.Points, pts...)
	return p
}

func (g *Polygon) Kind() ShapeKind        { return ShapePolygon }
func (g *Polygon) Attributes() Attributes { return g.Attr }

// AddPoint appends a vertex.
func (g *Polygon) AddPoint(p Vec2) {
	g.Points = append(g.Points, p)
}

func (g *Polygon) Draw(s Surface) {
	g.DrawOutline(s, g.Attr.Border, g.Attr.Thickness)
}

func (g *Polygon) DrawOutline(s Surface, c Color, thickness float64) {
	for i := 0; i+1 < len(g.Points); i++ {
		s.DrawLine(g.Points[i], g.Points[i+1], c, thickness)
	}
}

func (g *Polygon) DrawPoints(s Surface) { drawPoints(s, g) }

// HitTest reports whether p is within HitTolerance of any edge. A polygon
// with fewer than two points has no edges and never hits.
func (g *Polygon) HitTest(p Vec2) bool {
	for i := 0; i+1 < len(g.Points); i++ {
		if distToSegment(p, g.Points[i], g.Points[i+1]) <= HitTolerance {
			return true
		}
	}
	return false
}

func (g *Polygon) MoveBy(d Vec2) {
	for i := range g.Points {
		g.Points[i] = g.Points[i].Add(d)
	}
}

func (g *Polygon) PointCount() int { return len(g.Points) }

func (g *Polygon) Point(i int) Vec2 {
	if i < 0 || i >= len(g.Points) {
		return Vec2{}
	}
	return g.Points[i]
}

func (g *Polygon) SetPoint(i int, p Vec2) {
	if i < 0 || i >= len(g.Points) {
		return
	}
	g.Points[i] = p
}

func (g *Polygon) Clone() Shape {
	return NewPolygon(g.Attr, g.Points...)
}

func drawPoints(s Surface, g Shape) {
	for i, n := 0, g.PointCount(); i < n; i++ {
		drawHandle(s, g.Point(i))
	}
}
