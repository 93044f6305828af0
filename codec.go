package pictor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedSnapshot is wrapped by every snapshot decoding failure.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// EncodeSnapshot serializes shapes into the line-oriented snapshot form:
//
//	<N>
//	<TAG> <geometry...> <border R G B> <fill R G B> <thickness> <filled 0|1>
//
// Geometry per tag: RECT x1 y1 x2 y2, SEG x1 y1 x2 y2, CIRC cx cy radius,
// POLY m x1 y1 ... xm ym. Numbers use the shortest representation that
// parses back to the same float64, so decoding is exact.
func EncodeSnapshot(objects []Shape) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(objects)))
	b.WriteByte('\n')
	for _, g := range objects {
		encodeShape(&b, g)
		b.WriteByte('\n')
	}
	return b.String()
}

func encodeShape(b *strings.Builder, g Shape) {
	b.WriteString(g.Kind().Tag())
	switch v := g.(type) {
	case *Segment:
		writeNums(b, v.P1.X, v.P1.Y, v.P2.X, v.P2.Y)
	case *Rectangle:
		writeNums(b, v.P1.X, v.P1.Y, v.P2.X, v.P2.Y)
	case *Circle:
		writeNums(b, v.Center.X, v.Center.Y, v.Radius)
	case *Polygon:
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(len(v.Points)))
		for _, p := range v.Points {
			writeNums(b, p.X, p.Y)
		}
	}
	a := g.Attributes()
	writeNums(b, a.Border.R, a.Border.G, a.Border.B, a.Fill.R, a.Fill.G, a.Fill.B, a.Thickness)
	if a.Filled {
		b.WriteString(" 1")
	} else {
		b.WriteString(" 0")
	}
}

func writeNums(b *strings.Builder, vals ...float64) {
	for _, v := range vals {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
}

// DecodeSnapshot parses the form produced by EncodeSnapshot. Line breaks
// are not significant; fields are whitespace separated. Decoding is strict:
// a truncated record, an unparsable number, an unknown tag, or trailing
// data fails the whole snapshot and no shapes are returned.
func DecodeSnapshot(data string) ([]Shape, error) {
	r := &tokenReader{fields: strings.Fields(data)}

	n, err := r.int("object count")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative object count %d", ErrMalformedSnapshot, n)
	}

	// Counts come from the input; never size allocations beyond what the
	// remaining fields could hold.
	objects := make([]Shape, 0, min(n, r.remaining()))
	for i := 0; i < n; i++ {
		g, err := r.shape()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		objects = append(objects, g)
	}
	if r.pos < len(r.fields) {
		return nil, fmt.Errorf("%w: unexpected trailing data %q", ErrMalformedSnapshot, r.fields[r.pos])
	}
	return objects, nil
}

type tokenReader struct {
	fields []string
	pos    int
}

func (r *tokenReader) remaining() int {
	return len(r.fields) - r.pos
}

func (r *tokenReader) next(what string) (string, error) {
	if r.pos >= len(r.fields) {
		return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformedSnapshot, what)
	}
	tok := r.fields[r.pos]
	r.pos++
	return tok, nil
}

func (r *tokenReader) float(what string) (float64, error) {
	tok, err := r.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s %q", ErrMalformedSnapshot, what, tok)
	}
	return v, nil
}

func (r *tokenReader) int(what string) (int, error) {
	tok, err := r.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s %q", ErrMalformedSnapshot, what, tok)
	}
	return v, nil
}

func (r *tokenReader) vec(what string) (Vec2, error) {
	x, err := r.float(what)
	if err != nil {
		return Vec2{}, err
	}
	y, err := r.float(what)
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{x, y}, nil
}

func (r *tokenReader) color(what string) (Color, error) {
	var ch [3]float64
	for i := range ch {
		v, err := r.float(what)
		if err != nil {
			return Color{}, err
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: 1}, nil
}

func (r *tokenReader) attributes() (Attributes, error) {
	var a Attributes
	var err error
	if a.Border, err = r.color("border color"); err != nil {
		return a, err
	}
	if a.Fill, err = r.color("fill color"); err != nil {
		return a, err
	}
	if a.Thickness, err = r.float("thickness"); err != nil {
		return a, err
	}
	filled, err := r.int("filled flag")
	if err != nil {
		return a, err
	}
	switch filled {
	case 0:
	case 1:
		a.Filled = true
	default:
		return a, fmt.Errorf("%w: filled flag must be 0 or 1, got %d", ErrMalformedSnapshot, filled)
	}
	return a, nil
}

func (r *tokenReader) shape() (Shape, error) {
	tag, err := r.next("type tag")
	if err != nil {
		return nil, err
	}

	switch tag {
	case "SEG", "RECT":
		a, err := r.vec("corner")
		if err != nil {
			return nil, err
		}
		b, err := r.vec("corner")
		if err != nil {
			return nil, err
		}
		attr, err := r.attributes()
		if err != nil {
			return nil, err
		}
		if tag == "SEG" {
			return NewSegment(attr, a, b), nil
		}
		return NewRectangle(attr, a, b), nil

	case "CIRC":
		c, err := r.vec("center")
		if err != nil {
			return nil, err
		}
		radius, err := r.float("radius")
		if err != nil {
			return nil, err
		}
		attr, err := r.attributes()
		if err != nil {
			return nil, err
		}
		return &Circle{Attr: attr, Center: c, Radius: radius}, nil

	case "POLY":
		m, err := r.int("vertex count")
		if err != nil {
			return nil, err
		}
		if m < 0 {
			return nil, fmt.Errorf("%w: negative vertex count %d", ErrMalformedSnapshot, m)
		}
		pts := make([]Vec2, 0, min(m, r.remaining()/2))
		for j := 0; j < m; j++ {
			p, err := r.vec("vertex")
			if err != nil {
				return nil, err
			}
			pts = append(pts, p)
		}
		attr, err := r.attributes()
		if err != nil {
			return nil, err
		}
		return &Polygon{Attr: attr, Points: pts}, nil
	}

	return nil, fmt.Errorf("%w: unknown type tag %q", ErrMalformedSnapshot, tag)
}
