package ebitenview

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/phanxgames/pictor"
)

// ImageSurface implements pictor.Surface on top of an *ebiten.Image using
// the vector and text/v2 packages. Textures and font faces are cached
// across frames; call SetTarget with the frame's screen before drawing.
type ImageSurface struct {
	dst      *ebiten.Image
	source   *text.GoTextFaceSource
	faces    map[float64]*text.GoTextFace
	textures map[string]*ebiten.Image
	logger   *slog.Logger
}

// NewImageSurface creates a surface with the Go Mono font loaded.
func NewImageSurface(logger *slog.Logger) (*ImageSurface, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenview: failed to parse font: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageSurface{
		source:   source,
		faces:    make(map[float64]*text.GoTextFace),
		textures: make(map[string]*ebiten.Image),
		logger:   logger,
	}, nil
}

// SetTarget sets the image subsequent draw calls render into.
func (s *ImageSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func width(t float64) float32 {
	if t <= 0 {
		return 1
	}
	return float32(t)
}

func (s *ImageSurface) DrawLine(a, b pictor.Vec2, c pictor.Color, thickness float64) {
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		width(thickness), c.RGBA(), true)
}

func (s *ImageSurface) DrawRect(pos, size pictor.Vec2, c pictor.Color, filled bool, thickness float64) {
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(size.X), float32(size.Y)
	if filled {
		vector.DrawFilledRect(s.dst, x, y, w, h, c.RGBA(), false)
		return
	}
	vector.StrokeRect(s.dst, x, y, w, h, width(thickness), c.RGBA(), false)
}

func (s *ImageSurface) DrawCircle(center pictor.Vec2, radius float64, c pictor.Color, filled bool, thickness float64) {
	cx, cy, r := float32(center.X), float32(center.Y), float32(radius)
	if filled {
		vector.DrawFilledCircle(s.dst, cx, cy, r, c.RGBA(), true)
		return
	}
	vector.StrokeCircle(s.dst, cx, cy, r, width(thickness), c.RGBA(), true)
}

// DrawTexturedRect draws the image file at texture stretched over the
// rectangle. A texture that fails to load is logged once and drawn as a
// gray box from then on.
func (s *ImageSurface) DrawTexturedRect(texture string, pos, size pictor.Vec2) {
	img, ok := s.textures[texture]
	if !ok {
		loaded, _, err := ebitenutil.NewImageFromFile(texture)
		if err != nil {
			s.logger.Warn("texture unavailable", "path", texture, "error", err)
		}
		img = loaded
		s.textures[texture] = img
	}
	if img == nil {
		s.DrawRect(pos, size, pictor.ColorGray, true, 0)
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.X/float64(b.Dx()), size.Y/float64(b.Dy()))
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

// DrawText draws str with its top-left corner at pos.
func (s *ImageSurface) DrawText(pos pictor.Vec2, str string, size float64, c pictor.Color) {
	face, ok := s.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: s.source, Size: size}
		s.faces[size] = face
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	text.Draw(s.dst, str, face, op)
}
