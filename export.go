package pictor

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// PNGSurface is an offline Surface backed by a gg raster context. It is
// used to export the scene as an image without a window.
type PNGSurface struct {
	dc       *gg.Context
	font     *truetype.Font
	faces    map[float64]font.Face
	textures map[string]image.Image
}

// NewPNGSurface creates a width x height surface cleared to background.
func NewPNGSurface(width, height int, background Color) (*PNGSurface, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	dc := gg.NewContext(width, height)
	dc.SetColor(background.RGBA())
	dc.Clear()
	return &PNGSurface{
		dc:       dc,
		font:     ttf,
		faces:    make(map[float64]font.Face),
		textures: make(map[string]image.Image),
	}, nil
}

// Image returns the rendered image.
func (p *PNGSurface) Image() image.Image {
	return p.dc.Image()
}

// SavePNG writes the rendered image to path.
func (p *PNGSurface) SavePNG(path string) error {
	return p.dc.SavePNG(path)
}

func strokeWidth(t float64) float64 {
	if t <= 0 {
		return 1
	}
	return t
}

func (p *PNGSurface) DrawLine(a, b Vec2, c Color, thickness float64) {
	p.dc.SetColor(c.RGBA())
	p.dc.SetLineWidth(strokeWidth(thickness))
	p.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	p.dc.Stroke()
}

func (p *PNGSurface) DrawRect(pos, size Vec2, c Color, filled bool, thickness float64) {
	p.dc.SetColor(c.RGBA())
	p.dc.DrawRectangle(pos.X, pos.Y, size.X, size.Y)
	if filled {
		p.dc.Fill()
		return
	}
	p.dc.SetLineWidth(strokeWidth(thickness))
	p.dc.Stroke()
}

func (p *PNGSurface) DrawCircle(center Vec2, radius float64, c Color, filled bool, thickness float64) {
	p.dc.SetColor(c.RGBA())
	p.dc.DrawCircle(center.X, center.Y, radius)
	if filled {
		p.dc.Fill()
		return
	}
	p.dc.SetLineWidth(strokeWidth(thickness))
	p.dc.Stroke()
}

// DrawTexturedRect draws the image at texture scaled into the rectangle.
// Missing textures render as a gray placeholder.
func (p *PNGSurface) DrawTexturedRect(texture string, pos, size Vec2) {
	img, ok := p.textures[texture]
	if !ok {
		loaded, err := gg.LoadImage(texture)
		if err == nil {
			img = loaded
		}
		p.textures[texture] = img
	}
	if img == nil {
		p.DrawRect(pos, size, ColorGray, true, 0)
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	p.dc.Push()
	p.dc.Translate(pos.X, pos.Y)
	p.dc.Scale(size.X/float64(b.Dx()), size.Y/float64(b.Dy()))
	p.dc.DrawImage(img, 0, 0)
	p.dc.Pop()
}

// DrawText draws s with its top-left corner at pos.
func (p *PNGSurface) DrawText(pos Vec2, s string, size float64, c Color) {
	face, ok := p.faces[size]
	if !ok {
		face = truetype.NewFace(p.font, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		p.faces[size] = face
	}
	p.dc.SetFontFace(face)
	p.dc.SetColor(c.RGBA())
	p.dc.DrawString(s, pos.X, pos.Y+size)
}

// exportPath builds <dir>/<stamp>_<label>.png.
func exportPath(dir, label string, now time.Time) string {
	stamp := now.Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
}

// writeScenePNG renders the scene alone on black and writes it to path.
func writeScenePNG(sc *Scene, width, height int, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	surface, err := NewPNGSurface(width, height, ColorBlack)
	if err != nil {
		return err
	}
	sc.Draw(surface)
	if err := surface.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
