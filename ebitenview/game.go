// Package ebitenview hosts a pictor.Editor in an Ebitengine window: it
// polls mouse and keyboard state into pictor events, plays back scripted
// input, and renders the editor through an ImageSurface.
package ebitenview

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pictor"
)

// RunConfig holds window and playback settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	// Runner, when set, plays a script through Queue. Real input is ignored
	// while injected events are pending.
	Runner *pictor.TestRunner
	Queue  *pictor.EventQueue
	Logger *slog.Logger
}

// Game implements ebiten.Game around an editor.
type Game struct {
	ed      *pictor.Editor
	cfg     RunConfig
	surface *ImageSurface
	input   inputPoller
	events  []pictor.Event
	fps     *fpsWidget
}

// NewGame wires ed to a window-backed surface.
func NewGame(ed *pictor.Editor, cfg RunConfig) (*Game, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Queue == nil {
		cfg.Queue = &pictor.EventQueue{}
	}
	surface, err := NewImageSurface(cfg.Logger)
	if err != nil {
		return nil, err
	}
	g := &Game{ed: ed, cfg: cfg, surface: surface}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	return g, nil
}

// Update steps the script, feeds this frame's input to the editor and
// advances animations.
func (g *Game) Update() error {
	if g.cfg.Runner != nil {
		g.cfg.Runner.Step(g.ed, g.cfg.Queue)
	}

	if ev, ok := g.cfg.Queue.Next(); ok {
		g.ed.ProcessEvent(ev)
	} else {
		g.events = g.input.poll(g.events[:0])
		for _, ev := range g.events {
			g.ed.ProcessEvent(ev)
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.ed.Tick(float32(dt))
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

// Draw clears to black and renders the editor.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.surface.SetTarget(screen)
	g.ed.Draw(g.surface)

	if g.fps != nil {
		g.fps.draw(screen, 4, float64(g.cfg.Height-36))
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and blocks until it is closed.
func Run(ed *pictor.Editor, cfg RunConfig) error {
	g, err := NewGame(ed, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenview: %w", err)
	}
	return nil
}
