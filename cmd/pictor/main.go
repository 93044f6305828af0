// Command pictor opens the vector drawing editor in a window.
//
// Settings come from PICTOR_* environment variables (see pictor.Config).
// PICTOR_SCRIPT names a JSON script to play back on startup.
package main

import (
	"log/slog"
	"os"

	"github.com/phanxgames/pictor"
	"github.com/phanxgames/pictor/ebitenview"
)

func main() {
	cfg, err := pictor.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ed := pictor.NewEditor(cfg)
	ed.SetLogger(logger)

	if err := ed.Load(); err != nil {
		slog.Info("no saved scene", "path", cfg.SavePath, "reason", err)
		if cfg.Demo {
			ed.SeedDemo()
		}
	} else {
		// Start with an empty history.
		ed.History().Clear()
	}

	run := ebitenview.RunConfig{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		ShowFPS: cfg.ShowFPS,
		Logger:  logger,
	}
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			slog.Error("read script", "path", cfg.Script, "error", err)
			os.Exit(1)
		}
		runner, err := pictor.LoadTestScript(data)
		if err != nil {
			slog.Error("load script", "path", cfg.Script, "error", err)
			os.Exit(1)
		}
		run.Runner = runner
		run.Queue = &pictor.EventQueue{}
	}

	if err := ebitenview.Run(ed, run); err != nil {
		slog.Error("run", "error", err)
		os.Exit(1)
	}
}
