package pictor

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds editor and window settings. LoadConfig fills it from
// PICTOR_* environment variables.
type Config struct {
	Title            string  `envconfig:"TITLE" default:"Pictor"`
	Width            int     `envconfig:"WIDTH" default:"1200"`
	Height           int     `envconfig:"HEIGHT" default:"800"`
	SavePath         string  `envconfig:"SAVE_PATH" default:"pictor_save.txt"`
	ExportDir        string  `envconfig:"EXPORT_DIR" default:"exports"`
	IconDir          string  `envconfig:"ICON_DIR" default:"assets"`
	ButtonSize       float64 `envconfig:"BUTTON_SIZE" default:"64"`
	UndoLimit        int     `envconfig:"UNDO_LIMIT" default:"20"`
	SnapshotOnDelete bool    `envconfig:"SNAPSHOT_ON_DELETE" default:"true"`
	Debug            bool    `envconfig:"DEBUG" default:"false"`
	ShowFPS          bool    `envconfig:"SHOW_FPS" default:"false"`
	Script           string  `envconfig:"SCRIPT" default:""`
	Demo             bool    `envconfig:"DEMO" default:"true"`
}

// DefaultConfig returns the settings used when no environment overrides
// are present.
func DefaultConfig() Config {
	return Config{
		Title:            "Pictor",
		Width:            1200,
		Height:           800,
		SavePath:         "pictor_save.txt",
		ExportDir:        "exports",
		IconDir:          "assets",
		ButtonSize:       64,
		UndoLimit:        DefaultUndoLimit,
		SnapshotOnDelete: true,
		Demo:             true,
	}
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("pictor", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("load config: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	return cfg, nil
}
