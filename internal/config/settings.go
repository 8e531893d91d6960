package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/NopAngel/fancy-tree/internal/logging"
)

// viewerLogFile receives logs while the interactive viewer owns the terminal
// and no log_file is configured.
const viewerLogFile = "fancytree.log"

// Settings are read from settings.toml before any script runs.
type Settings struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	LogFile   string `toml:"log_file"`
}

func DefaultSettings() Settings {
	return Settings{LogLevel: "warn", LogFormat: "console"}
}

// LoadSettings reads settings.toml from dir. A missing file yields the
// defaults. On a decode error the defaults are returned with the error.
func LoadSettings(dir string) (Settings, error) {
	s := DefaultSettings()
	if dir == "" {
		return s, nil
	}
	p := filepath.Join(dir, SettingsFile)
	if _, err := toml.DecodeFile(p, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("parse %s: %w", p, err)
	}
	return s, nil
}

// Logging returns the logger configuration. While the viewer runs, logs go to
// a file so they do not corrupt the screen.
func (s Settings) Logging(interactive bool, dir string) logging.Config {
	cfg := logging.Config{Level: s.LogLevel, Format: s.LogFormat, OutputPath: s.LogFile}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "stderr"
		if interactive {
			base := dir
			if fi, err := os.Stat(dir); dir == "" || err != nil || !fi.IsDir() {
				base = os.TempDir()
			}
			cfg.OutputPath = filepath.Join(base, viewerLogFile)
		}
	}
	return cfg
}
