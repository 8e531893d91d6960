// Package config loads fancytree's Lua configuration modules and TOML
// settings.
//
// The configuration directory holds up to three Lua modules, each evaluated in
// the same scripting session: config.lua (main options), icons.lua and
// colors.lua. A module missing from the directory falls back to the copy
// embedded in the binary. A module that is present but broken is an error.
package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/NopAngel/fancy-tree/internal/logging"
	"github.com/NopAngel/fancy-tree/internal/script"
)

const (
	MainFile     = "config.lua"
	IconsFile    = "icons.lua"
	ColorsFile   = "colors.lua"
	SettingsFile = "settings.toml"

	// DirEnv overrides the configuration directory.
	DirEnv = "FANCYTREE_CONFIG_DIR"
)

const defaultsRoot = "defaults"

//go:embed defaults
var defaultsFS embed.FS

// Dir returns the configuration directory: $FANCYTREE_CONFIG_DIR, else
// fancytree under the user config dir, else ~/.fancytree.
func Dir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", errors.Join(err, herr)
		}
		return filepath.Join(home, ".fancytree"), nil
	}
	return filepath.Join(configDir, "fancytree"), nil
}

// Config is the set of modules loaded into one scripting session.
type Config struct {
	Main   *Main
	Icons  *Icons
	Colors *Colors
}

// Load evaluates the main, icons and colors modules from dir into s. An empty
// dir loads the embedded defaults only.
func Load(s *script.State, dir string) (*Config, error) {
	name, source, err := readModule(dir, MainFile)
	if err != nil {
		return nil, err
	}
	main, err := LoadMain(s, name, source)
	if err != nil {
		return nil, err
	}

	name, source, err = readModule(dir, IconsFile)
	if err != nil {
		return nil, err
	}
	icons, err := LoadIcons(s, name, source)
	if err != nil {
		return nil, err
	}

	name, source, err = readModule(dir, ColorsFile)
	if err != nil {
		return nil, err
	}
	colors, err := LoadColors(s, name, source)
	if err != nil {
		return nil, err
	}

	return &Config{Main: main, Icons: icons, Colors: colors}, nil
}

// readModule returns the chunk name and source of the module file. The chunk
// name is the on-disk path, or defaults/<file> for the embedded copy.
func readModule(dir, file string) (string, string, error) {
	if dir != "" {
		p := filepath.Join(dir, file)
		b, err := os.ReadFile(p)
		if err == nil {
			logging.Debug("loading config module", logging.Path(p))
			return p, string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", "", &script.LoadError{Module: p, Err: fmt.Errorf("read file: %w", err)}
		}
	}

	name := path.Join(defaultsRoot, file)
	b, err := defaultsFS.ReadFile(name)
	if err != nil {
		return "", "", &script.LoadError{Module: name, Err: err}
	}
	logging.Debug("loading default config module", logging.String("module", name))
	return name, string(b), nil
}

// DefaultModule returns the embedded source of the named module.
func DefaultModule(file string) (string, error) {
	b, err := defaultsFS.ReadFile(path.Join(defaultsRoot, file))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
