package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/NopAngel/fancy-tree/internal/logging"
)

// Bootstrap copies the embedded default modules and settings into dir. Files
// that already exist are left untouched. It returns the paths it wrote.
func Bootstrap(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	var written []string
	err := fs.WalkDir(defaultsFS, defaultsRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, defaultsRoot), "/")
		if rel == "" {
			return nil
		}

		target := filepath.Join(dir, filepath.FromSlash(rel))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		// Don't overwrite existing files
		if _, err := os.Lstat(target); err == nil {
			logging.Debug("bootstrap: keeping existing file", logging.Path(target))
			return nil
		}

		b, err := defaultsFS.ReadFile(p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, b, 0o644); err != nil {
			return fmt.Errorf("write file: %w", err)
		}
		logging.Info("bootstrap: wrote default", logging.Path(target))
		written = append(written, target)
		return nil
	})
	if err != nil {
		return written, err
	}
	return written, nil
}
