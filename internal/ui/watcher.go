package ui

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/NopAngel/fancy-tree/internal/logging"
)

// ConfigChangedMsg signals that a config file has changed
type ConfigChangedMsg struct {
	Path string
}

// WatchConfigCmd returns a command that waits for the next change to a .lua
// or .toml file directly inside configDir. It returns nil when the directory
// cannot be watched.
func WatchConfigCmd(configDir string) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logging.Warn("failed to create file watcher", logging.Err(err))
			return nil
		}
		if err := watcher.Add(configDir); err != nil {
			logging.Debug("not watching config directory", logging.Path(configDir), logging.Err(err))
			watcher.Close()
			return nil
		}
		logging.Debug("watching for config changes", logging.Path(configDir))
		return waitForChange(watcher, configDir)
	}
}

// waitForChange blocks until a relevant event arrives and closes watcher.
func waitForChange(watcher *fsnotify.Watcher, configDir string) tea.Msg {
	defer watcher.Close()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isConfigChange(event, configDir) {
				continue
			}
			logging.Info("detected config change", logging.Path(event.Name))
			return ConfigChangedMsg{Path: event.Name}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("file watcher error", logging.Err(err))
		}
	}
}

func isConfigChange(event fsnotify.Event, configDir string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	// Must be in the root config dir (not subdirs)
	if filepath.Clean(filepath.Dir(event.Name)) != filepath.Clean(configDir) {
		return false
	}
	name := filepath.Base(event.Name)
	return strings.HasSuffix(name, ".lua") || strings.HasSuffix(name, ".toml")
}
