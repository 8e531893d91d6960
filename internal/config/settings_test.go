package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty means no file
		want    Settings
		wantErr bool
	}{
		{"missing file", "", DefaultSettings(), false},
		{"partial", `log_level = "debug"`, Settings{LogLevel: "debug", LogFormat: "console"}, false},
		{"full", "log_level = \"error\"\nlog_format = \"json\"\nlog_file = \"/tmp/ft.log\"\n",
			Settings{LogLevel: "error", LogFormat: "json", LogFile: "/tmp/ft.log"}, false},
		{"broken", `log_level = `, DefaultSettings(), true},
		{"wrong type", `log_level = 3`, DefaultSettings(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != "" {
				writeFile(t, dir, SettingsFile, tt.content)
			}
			got, err := LoadSettings(dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadSettings error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LoadSettings = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadSettings_DefaultFileMatchesDefaults(t *testing.T) {
	dir := t.TempDir()
	src, err := DefaultModule(SettingsFile)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, SettingsFile, src)
	got, err := LoadSettings(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != DefaultSettings() {
		t.Errorf("embedded settings.toml = %+v, want %+v", got, DefaultSettings())
	}
}

func TestSettingsLogging(t *testing.T) {
	dir := t.TempDir()
	s := DefaultSettings()

	if got := s.Logging(false, dir).OutputPath; got != "stderr" {
		t.Errorf("non-interactive output = %q, want stderr", got)
	}
	if got := s.Logging(true, dir).OutputPath; got != filepath.Join(dir, viewerLogFile) {
		t.Errorf("interactive output = %q", got)
	}
	if got := s.Logging(true, filepath.Join(dir, "missing")).OutputPath; got != filepath.Join(os.TempDir(), viewerLogFile) {
		t.Errorf("interactive output without config dir = %q", got)
	}

	s.LogFile = "/var/log/fancytree.log"
	cfg := s.Logging(true, dir)
	if cfg.OutputPath != s.LogFile || cfg.Level != "warn" || cfg.Format != "console" {
		t.Errorf("Logging = %+v", cfg)
	}
}

func TestBootstrap(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fancytree")

	written, err := Bootstrap(dir)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if len(written) != 4 {
		t.Errorf("Bootstrap wrote %v, want 4 files", written)
	}
	for _, name := range []string{MainFile, IconsFile, ColorsFile, SettingsFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	// Loading the bootstrapped directory behaves like the defaults.
	if _, err := Load(newState(t), dir); err != nil {
		t.Errorf("Load after Bootstrap: %v", err)
	}
}

func TestBootstrap_KeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	const custom = `return { level = 1 }`
	writeFile(t, dir, MainFile, custom)

	written, err := Bootstrap(dir)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	for _, p := range written {
		if filepath.Base(p) == MainFile {
			t.Errorf("Bootstrap overwrote %s", p)
		}
	}
	b, err := os.ReadFile(filepath.Join(dir, MainFile))
	if err != nil || string(b) != custom {
		t.Errorf("config.lua = %q, %v", b, err)
	}

	again, err := Bootstrap(dir)
	if err != nil || len(again) != 0 {
		t.Errorf("second Bootstrap wrote %v, %v", again, err)
	}
}
