package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplace_RoutesHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))
	defer restore()

	Debug("d")
	Info("i", String("k", "v"))
	Warn("w", Path("src/main.go"), Int("n", 3))
	Error("e", Bool("strict", true))

	if logs.Len() != 4 {
		t.Fatalf("got %d entries, want 4", logs.Len())
	}
	warn := logs.FilterMessage("w").All()
	if len(warn) != 1 || warn[0].ContextMap()["path"] != "src/main.go" {
		t.Errorf("warn entry = %+v", warn)
	}
}

func TestInit_LevelAndFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fancytree.log")
	if err := Init(Config{Level: "info", Format: "json", OutputPath: out}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { Replace(nil) })

	Debug("hidden")
	Info("shown")
	SetLevel("error")
	Warn("suppressed")
	SetLevel("bogus")
	Error("kept")
	_ = Sync()

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)
	for _, want := range []string{"shown", "kept"} {
		if !strings.Contains(got, want) {
			t.Errorf("log file missing %q:\n%s", want, got)
		}
	}
	for _, unwanted := range []string{"hidden", "suppressed"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("log file contains %q:\n%s", unwanted, got)
		}
	}
}

func TestInit_UnknownLevelFallsBackToWarn(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fancytree.log")
	if err := Init(Config{Level: "loud", Format: "console", OutputPath: out}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { Replace(nil) })

	if L().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info enabled after unknown level")
	}
	if !L().Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn disabled after unknown level")
	}
	_ = Sync()
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `unknown log level \"loud\"`) {
		t.Errorf("fallback not reported:\n%s", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.WarnLevel, true},
		{"fatal", zapcore.WarnLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, error %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestL_LazyDefault(t *testing.T) {
	restore := Replace(nil)
	defer restore()
	if L() == nil {
		t.Fatal("L returned nil")
	}
}
