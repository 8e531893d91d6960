package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/NopAngel/fancy-tree/internal/config"
)

// project creates:
//
//	.hidden
//	README.md
//	src/main.go
func project(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{".hidden", "README.md", "src/main.go"} {
		if err := os.WriteFile(filepath.Join(root, filepath.FromSlash(f)), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, Options{Stdout: &stdout, Stderr: &stderr})
	return code, stdout.String(), stderr.String()
}

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRun_DefaultConfig(t *testing.T) {
	root := project(t)
	cfg := t.TempDir()

	code, out, errOut := run(t, "-color", "off", "-config-dir", cfg, root)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, errOut)
	}
	for _, want := range []string{root, "├── ", "src", "main.go", "README.md"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if runtime.GOOS != "windows" {
		if strings.Contains(out, ".hidden") {
			t.Errorf("hidden file shown by default:\n%s", out)
		}
		if !strings.HasSuffix(out, "\n1 directory, 2 files\n") {
			t.Errorf("missing summary:\n%s", out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("-color off output has escapes:\n%q", out)
	}
}

func TestRun_FlagsOverrideMainModule(t *testing.T) {
	root := project(t)
	cfg := t.TempDir()
	writeConfig(t, cfg, config.MainFile, `return { level = 1, charset = "ascii", color = "on" }`)

	code, out, errOut := run(t, "-config-dir", cfg, root)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, errOut)
	}
	if strings.Contains(out, "main.go") || !strings.Contains(out, "|-- ") || !strings.Contains(out, "\x1b[") {
		t.Errorf("main module options not applied:\n%q", out)
	}

	code, out, errOut = run(t, "-config-dir", cfg, "-level", "0", "-charset", "standard", "-color", "off", root)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "main.go") || !strings.Contains(out, "├── ") || strings.Contains(out, "\x1b[") {
		t.Errorf("flags did not override main module:\n%q", out)
	}
}

func TestRun_ConfigDirFromEnv(t *testing.T) {
	root := project(t)
	cfg := t.TempDir()
	writeConfig(t, cfg, config.IconsFile, `return function(path)
		if path == fancytree.root then return "R" end
		return "-"
	end`)
	t.Setenv(config.DirEnv, cfg)

	code, out, errOut := run(t, "-color", "off", root)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, errOut)
	}
	if !strings.HasPrefix(out, "R  "+root+"\n") {
		t.Errorf("root line = %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "├── -  README.md") {
		t.Errorf("icons.lua from env dir not used:\n%s", out)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad color", []string{"-color", "always"}, "invalid color choice"},
		{"two paths", []string{"a", "b"}, "at most one path"},
		{"negative level", []string{"-level", "-1"}, "must not be negative"},
		{"bad charset", []string{"-charset", "fancy"}, "unknown charset"},
		{"bad log level", []string{"-log-level", "loud"}, "unknown log level"},
		{"unknown flag", []string{"-nope"}, "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, tt.args...)
			if code != 2 {
				t.Errorf("exit %d, want 2", code)
			}
			if !strings.Contains(errOut, tt.want) || !strings.Contains(errOut, "Usage:") {
				t.Errorf("stderr missing %q or help:\n%s", tt.want, errOut)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, out, _ := run(t, "-h")
	if code != 0 || !strings.Contains(out, "Usage:") {
		t.Errorf("-h: exit %d, stdout:\n%s", code, out)
	}
}

func TestRun_ConfigErrors(t *testing.T) {
	root := project(t)

	t.Run("broken module", func(t *testing.T) {
		cfg := t.TempDir()
		writeConfig(t, cfg, config.IconsFile, `return function(`)
		code, _, errOut := run(t, "-color", "off", "-config-dir", cfg, root)
		if code != 1 || !strings.Contains(errOut, filepath.Join(cfg, config.IconsFile)) {
			t.Errorf("exit %d, stderr:\n%s", code, errOut)
		}
	})

	t.Run("bad charset in main module", func(t *testing.T) {
		cfg := t.TempDir()
		writeConfig(t, cfg, config.MainFile, `return { charset = "fancy" }`)
		code, _, errOut := run(t, "-color", "off", "-config-dir", cfg, root)
		if code != 1 || !strings.Contains(errOut, "unknown charset") {
			t.Errorf("exit %d, stderr:\n%s", code, errOut)
		}
	})

	t.Run("entry error", func(t *testing.T) {
		cfg := t.TempDir()
		writeConfig(t, cfg, config.ColorsFile, `return { icons = function(path)
			if fancytree.path.glob_matches("*.md", path) then error("no markdown") end
		end }`)

		code, out, errOut := run(t, "-color", "off", "-config-dir", cfg, root)
		if code != 0 || !strings.Contains(out, "README.md") {
			t.Errorf("non-strict: exit %d, stdout:\n%s\nstderr:\n%s", code, out, errOut)
		}

		code, _, errOut = run(t, "-color", "off", "-strict", "-config-dir", cfg, root)
		if code != 1 || !strings.Contains(errOut, "README.md") || !strings.Contains(errOut, "no markdown") {
			t.Errorf("strict: exit %d, stderr:\n%s", code, errOut)
		}
	})

	t.Run("missing root", func(t *testing.T) {
		code, _, _ := run(t, "-config-dir", t.TempDir(), filepath.Join(root, "nope"))
		if code != 1 {
			t.Errorf("exit %d, want 1", code)
		}
	})
}

func TestRun_InitConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "fancytree")

	code, out, errOut := run(t, "-color", "off", "-init-config", "-config-dir", cfg)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, errOut)
	}
	for _, name := range []string{config.MainFile, config.IconsFile, config.ColorsFile, config.SettingsFile} {
		if !strings.Contains(out, name) {
			t.Errorf("output does not list %s:\n%s", name, out)
		}
		if _, err := os.Stat(filepath.Join(cfg, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	code, out, _ = run(t, "-color", "off", "-init-config", "-config-dir", cfg)
	if code != 0 || !strings.Contains(out, "already present") {
		t.Errorf("second run: exit %d, stdout:\n%s", code, out)
	}
}

func TestRun_BrokenSettingsStillRenders(t *testing.T) {
	root := project(t)
	cfg := t.TempDir()
	writeConfig(t, cfg, config.SettingsFile, `log_level = `)

	code, out, errOut := run(t, "-color", "off", "-config-dir", cfg, root)
	if code != 0 || !strings.Contains(out, "main.go") {
		t.Errorf("exit %d, stdout:\n%s", code, out)
	}
	if !strings.Contains(errOut, config.SettingsFile) {
		t.Errorf("settings error not reported:\n%s", errOut)
	}
}
