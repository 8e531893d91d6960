package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/NopAngel/fancy-tree/internal/color"
	"github.com/NopAngel/fancy-tree/internal/config"
	"github.com/NopAngel/fancy-tree/internal/logging"
	"github.com/NopAngel/fancy-tree/internal/tree"
	"github.com/NopAngel/fancy-tree/internal/ui"
)

// Options carry the process streams.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
}

// flags are the parsed command line. The set map records which flags were
// given explicitly, so that they override the main configuration module.
type flags struct {
	color       color.Choice
	level       int
	charset     string
	configDir   string
	interactive bool
	strict      bool
	logLevel    string
	initConfig  bool
	root        string
	set         map[string]bool
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{root: ".", set: map[string]bool{}}
	fs := flag.NewFlagSet("fancytree", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&f.color, "color", "when to use color: "+strings.Join(color.ValidChoices, ", "))
	fs.IntVar(&f.level, "level", 0, "maximum depth to descend (0 means no limit)")
	fs.StringVar(&f.charset, "charset", "", "branch characters: "+strings.Join(tree.CharsetNames, ", "))
	fs.StringVar(&f.configDir, "config-dir", "", "configuration directory (default $"+config.DirEnv+" or the user config dir)")
	fs.BoolVar(&f.interactive, "interactive", false, "browse the tree in a full-screen viewer")
	fs.BoolVar(&f.strict, "strict", false, "fail on the first configuration error instead of using defaults")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: "+strings.Join(logging.Levels, ", "))
	fs.BoolVar(&f.initConfig, "init-config", false, "write the default configuration files and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		f.root = rest[0]
	default:
		return nil, fmt.Errorf("expected at most one path, got %d", len(rest))
	}
	if f.level < 0 {
		return nil, fmt.Errorf("-level must not be negative, got %d", f.level)
	}
	if f.set["charset"] {
		if _, err := tree.CharsetByName(f.charset); err != nil {
			return nil, err
		}
	}
	if f.set["log-level"] {
		if _, err := logging.ParseLevel(f.logLevel); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Run parses args and renders the tree. It returns an exit code (0 ok, 1
// error, 2 usage).
func Run(args []string, opt Options) int {
	f, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		PrintHelp(opt.Stdout)
		return 0
	}
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		fmt.Fprintln(opt.Stderr)
		PrintHelp(opt.Stderr)
		return 2
	}
	if f.set["color"] {
		ui.SetColor(f.color)
	}

	dir := f.configDir
	if dir == "" {
		if dir, err = config.Dir(); err != nil {
			ui.Fail(opt.Stderr, "config dir: "+err.Error())
			return 1
		}
	}

	if f.initConfig {
		return doInitConfig(dir, opt)
	}

	settings, err := config.LoadSettings(dir)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
	}
	logCfg := settings.Logging(f.interactive, dir)
	if f.set["log-level"] {
		logCfg.Level = f.logLevel
	}
	if err := logging.Init(logCfg); err != nil {
		ui.Fail(opt.Stderr, "logging: "+err.Error())
		return 1
	}
	defer func() { _ = logging.Sync() }()

	s := &session{flags: f, configDir: dir}
	if f.interactive {
		return doView(s, opt)
	}
	return doPrint(s, opt)
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `fancytree - a tree with icons and colors, themed in Lua

Usage:
  fancytree [flags] [path]

Flags:
  -color WHEN       %s (default auto)
  -level N          maximum depth to descend
  -charset NAME     %s
  -config-dir DIR   configuration directory
  -interactive      browse the tree in a full-screen viewer
  -strict           fail on the first configuration error
  -log-level LEVEL  debug, info, warn or error
  -init-config      write the default configuration files and exit

Configuration:
  config.lua, icons.lua and colors.lua in the configuration directory
  (default $%s, else the user config dir). Missing files use the
  built-in defaults; run with -init-config to get editable copies.

Examples:
  fancytree
  fancytree -level 2 src
  fancytree -color ansi -charset ascii
  fancytree -interactive
`, strings.Join(color.ValidChoices, ", "), strings.Join(tree.CharsetNames, ", "), config.DirEnv)
}

// -------------- command impls ----------------

func doInitConfig(dir string, opt Options) int {
	written, err := config.Bootstrap(dir)
	if err != nil {
		ui.Fail(opt.Stderr, "init-config: "+err.Error())
		return 1
	}
	if len(written) == 0 {
		ui.OK(opt.Stdout, "configuration already present in "+dir)
		return 0
	}
	lines := []string{ui.Title("Configuration written to " + dir), ""}
	for _, p := range written {
		lines = append(lines, ui.Accent("•")+" "+p)
	}
	fmt.Fprintln(opt.Stdout, ui.Panel(lines))
	return 0
}

func doPrint(s *session, opt Options) int {
	stats, err := s.write(opt.Stdout, nil)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	fmt.Fprintln(opt.Stdout)
	fmt.Fprintln(opt.Stdout, ui.Muted(stats.String()))
	return 0
}

func doView(s *session, opt Options) int {
	render := func() (string, error) {
		var b strings.Builder
		capable := true
		stats, err := s.write(&b, &capable)
		if err != nil {
			return "", err
		}
		b.WriteString("\n" + stats.String())
		return b.String(), nil
	}
	if err := ui.View(render, s.configDir); err != nil {
		ui.Fail(opt.Stderr, "viewer: "+err.Error())
		return 1
	}
	return 0
}
