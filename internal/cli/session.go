package cli

import (
	"fmt"
	"io"

	"github.com/NopAngel/fancy-tree/internal/color"
	"github.com/NopAngel/fancy-tree/internal/config"
	"github.com/NopAngel/fancy-tree/internal/logging"
	"github.com/NopAngel/fancy-tree/internal/script"
	"github.com/NopAngel/fancy-tree/internal/tree"
)

// session renders the tree for one set of flags. Every write starts a fresh
// scripting session, so configuration edits apply on the next write.
type session struct {
	flags     *flags
	configDir string
}

func (s *session) write(w io.Writer, capability *bool) (tree.Stats, error) {
	state, err := script.NewBuilder().
		WithExtension(script.ScopeExtension(s.flags.root)).
		Build()
	if err != nil {
		return tree.Stats{}, err
	}
	defer state.Close()

	cfg, err := config.Load(state, s.configDir)
	if err != nil {
		return tree.Stats{}, err
	}

	choice, level, charset, err := s.resolve(cfg.Main)
	if err != nil {
		return tree.Stats{}, err
	}
	logging.Debug("rendering tree",
		logging.Path(s.flags.root),
		logging.String("color", choice.String()),
		logging.Int("level", level),
	)

	b := tree.NewBuilder(s.flags.root, choice).
		MaxLevel(level).
		Charset(charset).
		Config(cfg.Main).
		Icons(cfg.Icons).
		Colors(cfg.Colors).
		Strict(s.flags.strict)
	if capability != nil {
		b.Capability(*capability)
	}
	return b.Build().Write(w)
}

// resolve merges the main configuration module with the flags. Flags win.
func (s *session) resolve(main *config.Main) (color.Choice, int, tree.Charset, error) {
	f := s.flags

	choice := color.ChoiceAuto
	if main.Color != nil {
		choice = *main.Color
	}
	if f.set["color"] {
		choice = f.color
	}

	level := main.Level
	if f.set["level"] {
		level = f.level
	}

	name := main.Charset
	if f.set["charset"] {
		name = f.charset
	}
	charset, err := tree.CharsetByName(name)
	if err != nil {
		return choice, level, charset, fmt.Errorf("%s: %w", config.MainFile, err)
	}
	return choice, level, charset, nil
}
