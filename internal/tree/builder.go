package tree

import (
	"github.com/NopAngel/fancy-tree/internal/color"
	"github.com/NopAngel/fancy-tree/internal/config"
)

// Builder configures a Tree.
type Builder struct {
	root       string
	choice     color.Choice
	maxLevel   int
	charset    *Charset
	main       *config.Main
	icons      *config.Icons
	colors     *config.Colors
	capability *bool
	strict     bool
}

// NewBuilder starts a tree rooted at root, painted according to choice.
func NewBuilder(root string, choice color.Choice) *Builder {
	return &Builder{root: root, choice: choice}
}

// MaxLevel limits how deep the tree descends. Zero means no limit.
func (b *Builder) MaxLevel(level int) *Builder {
	b.maxLevel = level
	return b
}

// Charset sets the branch characters. The default is Standard.
func (b *Builder) Charset(cs Charset) *Builder {
	b.charset = &cs
	return b
}

// Config sets the main configuration, whose skip function filters entries.
func (b *Builder) Config(m *config.Main) *Builder {
	b.main = m
	return b
}

// Icons sets the icon configuration.
func (b *Builder) Icons(icons *config.Icons) *Builder {
	b.icons = icons
	return b
}

// Colors sets the color configuration.
func (b *Builder) Colors(colors *config.Colors) *Builder {
	b.colors = colors
	return b
}

// Capability overrides the color probe of the destination writer.
func (b *Builder) Capability(supportsColor bool) *Builder {
	b.capability = &supportsColor
	return b
}

// Strict makes per-entry configuration errors abort the write instead of
// falling back to the defaults.
func (b *Builder) Strict(strict bool) *Builder {
	b.strict = strict
	return b
}

// Build creates the Tree.
func (b *Builder) Build() *Tree {
	cs := Standard
	if b.charset != nil {
		cs = *b.charset
	}
	return &Tree{
		root:       b.root,
		choice:     b.choice,
		maxLevel:   b.maxLevel,
		charset:    cs,
		main:       b.main,
		icons:      b.icons,
		colors:     b.colors,
		capability: b.capability,
		strict:     b.strict,
	}
}
