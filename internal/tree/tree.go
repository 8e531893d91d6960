// Package tree walks a directory and writes it as an annotated tree, asking
// the configuration for every entry's visibility, icon and color.
package tree

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/NopAngel/fancy-tree/internal/color"
	"github.com/NopAngel/fancy-tree/internal/config"
	"github.com/NopAngel/fancy-tree/internal/entry"
	"github.com/NopAngel/fancy-tree/internal/logging"
)

// iconWidth is the display width of the icon column.
const iconWidth = 2

// Default icons, used when no icon configuration is set or a script keeps the
// default.
const (
	DirectoryIcon = "\uf115"
	FileIcon      = "\uf15b"
	SymlinkIcon   = "\uf481"
)

// Tree is a configured directory tree. Build one with a Builder.
type Tree struct {
	root       string
	choice     color.Choice
	maxLevel   int
	charset    Charset
	main       *config.Main
	icons      *config.Icons
	colors     *config.Colors
	capability *bool
	strict     bool
}

// Stats counts the entries a write printed, the root excluded.
type Stats struct {
	Directories int
	Files       int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d %s, %d %s",
		s.Directories, plural(s.Directories, "directory", "directories"),
		s.Files, plural(s.Files, "file", "files"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

type writer struct {
	*Tree
	w             *bufio.Writer
	supportsColor bool
	stats         Stats
}

// Write renders the tree to w.
func (t *Tree) Write(w io.Writer) (Stats, error) {
	root, err := entry.New(t.root)
	if err != nil {
		return Stats{}, err
	}

	tw := &writer{Tree: t, w: bufio.NewWriter(w)}
	switch {
	case t.capability != nil:
		tw.supportsColor = *t.capability
	case t.choice == color.ChoiceAuto:
		tw.supportsColor = color.SupportsColor(w)
	}

	if err := tw.line("", root, t.root); err != nil {
		return tw.stats, err
	}
	if root.Kind() == entry.KindDirectory {
		if err := tw.walk(root.Path(), nil); err != nil {
			return tw.stats, err
		}
	}
	return tw.stats, tw.w.Flush()
}

// String renders the tree into a string.
func (t *Tree) String() (string, Stats, error) {
	var buf bytes.Buffer
	stats, err := t.Write(&buf)
	return buf.String(), stats, err
}

// walk writes the children of dir. ancestors records, for every level above,
// whether that ancestor has later siblings.
func (tw *writer) walk(dir string, ancestors []bool) error {
	if tw.maxLevel > 0 && len(ancestors) >= tw.maxLevel {
		return nil
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		logging.Warn("cannot read directory", logging.Path(dir), logging.Err(err))
		return nil
	}

	children := make([]*entry.Entry, 0, len(dirents))
	for _, de := range dirents {
		p := childPath(dir, de.Name())
		info, err := de.Info()
		if err != nil {
			logging.Warn("cannot stat entry", logging.Path(p), logging.Err(err))
			continue
		}
		e := entry.FromFileInfo(p, info)
		skip, err := tw.main.Skip(e)
		if err := tw.fallback(err); err != nil {
			return err
		}
		if skip {
			continue
		}
		children = append(children, e)
	}

	for i, e := range children {
		last := i == len(children)-1
		if err := tw.line(tw.branch(ancestors), e, e.Name()); err != nil {
			return err
		}
		if e.Kind() == entry.KindDirectory {
			tw.stats.Directories++
			if err := tw.walk(e.Path(), append(ancestors, !last)); err != nil {
				return err
			}
		} else {
			tw.stats.Files++
		}
	}
	return nil
}

// childPath appends name to dir without cleaning dir, so scripts see paths
// under the root as it was given, such as "./src/main.go" for ".".
func childPath(dir, name string) string {
	if dir == "" || os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// branch returns the prefix of an entry below the ancestors.
func (tw *writer) branch(ancestors []bool) string {
	var b strings.Builder
	for _, more := range ancestors {
		if more {
			b.WriteString(tw.charset.Breadth)
		} else {
			b.WriteString(tw.charset.Indent)
		}
	}
	b.WriteString(tw.charset.Depth)
	return b.String()
}

// line writes one entry after prefix.
func (tw *writer) line(prefix string, e *entry.Entry, name string) error {
	var b strings.Builder
	b.WriteString(prefix)

	icon, err := tw.icon(e)
	if err != nil {
		return err
	}
	fg, err := tw.color(e)
	if err != nil {
		return err
	}

	b.WriteString(tw.choice.Render(icon, fg, nil, tw.supportsColor))
	if pad := iconWidth - runewidth.StringWidth(icon); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteByte('\n')

	_, err = tw.w.WriteString(b.String())
	return err
}

func (tw *writer) icon(e *entry.Entry) (string, error) {
	def := defaultIcon(e)
	if tw.icons == nil {
		return def, nil
	}
	icon, err := tw.icons.GetIcon(e, def)
	if err := tw.fallback(err); err != nil {
		return "", err
	}
	return icon, nil
}

func (tw *writer) color(e *entry.Entry) (*color.Color, error) {
	def := defaultColor(e)
	if tw.colors == nil {
		return def, nil
	}
	c, err := tw.colors.ForIcon(e, def)
	if err := tw.fallback(err); err != nil {
		return nil, err
	}
	return c, nil
}

// fallback logs a configuration error and lets the caller continue with the
// default, unless the tree is strict.
func (tw *writer) fallback(err error) error {
	if err == nil {
		return nil
	}
	if tw.strict {
		return err
	}
	logging.Warn("configuration failed for entry, using default", logging.Err(err))
	return nil
}

func defaultIcon(e *entry.Entry) string {
	switch e.Kind() {
	case entry.KindDirectory:
		return DirectoryIcon
	case entry.KindSymlink:
		return SymlinkIcon
	}
	return FileIcon
}

func defaultColor(e *entry.Entry) *color.Color {
	var c color.Color
	switch {
	case e.Kind() == entry.KindDirectory:
		c = color.FromAnsi(color.Blue)
	case e.Kind() == entry.KindSymlink:
		c = color.FromAnsi(color.Cyan)
	case e.IsExecutable():
		c = color.FromAnsi(color.Green)
	default:
		return nil
	}
	return &c
}
