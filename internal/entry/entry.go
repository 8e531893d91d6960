// Package entry describes one node of a rendered tree: its path and the
// attributes derived from the filesystem when it was read.
package entry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is a file, directory or symlink at a path relative to the tree root.
type Entry struct {
	path       string
	attributes Attributes
}

// New reads the attributes of path without following symlinks.
func New(path string) (*Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return FromFileInfo(path, info), nil
}

// FromFileInfo builds an entry from metadata the caller already has.
func FromFileInfo(path string, info os.FileInfo) *Entry {
	return &Entry{path: path, attributes: newAttributes(path, info)}
}

// Path returns the path the entry was created with.
func (e *Entry) Path() string { return e.path }

// Name returns the final path component.
func (e *Entry) Name() string { return filepath.Base(e.path) }

// Attributes returns the entry's type-specific metadata.
func (e *Entry) Attributes() Attributes { return e.attributes }

// Kind returns whether the entry is a directory, file or symlink.
func (e *Entry) Kind() Kind { return e.attributes.Kind() }

// IsExecutable reports whether the entry is an executable file.
func (e *Entry) IsExecutable() bool { return e.attributes.IsExecutable() }

// IsDotfile reports whether the file name starts with a dot.
func (e *Entry) IsDotfile() bool {
	name := filepath.Base(e.path)
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// IsHidden reports whether the entry is hidden: a dotfile on Unix-family
// systems, or an entry carrying the hidden attribute on Windows.
func (e *Entry) IsHidden() bool {
	return (dotfilesHidden && e.IsDotfile()) || e.attributes.IsHidden()
}

// Language returns the detected code language of a file.
func (e *Entry) Language() (string, bool) {
	if f, ok := e.attributes.(FileAttributes); ok && f.Language != "" {
		return f.Language, true
	}
	return "", false
}
