package entry

import (
	"os"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Kind is the closed set of entry types.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "file"
	}
}

// Attributes is implemented by DirectoryAttributes, FileAttributes and
// SymlinkAttributes only.
type Attributes interface {
	Kind() Kind
	IsHidden() bool
	IsExecutable() bool
	sealed()
}

// DirectoryAttributes describes a directory.
type DirectoryAttributes struct {
	Hidden bool
}

func (DirectoryAttributes) Kind() Kind { return KindDirectory }
func (d DirectoryAttributes) IsHidden() bool { return d.Hidden }
func (DirectoryAttributes) IsExecutable() bool { return false }
func (DirectoryAttributes) sealed() {}

// FileAttributes describes a regular (or special) file.
type FileAttributes struct {
	Hidden     bool
	Executable bool
	// Language is empty when no language was detected.
	Language string
}

func (FileAttributes) Kind() Kind { return KindFile }
func (f FileAttributes) IsHidden() bool { return f.Hidden }
func (f FileAttributes) IsExecutable() bool { return f.Executable }
func (FileAttributes) sealed() {}

// SymlinkAttributes describes a symbolic link. The target is not followed.
type SymlinkAttributes struct {
	Hidden bool
}

func (SymlinkAttributes) Kind() Kind { return KindSymlink }
func (s SymlinkAttributes) IsHidden() bool { return s.Hidden }
func (SymlinkAttributes) IsExecutable() bool { return false }
func (SymlinkAttributes) sealed() {}

func newAttributes(path string, info os.FileInfo) Attributes {
	hidden := hasHiddenAttribute(info)
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return SymlinkAttributes{Hidden: hidden}
	case info.IsDir():
		return DirectoryAttributes{Hidden: hidden}
	default:
		return FileAttributes{
			Hidden:     hidden,
			Executable: isExecutable(path, info),
			Language:   DetectLanguage(info.Name()),
		}
	}
}

// DetectLanguage returns the name of the language a file name suggests, or ""
// when it suggests none.
func DetectLanguage(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
