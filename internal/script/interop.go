package script

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/NopAngel/fancy-tree/internal/color"
	"github.com/NopAngel/fancy-tree/internal/entry"
)

// Entry is the view of a tree entry the bridge reads attributes from.
type Entry interface {
	Path() string
	Kind() entry.Kind
	IsHidden() bool
	IsExecutable() bool
	Language() (string, bool)
}

// FileAttributes is the snapshot of an entry handed to configuration scripts.
// It is rebuilt for every call and never written back.
type FileAttributes struct {
	IsHidden     bool
	IsExecutable bool
	FileType     string
	// Language is empty when none was detected.
	Language string
}

// NewFileAttributes snapshots e.
func NewFileAttributes(e Entry) FileAttributes {
	lang, _ := e.Language()
	return FileAttributes{
		IsHidden:     e.IsHidden(),
		IsExecutable: e.IsExecutable(),
		FileType:     e.Kind().String(),
		Language:     lang,
	}
}

// ToLua copies the snapshot into a fresh table.
func (a FileAttributes) ToLua(L *lua.LState) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("is_hidden", lua.LBool(a.IsHidden))
	t.RawSetString("is_executable", lua.LBool(a.IsExecutable))
	t.RawSetString("file_type", lua.LString(a.FileType))
	if a.Language != "" {
		t.RawSetString("language", lua.LString(a.Language))
	}
	return t
}

// ColorToLua converts c to its script form: the ANSI token as a string, or an
// array {r, g, b}. A nil color becomes nil.
func ColorToLua(L *lua.LState, c *color.Color) lua.LValue {
	if c == nil {
		return lua.LNil
	}
	if r, g, b, ok := c.Channels(); ok {
		t := L.CreateTable(3, 0)
		t.RawSetInt(1, lua.LNumber(r))
		t.RawSetInt(2, lua.LNumber(g))
		t.RawSetInt(3, lua.LNumber(b))
		return t
	}
	ansi, _ := c.Ansi()
	return lua.LString(ansi.String())
}

// ColorFromLua is the inverse of ColorToLua. nil converts to a nil color.
func ColorFromLua(v lua.LValue) (*color.Color, error) {
	switch v := v.(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LString:
		ansi, err := color.ParseAnsi(string(v))
		if err != nil {
			return nil, err
		}
		c := color.FromAnsi(ansi)
		return &c, nil
	case *lua.LTable:
		var channels [3]uint8
		for i := range channels {
			ch, err := channelFromLua(v.RawGetInt(i + 1))
			if err != nil {
				return nil, fmt.Errorf("RGB channel %d: %w", i+1, err)
			}
			channels[i] = ch
		}
		if v.Len() != 3 {
			return nil, fmt.Errorf("RGB color must have exactly 3 channels, got %d", v.Len())
		}
		c := color.RGB(channels[0], channels[1], channels[2])
		return &c, nil
	}
	return nil, fmt.Errorf("cannot convert %s to a color: want a color name or {r, g, b}", v.Type())
}

func channelFromLua(v lua.LValue) (uint8, error) {
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("want an integer, got %s", v.Type())
	}
	f := float64(n)
	if f != math.Trunc(f) || f < 0 || f > 255 {
		return 0, fmt.Errorf("%v is not an integer in 0-255", f)
	}
	return uint8(f), nil
}

// ChoiceFromLua converts a color choice token. Callers treat nil as "unset"
// before calling; here it is an error like any other non-string.
func ChoiceFromLua(v lua.LValue) (color.Choice, error) {
	s, ok := v.(lua.LString)
	if !ok {
		return color.ChoiceAuto, &color.ChoiceError{Value: v.String(), Type: v.Type().String()}
	}
	return color.ParseChoice(string(s))
}
