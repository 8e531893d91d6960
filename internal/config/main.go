package config

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/NopAngel/fancy-tree/internal/color"
	"github.com/NopAngel/fancy-tree/internal/script"
)

// Main holds the options of config.lua. Unset fields are zero.
type Main struct {
	Color   *color.Choice
	Level   int
	Charset string

	state *script.State
	skip  *lua.LFunction
}

// LoadMain evaluates a main module. The module may return nil or a table.
func LoadMain(s *script.State, name, source string) (*Main, error) {
	v, err := s.LoadModule(name, source)
	if err != nil {
		return nil, err
	}
	m := &Main{state: s}
	if v == lua.LNil {
		return m, nil
	}
	t, ok := v.(*lua.LTable)
	if !ok {
		return nil, &script.LoadError{Module: name, Err: fmt.Errorf("module must return a table, got %s", v.Type())}
	}
	if err := m.decode(t); err != nil {
		return nil, &script.LoadError{Module: name, Err: err}
	}
	return m, nil
}

func (m *Main) decode(t *lua.LTable) error {
	if v := t.RawGetString("color"); v != lua.LNil {
		choice, err := script.ChoiceFromLua(v)
		if err != nil {
			return fmt.Errorf("field color: %w", err)
		}
		m.Color = &choice
	}

	switch v := t.RawGetString("level").(type) {
	case *lua.LNilType:
	case lua.LNumber:
		f := float64(v)
		if f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
			return fmt.Errorf("field level: must be a positive integer, got %v", f)
		}
		m.Level = int(f)
	default:
		return fmt.Errorf("field level: must be a positive integer, got %s", v.Type())
	}

	switch v := t.RawGetString("charset").(type) {
	case *lua.LNilType:
	case lua.LString:
		m.Charset = string(v)
	default:
		return fmt.Errorf("field charset: must be a string, got %s", v.Type())
	}

	switch v := t.RawGetString("skip").(type) {
	case *lua.LNilType:
	case *lua.LFunction:
		m.skip = v
	default:
		return fmt.Errorf("field skip: must be a function, got %s", v.Type())
	}
	return nil
}

// Skip reports whether e should be left out of the tree. Without a skip
// function nothing is skipped.
func (m *Main) Skip(e script.Entry) (bool, error) {
	if m == nil || m.skip == nil {
		return false, nil
	}
	ret, err := evaluate(m.state, m.skip, SurfaceSkip, e)
	if err != nil {
		return false, err
	}
	return lua.LVAsBool(ret), nil
}
