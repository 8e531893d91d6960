package config

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/NopAngel/fancy-tree/internal/color"
	"github.com/NopAngel/fancy-tree/internal/script"
)

// Names of the configuration surfaces, as reported in evaluation errors.
const (
	SurfaceIcons  = "icons"
	SurfaceColors = "colors"
	SurfaceSkip   = "skip"
)

// evaluate calls fn with (path, attributes, extra...) for e.
func evaluate(s *script.State, fn *lua.LFunction, surface string, e script.Entry, extra ...lua.LValue) (lua.LValue, error) {
	args := []lua.LValue{
		lua.LString(e.Path()),
		script.NewFileAttributes(e).ToLua(s.L),
	}
	args = append(args, extra...)

	ret, err := s.Call(fn, args...)
	if err != nil {
		return lua.LNil, &script.EvalError{Surface: surface, Path: e.Path(), Err: err}
	}
	return ret, nil
}

// Icons resolves the icon of an entry through icons.lua.
type Icons struct {
	state   *script.State
	getIcon *lua.LFunction
}

// LoadIcons evaluates an icons module. The module must return a function.
func LoadIcons(s *script.State, name, source string) (*Icons, error) {
	v, err := s.LoadModule(name, source)
	if err != nil {
		return nil, err
	}
	fn, ok := v.(*lua.LFunction)
	if !ok {
		return nil, &script.LoadError{Module: name, Err: fmt.Errorf("module must return a function, got %s", v.Type())}
	}
	return &Icons{state: s, getIcon: fn}, nil
}

// GetIcon returns the icon for e. When the script returns nil, def is
// returned unchanged.
func (i *Icons) GetIcon(e script.Entry, def string) (string, error) {
	ret, err := evaluate(i.state, i.getIcon, SurfaceIcons, e, lua.LString(def))
	if err != nil {
		return def, err
	}
	switch v := ret.(type) {
	case *lua.LNilType:
		return def, nil
	case lua.LString:
		return string(v), nil
	}
	return def, &script.EvalError{
		Surface: SurfaceIcons,
		Path:    e.Path(),
		Err:     fmt.Errorf("icon must be a string or nil, got %s", ret.Type()),
	}
}

// Colors resolves entry colors through colors.lua.
type Colors struct {
	state   *script.State
	forIcon *lua.LFunction
}

// LoadColors evaluates a colors module. The module must return a table whose
// icons field is a function.
func LoadColors(s *script.State, name, source string) (*Colors, error) {
	v, err := s.LoadModule(name, source)
	if err != nil {
		return nil, err
	}
	t, ok := v.(*lua.LTable)
	if !ok {
		return nil, &script.LoadError{Module: name, Err: fmt.Errorf("module must return a table, got %s", v.Type())}
	}
	fn, ok := t.RawGetString("icons").(*lua.LFunction)
	if !ok {
		return nil, &script.LoadError{Module: name, Err: fmt.Errorf("field icons must be a function, got %s", t.RawGetString("icons").Type())}
	}
	return &Colors{state: s, forIcon: fn}, nil
}

// ForIcon returns the color of e's icon. When the script returns nil, def is
// returned unchanged.
func (c *Colors) ForIcon(e script.Entry, def *color.Color) (*color.Color, error) {
	ret, err := evaluate(c.state, c.forIcon, SurfaceColors, e, script.ColorToLua(c.state.L, def))
	if err != nil {
		return def, err
	}
	if ret == lua.LNil {
		return def, nil
	}
	col, err := script.ColorFromLua(ret)
	if err != nil {
		return def, &script.EvalError{Surface: SurfaceColors, Path: e.Path(), Err: err}
	}
	return col, nil
}
