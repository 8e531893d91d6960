// Package script hosts the sandboxed Lua runtime that evaluates user theming
// configuration.
//
// A State is confined to one rendering session and must not be shared between
// goroutines. User code only sees the base functions in allowedGlobals, the
// string and table libraries, and the fancytree API; there is no io, os,
// package, debug or coroutine library.
package script

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/NopAngel/fancy-tree/internal/glob"
)

// allowedGlobals is the complete set of globals left after the standard
// libraries are opened. Anything else the libraries register is removed.
// rawset and rawget are left out because they bypass the read-only API.
var allowedGlobals = map[string]bool{
	"_G":           true,
	"_VERSION":     true,
	"assert":       true,
	"error":        true,
	"getmetatable": true,
	"ipairs":       true,
	"next":         true,
	"pairs":        true,
	"pcall":        true,
	"rawequal":     true,
	"select":       true,
	"setmetatable": true,
	"tonumber":     true,
	"tostring":     true,
	"type":         true,
	"unpack":       true,
	"xpcall":       true,
	"string":       true,
	"table":        true,
}

// Extension adds context to the API table before it is frozen and before any
// configuration is loaded.
type Extension func(L *lua.LState, api *lua.LTable) error

// Builder configures a State.
type Builder struct {
	globs      *glob.Cache
	extensions []Extension
}

// NewBuilder returns a builder using the process-wide glob cache.
func NewBuilder() *Builder {
	return &Builder{globs: glob.Default}
}

// WithGlobCache backs path.glob_matches with c instead of the shared cache.
func (b *Builder) WithGlobCache(c *glob.Cache) *Builder {
	b.globs = c
	return b
}

// WithExtension registers an extension. Extensions run in registration order.
func (b *Builder) WithExtension(ext Extension) *Builder {
	b.extensions = append(b.extensions, ext)
	return b
}

// Build creates the sandbox.
func (b *Builder) Build() (*State, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	state := &State{L: L}
	if err := state.initialize(b.globs, b.extensions); err != nil {
		L.Close()
		return nil, fmt.Errorf("create sandbox: %w", err)
	}
	return state, nil
}

// New creates a sandbox with no extensions.
func New() (*State, error) {
	return NewBuilder().Build()
}

// State owns one Lua interpreter.
type State struct {
	L *lua.LState
}

func (s *State) initialize(globs *glob.Cache, extensions []Extension) error {
	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
	}
	for _, lib := range libs {
		s.L.Push(s.L.NewFunction(lib.open))
		s.L.Push(lua.LString(lib.name))
		if err := s.L.PCall(1, 0, nil); err != nil {
			return fmt.Errorf("open %q library: %w", lib.name, err)
		}
	}
	s.restrictGlobals()

	api := newAPI(s.L, globs)
	for _, ext := range extensions {
		if err := ext(s.L, api); err != nil {
			return fmt.Errorf("extension: %w", err)
		}
	}
	s.L.SetGlobal(APIName, freeze(s.L, api))
	return nil
}

func (s *State) restrictGlobals() {
	globals := s.L.Get(lua.GlobalsIndex).(*lua.LTable)
	var denied []lua.LValue
	globals.ForEach(func(key, _ lua.LValue) {
		if name, ok := key.(lua.LString); ok && allowedGlobals[string(name)] {
			return
		}
		denied = append(denied, key)
	})
	for _, key := range denied {
		globals.RawSet(key, lua.LNil)
	}
}

// LoadModule evaluates source as a chunk named name and returns the chunk's
// first return value.
func (s *State) LoadModule(name, source string) (lua.LValue, error) {
	fn, err := s.L.Load(strings.NewReader(source), name)
	if err != nil {
		return lua.LNil, &LoadError{Module: name, Err: err}
	}
	s.L.Push(fn)
	if err := s.L.PCall(0, 1, nil); err != nil {
		return lua.LNil, &LoadError{Module: name, Err: err}
	}
	ret := s.L.Get(-1)
	s.L.Pop(1)
	return ret, nil
}

// Call invokes fn in protected mode and returns its first return value.
func (s *State) Call(fn *lua.LFunction, args ...lua.LValue) (lua.LValue, error) {
	if err := s.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		return lua.LNil, err
	}
	ret := s.L.Get(-1)
	s.L.Pop(1)
	return ret, nil
}

// Close releases the interpreter. Loaded configuration functions become
// unusable.
func (s *State) Close() {
	s.L.Close()
}
