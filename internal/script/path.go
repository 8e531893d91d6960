package script

import (
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/NopAngel/fancy-tree/internal/glob"
)

func newPathAPI(L *lua.LState, globs *glob.Cache) *lua.LTable {
	api := L.NewTable()
	api.RawSetString("filename", L.NewFunction(func(L *lua.LState) int {
		name, ok := Filename(L.CheckString(1))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(name))
		return 1
	}))
	api.RawSetString("glob_matches", L.NewFunction(func(L *lua.LState) int {
		pattern := L.CheckString(1)
		path := L.CheckString(2)
		L.Push(lua.LBool(globs.Matches(pattern, path)))
		return 1
	}))
	return api
}

// Filename returns the final component of path. Trailing separators and "."
// components are ignored; a path that ends in ".." or has no components has no
// file name.
func Filename(path string) (string, bool) {
	p := path[len(filepath.VolumeName(path)):]
	for {
		p = strings.TrimRightFunc(p, isSeparator)
		if p == "" {
			return "", false
		}
		i := strings.LastIndexFunc(p, isSeparator)
		last := p[i+1:]
		switch last {
		case ".":
			if i < 0 {
				return "", false
			}
			p = p[:i]
		case "..":
			return "", false
		default:
			return last, true
		}
	}
}

func isSeparator(r rune) bool {
	return os.IsPathSeparator(uint8(r)) && r < 0x80
}
