package script

import (
	"runtime"

	lua "github.com/yuin/gopher-lua"

	"github.com/NopAngel/fancy-tree/internal/glob"
)

// APIName is the global the API table is exposed under.
const APIName = "fancytree"

// OS identifies the host operating-system family: "linux", "macos",
// "windows" or "other".
var OS = osName(runtime.GOOS)

func osName(goos string) string {
	switch goos {
	case "linux":
		return "linux"
	case "darwin":
		return "macos"
	case "windows":
		return "windows"
	default:
		return "other"
	}
}

func newAPI(L *lua.LState, globs *glob.Cache) *lua.LTable {
	api := L.NewTable()
	api.RawSetString("is_unix", lua.LBool(IsUnix))
	api.RawSetString("os", lua.LString(OS))
	api.RawSetString("path", newPathAPI(L, globs))
	return api
}

// freeze returns a read-only proxy of t. Nested tables are frozen too.
func freeze(L *lua.LState, t *lua.LTable) *lua.LTable {
	nested := map[lua.LValue]*lua.LTable{}
	t.ForEach(func(key, value lua.LValue) {
		if inner, ok := value.(*lua.LTable); ok {
			nested[key] = inner
		}
	})
	for key, inner := range nested {
		t.RawSet(key, freeze(L, inner))
	}

	proxy := L.NewTable()
	meta := L.NewTable()
	meta.RawSetString("__index", t)
	meta.RawSetString("__newindex", L.NewFunction(func(L *lua.LState) int {
		L.RaiseError("%s API is read-only", APIName)
		return 0
	}))
	meta.RawSetString("__metatable", lua.LFalse)
	L.SetMetatable(proxy, meta)
	return proxy
}

// ScopeExtension exposes the root of the tree being rendered as
// fancytree.root.
func ScopeExtension(root string) Extension {
	return func(_ *lua.LState, api *lua.LTable) error {
		api.RawSetString("root", lua.LString(root))
		return nil
	}
}
