package config

import (
	"os"

	lua "github.com/yuin/gopher-lua"
)

// runInitScript executes the init.lua at path against cfg. The script
// sees two globals: get(option) returning the current value and
// set(option, value) writing it. Unknown option names are ignored so an
// init.lua written for a newer build still loads. A missing script is
// not an error.
func runInitScript(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("get", L.NewFunction(func(L *lua.LState) int {
		switch L.CheckString(1) {
		case "theme":
			L.Push(lua.LString(cfg.Theme))
		case "tab_width":
			L.Push(lua.LNumber(cfg.TabWidth))
		case "line_numbers":
			L.Push(lua.LBool(cfg.LineNumbers))
		default:
			L.Push(lua.LNil)
		}
		return 1
	}))

	L.SetGlobal("set", L.NewFunction(func(L *lua.LState) int {
		switch L.CheckString(1) {
		case "theme":
			cfg.Theme = L.CheckString(2)
		case "tab_width":
			if n := int(L.CheckNumber(2)); n > 0 {
				cfg.TabWidth = n
			}
		case "line_numbers":
			cfg.LineNumbers = L.CheckBool(2)
		}
		return 0
	}))

	if err := L.DoFile(path); err != nil {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return nil
}
