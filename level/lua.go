package level

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"
	"gopkg.in/yaml.v3"
)

// LevelGlobal is the Lua global a level script assigns.
const LevelGlobal = "Level"

// LoadLua runs the script at path and reads its Level table.
func LoadLua(path string) (*Description, error) {
	vm := newVM()
	defer vm.Close()
	if err := vm.DoFile(path); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	d, err := fromGlobal(vm)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return d, nil
}

// LoadLuaString runs src and reads its Level table.
func LoadLuaString(src string) (*Description, error) {
	vm := newVM()
	defer vm.Close()
	if err := vm.DoString(src); err != nil {
		return nil, fmt.Errorf("load level script: %w", err)
	}
	return fromGlobal(vm)
}

func newVM() *lua.LState {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return vm
}

// fromGlobal converts the Level table to plain values and decodes them with the same
// rules as a YAML level file.
func fromGlobal(vm *lua.LState) (*Description, error) {
	tbl, ok := vm.GetGlobal(LevelGlobal).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("script does not define a %s table", LevelGlobal)
	}
	raw, err := yaml.Marshal(toGo(tbl))
	if err != nil {
		return nil, fmt.Errorf("encode %s table: %w", LevelGlobal, err)
	}
	return ParseYAML(raw)
}

// toGo converts a Lua value to nil, bool, int, float64, string, []any or map[string]any.
// Tables whose keys are exactly 1..n become slices.
func toGo(v lua.LValue) any {
	switch v := v.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		n := v.MaxN()
		count := 0
		v.ForEach(func(_, _ lua.LValue) { count++ })
		if count == 0 {
			return nil
		}
		if n == count {
			list := make([]any, 0, n)
			for i := 1; i <= n; i++ {
				list = append(list, toGo(v.RawGetInt(i)))
			}
			return list
		}
		m := make(map[string]any, count)
		v.ForEach(func(k, val lua.LValue) {
			m[k.String()] = toGo(val)
		})
		return m
	}
	return nil
}
