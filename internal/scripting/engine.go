package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/corvid/corvid/internal/profiler"
)

// Context is the world snapshot handed to Lua commands on every call.
type Context struct {
	ServerName string
	Build      string
	Frame      uint64
	Uptime     time.Duration
	TickRate   time.Duration
	Entities   int
	Monitors   []profiler.MonitorStats
}

// ContextFunc produces the current Context. Called per command execution.
type ContextFunc func() Context

// Engine wraps a single gopher-lua VM serving console commands defined in
// Lua. Single-goroutine access only (game loop). Scripts register entries in
// the global "commands" table:
//
//	commands.uptime = function(ctx, args)
//	    return { string.format("up %.0fs", ctx.uptime_seconds) }
//	end
type Engine struct {
	vm      *lua.LState
	log     *zap.Logger
	dir     string
	context ContextFunc
}

// NewEngine creates a Lua engine and loads all command scripts from
// dir/commands. A missing directory is not an error.
func NewEngine(dir string, context ContextFunc, log *zap.Logger) (*Engine, error) {
	e := &Engine{log: log, dir: dir, context: context}
	vm, err := e.boot()
	if err != nil {
		return nil, err
	}
	e.vm = vm
	return e, nil
}

func (e *Engine) boot() (*lua.LState, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("commands", vm.NewTable())

	if err := loadDir(vm, filepath.Join(e.dir, "commands"), e.log); err != nil {
		vm.Close()
		return nil, err
	}
	return vm, nil
}

// loadDir loads all .lua files in a directory.
func loadDir(vm *lua.LState, dir string, log *zap.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Reload rebuilds the VM from the script directory. The old VM is kept if
// loading fails.
func (e *Engine) Reload() error {
	vm, err := e.boot()
	if err != nil {
		return err
	}
	e.vm.Close()
	e.vm = vm
	return nil
}

// Commands returns the names registered in the commands table, unsorted.
func (e *Engine) Commands() []string {
	t, ok := e.vm.GetGlobal("commands").(*lua.LTable)
	if !ok {
		return nil
	}
	var names []string
	t.ForEach(func(k, v lua.LValue) {
		if s, ok := k.(lua.LString); ok {
			names = append(names, string(s))
		}
	})
	return names
}

// Exec runs a Lua-defined command. Implements the console fallback: handled
// is false when no script defines the command.
func (e *Engine) Exec(name string, args []string) ([]string, bool, error) {
	t, ok := e.vm.GetGlobal("commands").(*lua.LTable)
	if !ok {
		return nil, false, nil
	}
	fn := t.RawGetString(name)
	if fn == lua.LNil {
		return nil, false, nil
	}

	ctxTable := e.buildContext()
	argsTable := e.vm.NewTable()
	for _, a := range args {
		argsTable.Append(lua.LString(a))
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, ctxTable, argsTable); err != nil {
		e.log.Error("lua command error", zap.String("command", name), zap.Error(err))
		return nil, true, fmt.Errorf("script %s: %w", name, err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return resultLines(result), true, nil
}

func (e *Engine) buildContext() *lua.LTable {
	ctx := e.context()
	t := e.vm.NewTable()
	t.RawSetString("server", lua.LString(ctx.ServerName))
	t.RawSetString("build", lua.LString(ctx.Build))
	t.RawSetString("frame", lua.LNumber(ctx.Frame))
	t.RawSetString("uptime_seconds", lua.LNumber(ctx.Uptime.Seconds()))
	t.RawSetString("tick_ms", lua.LNumber(float64(ctx.TickRate.Microseconds())/1000.0))
	t.RawSetString("entities", lua.LNumber(ctx.Entities))

	monitors := e.vm.NewTable()
	for _, m := range ctx.Monitors {
		mt := e.vm.NewTable()
		mt.RawSetString("snaps", lua.LNumber(m.Snaps))
		mt.RawSetString("latest_ms", lua.LNumber(float64(m.Latest.Microseconds())/1000.0))
		mt.RawSetString("avg_ms", lua.LNumber(float64(m.Average.Microseconds())/1000.0))
		mt.RawSetString("tail_ms", lua.LNumber(float64(m.Tail.Microseconds())/1000.0))
		monitors.RawSetString(m.Name, mt)
	}
	t.RawSetString("monitors", monitors)
	return t
}

// resultLines converts a command's return value to output lines: nil means
// no output, a string is one line, a table is read as an array of strings.
func resultLines(v lua.LValue) []string {
	switch r := v.(type) {
	case *lua.LTable:
		var lines []string
		n := r.Len()
		for i := 1; i <= n; i++ {
			lines = append(lines, lua.LVAsString(r.RawGetInt(i)))
		}
		return lines
	case lua.LString:
		return []string{string(r)}
	default:
		return nil
	}
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}
