package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/corvid/corvid/internal/console"
	"github.com/corvid/corvid/internal/core/ecs"
	"github.com/corvid/corvid/internal/handler"
	"github.com/corvid/corvid/internal/overlay"
	"github.com/corvid/corvid/internal/render"
	"github.com/corvid/corvid/internal/scripting"
	"github.com/corvid/corvid/internal/telemetry"
)

func fmtMs(us int64) string {
	return fmt.Sprintf("%.2fms", float64(us)/1000.0)
}

// registerBuiltinCommands wires the Go-side console commands. Lua scripts
// extend this set through the fallback.
func registerBuiltinCommands(
	cons *console.Console,
	deps *handler.Deps,
	lua *scripting.Engine,
	overlayCtx *overlay.Context,
	store *telemetry.Store,
) error {
	commands := []*console.Command{
		{
			Name:  "status",
			Usage: "status",
			Help:  "show server status",
			Run: func(args []string) ([]string, error) {
				return []string{
					fmt.Sprintf("%s %s", deps.Config.Server.Name, deps.Config.Server.Build),
					fmt.Sprintf("frame %d, %d entities, %d component types",
						deps.Profiler.Frame(),
						deps.World.Pool().Count(),
						len(deps.World.Registry().Stores())),
				}, nil
			},
		},
		{
			Name:  "modules",
			Usage: "modules",
			Help:  "list registered debug modules",
			Run: func(args []string) ([]string, error) {
				rows := make([][]string, 0, 8)
				for _, m := range overlayCtx.Modules() {
					rows = append(rows, []string{m.ID(), m.Title(), m.Description()})
				}
				return console.Table([]string{"id", "title", "description"}, rows), nil
			},
		},
		{
			Name:  "prof",
			Usage: "prof [monitor]",
			Help:  "show profiler summary or one monitor's history",
			Run: func(args []string) ([]string, error) {
				if len(args) > 0 {
					m, ok := deps.Profiler.Lookup(args[0])
					if !ok {
						return nil, fmt.Errorf("unknown monitor %q", args[0])
					}
					return []string{m.String()}, nil
				}
				rows := make([][]string, 0, 16)
				for _, m := range deps.Profiler.Summary(deps.Config.Profiler.Percentile) {
					rows = append(rows, []string{
						m.Name,
						strconv.Itoa(m.Snaps),
						fmtMs(m.Latest.Microseconds()),
						fmtMs(m.Average.Microseconds()),
						fmtMs(m.Tail.Microseconds()),
						fmtMs(m.Max.Microseconds()),
					})
				}
				return console.Table([]string{"monitor", "snaps", "latest", "avg", "tail", "max"}, rows), nil
			},
		},
		{
			Name:  "clear",
			Usage: "clear",
			Help:  "drop all profiler history",
			Run: func(args []string) ([]string, error) {
				deps.Profiler.Clear()
				return []string{"profiler history cleared"}, nil
			},
		},
		{
			Name:  "capture",
			Usage: "capture <start|stop|status> [cpu|heap|block|mutex|goroutine]",
			Help:  "drive pprof captures",
			Run: func(args []string) ([]string, error) {
				if len(args) == 0 {
					return nil, fmt.Errorf("usage: capture <start|stop|status> [mode]")
				}
				switch args[0] {
				case "start":
					mode := "cpu"
					if len(args) > 1 {
						mode = args[1]
					}
					dir, err := deps.Capturer.Start(mode)
					if err != nil {
						return nil, err
					}
					return []string{fmt.Sprintf("%s capture started, output %s", mode, dir)}, nil
				case "stop":
					mode, err := deps.Capturer.Stop()
					if err != nil {
						return nil, err
					}
					return []string{mode + " capture stopped"}, nil
				case "status":
					if mode, running := deps.Capturer.Running(); running {
						return []string{mode + " capture running"}, nil
					}
					return []string{"no capture running"}, nil
				}
				return nil, fmt.Errorf("unknown capture action %q", args[0])
			},
		},
		{
			Name:  "entities",
			Usage: "entities [component] [limit]",
			Help:  "list live entities, optionally filtered by component",
			Run: func(args []string) ([]string, error) {
				filter := ""
				limit := 20
				if len(args) > 0 {
					filter = args[0]
				}
				if len(args) > 1 {
					n, err := strconv.Atoi(args[1])
					if err != nil {
						return nil, fmt.Errorf("bad limit %q", args[1])
					}
					limit = n
				}
				rows, total, err := deps.Inspector.Entities(filter, limit)
				if err != nil {
					return nil, err
				}
				out := make([][]string, 0, len(rows))
				for _, row := range rows {
					out = append(out, []string{
						fmt.Sprintf("%d:%d", row.ID.Index(), row.ID.Generation()),
						fmt.Sprintf("%v", row.Components),
					})
				}
				lines := console.Table([]string{"entity", "components"}, out)
				lines = append(lines, fmt.Sprintf("%d of %d shown", len(rows), total))
				return lines, nil
			},
		},
		{
			Name:  "inspect",
			Usage: "inspect <index[:generation]>",
			Help:  "dump one entity's components field by field",
			Run: func(args []string) ([]string, error) {
				if len(args) == 0 {
					return nil, fmt.Errorf("usage: inspect <index[:generation]>")
				}
				id, err := parseEntityID(args[0])
				if err != nil {
					return nil, err
				}
				detail, err := deps.Inspector.Detail(id)
				if err != nil {
					return nil, err
				}
				lines := []string{fmt.Sprintf("entity %d:%d", id.Index(), id.Generation())}
				for _, c := range detail.Components {
					lines = append(lines, c.Name)
					for _, f := range c.Fields {
						lines = append(lines, fmt.Sprintf("  %s %s = %s", f.Name, f.Type, f.Value))
					}
				}
				return lines, nil
			},
		},
		{
			Name:  "set",
			Usage: "set <index[:generation]> <component> <field> <value>",
			Help:  "write a scalar component field on a live entity",
			Run: func(args []string) ([]string, error) {
				if len(args) != 4 {
					return nil, fmt.Errorf("usage: set <id> <component> <field> <value>")
				}
				id, err := parseEntityID(args[0])
				if err != nil {
					return nil, err
				}
				if err := deps.Inspector.SetField(id, args[1], args[2], args[3]); err != nil {
					return nil, err
				}
				return []string{fmt.Sprintf("%s.%s = %s", args[1], args[2], args[3])}, nil
			},
		},
		{
			Name:  "components",
			Usage: "components",
			Help:  "list component types with live counts",
			Run: func(args []string) ([]string, error) {
				rows := make([][]string, 0, 8)
				for _, t := range deps.Inspector.ComponentTypes() {
					rows = append(rows, []string{t.Name, strconv.Itoa(t.Count)})
				}
				return console.Table([]string{"component", "count"}, rows), nil
			},
		},
		{
			Name:  "resources",
			Usage: "resources",
			Help:  "list world resources",
			Run: func(args []string) ([]string, error) {
				rows := make([][]string, 0, 8)
				for _, res := range deps.Inspector.ResourceList() {
					rows = append(rows, []string{res.Name, res.Value})
				}
				return console.Table([]string{"resource", "value"}, rows), nil
			},
		},
		{
			Name:  "events",
			Usage: "events",
			Help:  "show per-type event emit counts",
			Run: func(args []string) ([]string, error) {
				rows := make([][]string, 0, 8)
				for _, s := range deps.Inspector.EventStats() {
					rows = append(rows, []string{
						s.Name,
						strconv.FormatUint(s.LastTick, 10),
						strconv.FormatUint(s.Total, 10),
					})
				}
				return console.Table([]string{"event", "last tick", "total"}, rows), nil
			},
		},
		{
			Name:  "rstats",
			Usage: "rstats",
			Help:  "show last frame's render stats",
			Run: func(args []string) ([]string, error) {
				stats, frame := deps.RenderStats.Snapshot()
				return []string{
					fmt.Sprintf("frame %d", frame),
					fmt.Sprintf("draw calls %d, triangles %d", stats.DrawCalls, stats.Triangles),
					fmt.Sprintf("texture binds %d, shader switches %d", stats.TextureBinds, stats.ShaderSwitches),
					fmt.Sprintf("visible %d, culled %d", stats.EntitiesVisible, stats.EntitiesCulled),
				}, nil
			},
		},
		{
			Name:  "assets",
			Usage: "assets [texture|mesh|material|shader]",
			Help:  "list tracked render assets",
			Run: func(args []string) ([]string, error) {
				kind := render.AssetKind("")
				if len(args) > 0 {
					kind = render.AssetKind(args[0])
				}
				rows := make([][]string, 0, 16)
				for _, a := range deps.Assets.List(kind) {
					rows = append(rows, []string{
						string(a.Kind),
						a.Name,
						strconv.FormatInt(a.Size, 10),
						strconv.Itoa(a.Refs),
					})
				}
				lines := console.Table([]string{"kind", "name", "bytes", "refs"}, rows)
				lines = append(lines, fmt.Sprintf("total %d KiB", deps.Assets.TotalBytes()/1024))
				return lines, nil
			},
		},
		{
			Name:  "toggle",
			Usage: "toggle <wireframe|overdraw|bounds> [on|off]",
			Help:  "flip or set a render debug toggle",
			Run: func(args []string) ([]string, error) {
				if len(args) == 0 {
					states := deps.Toggles.States()
					names := make([]string, 0, len(states))
					for name := range states {
						names = append(names, name)
					}
					sort.Strings(names)
					rows := make([][]string, 0, len(names))
					for _, name := range names {
						rows = append(rows, []string{name, strconv.FormatBool(states[name])})
					}
					return console.Table([]string{"toggle", "state"}, rows), nil
				}
				var (
					on  bool
					err error
				)
				switch {
				case len(args) > 1 && args[1] == "on":
					on, err = deps.Toggles.Set(args[0], true)
				case len(args) > 1 && args[1] == "off":
					on, err = deps.Toggles.Set(args[0], false)
				default:
					on, err = deps.Toggles.Flip(args[0])
				}
				if err != nil {
					return nil, err
				}
				state := "off"
				if on {
					state = "on"
				}
				return []string{args[0] + " = " + state}, nil
			},
		},
		{
			Name:  "telemetry",
			Usage: "telemetry",
			Help:  "show telemetry buffer state",
			Run: func(args []string) ([]string, error) {
				if store == nil {
					return []string{"telemetry disabled"}, nil
				}
				return []string{fmt.Sprintf("%d samples buffered", store.Pending())}, nil
			},
		},
		{
			Name:  "scripts",
			Usage: "scripts",
			Help:  "list lua-defined commands",
			Run: func(args []string) ([]string, error) {
				names := lua.Commands()
				if len(names) == 0 {
					return []string{"no lua commands loaded"}, nil
				}
				sort.Strings(names)
				return names, nil
			},
		},
		{
			Name:  "reload",
			Usage: "reload",
			Help:  "reload lua command scripts",
			Run: func(args []string) ([]string, error) {
				if err := lua.Reload(); err != nil {
					return nil, err
				}
				return []string{fmt.Sprintf("scripts reloaded, %d lua commands", len(lua.Commands()))}, nil
			},
		},
	}

	for _, cmd := range commands {
		if err := cons.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// parseEntityID accepts "index" or "index:generation". A bare index gets
// generation 0, which is right for never-recycled entities.
func parseEntityID(s string) (ecs.EntityID, error) {
	var index, generation uint32
	if _, err := fmt.Sscanf(s, "%d:%d", &index, &generation); err != nil {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("bad entity id %q", s)
		}
		index = uint32(n)
	}
	return ecs.NewEntityID(index, generation), nil
}
