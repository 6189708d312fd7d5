package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/corvid/corvid/internal/component"
	"github.com/corvid/corvid/internal/config"
	"github.com/corvid/corvid/internal/console"
	"github.com/corvid/corvid/internal/core/ecs"
	"github.com/corvid/corvid/internal/core/event"
	coresys "github.com/corvid/corvid/internal/core/system"
	"github.com/corvid/corvid/internal/data"
	"github.com/corvid/corvid/internal/handler"
	"github.com/corvid/corvid/internal/inspector"
	gonet "github.com/corvid/corvid/internal/net"
	"github.com/corvid/corvid/internal/net/packet"
	"github.com/corvid/corvid/internal/overlay"
	"github.com/corvid/corvid/internal/profiler"
	"github.com/corvid/corvid/internal/render"
	"github.com/corvid/corvid/internal/scripting"
	"github.com/corvid/corvid/internal/system"
	"github.com/corvid/corvid/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(name, build string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              corvidd  " + build + "                \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m        ECS debug overlay server           \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mserver:\033[0m %s\n\n", name)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main server logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/corvid.toml"
	if p := os.Getenv("CORVID_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name, cfg.Server.Build)

	// 3. Optional telemetry database
	var store *telemetry.Store
	if cfg.Telemetry.Enabled {
		printSection("telemetry")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := telemetry.NewDB(ctx, cfg.Telemetry, log)
		if err != nil {
			cancel()
			return fmt.Errorf("telemetry db: %w", err)
		}
		defer db.Close()
		printOK("PostgreSQL connected")

		if err := telemetry.RunMigrations(ctx, db.Pool); err != nil {
			cancel()
			return fmt.Errorf("migrations: %w", err)
		}
		printOK("migrations applied")

		store = telemetry.NewStore(db, log)
		if err := store.StartSession(ctx, cfg.Server.Name, cfg.Server.Build, cfg.Server.StartTime); err != nil {
			cancel()
			return fmt.Errorf("telemetry session: %w", err)
		}
		cancel()
		fmt.Println()
	}

	// 4. Create ECS world, stores, event bus, profiler
	world := ecs.NewWorld()
	positions := ecs.RegisterStore[component.Position](world)
	velocities := ecs.RegisterStore[component.Velocity](world)
	healths := ecs.RegisterStore[component.Health](world)
	sprites := ecs.RegisterStore[component.Sprite](world)

	bus := event.NewBus()
	prof := profiler.New(cfg.Profiler.MaxSnaps)
	capturer := profiler.NewCapturer(cfg.Profiler.CaptureDir)

	// 5. Load scene and spawn the demo world
	printSection("scene")

	scene, err := data.LoadScene(cfg.Server.ScenePath)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	printStat("prototypes", len(scene.Prototypes))

	assets := render.NewAssetRegistry()
	spawned := spawnScene(world, scene, assets, positions, velocities, healths, sprites)
	printStat("entities", spawned)
	printStat("render assets", len(assets.List("")))
	fmt.Println()

	ecs.SetResource(world.Resources(), &scene.Bounds)

	renderStats := render.NewStatsCollector()
	toggles := render.NewToggles()
	insp := inspector.New(world, bus)

	// 6. Scripting engine for Lua console commands
	lua, err := scripting.NewEngine(cfg.Scripts.Dir, func() scripting.Context {
		return scripting.Context{
			ServerName: cfg.Server.Name,
			Build:      cfg.Server.Build,
			Frame:      prof.Frame(),
			Uptime:     time.Since(cfg.Server.StartTime),
			TickRate:   cfg.Network.TickRate,
			Entities:   world.Pool().Count(),
			Monitors:   prof.Summary(cfg.Profiler.Percentile),
		}
	}, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer lua.Close()

	// 7. Console with builtin commands, Lua as fallback
	cons := console.New()
	cons.SetFallback(lua)

	// 8. Overlay module registry
	overlayCtx := overlay.NewContext()
	for _, m := range []overlay.Module{
		overlay.NewAbout(cfg.Server.Name, cfg.Server.Build, cfg.Server.StartTime),
		overlay.NewProfilerModule(prof),
		overlay.NewInspectorModule(world),
		overlay.NewRenderModule(assets, renderStats, toggles),
	} {
		if err := overlayCtx.Register(m); err != nil {
			return fmt.Errorf("overlay: %w", err)
		}
	}

	// 9. Packet handlers
	deps := &handler.Deps{
		Config:      cfg,
		Log:         log,
		World:       world,
		Profiler:    prof,
		Capturer:    capturer,
		Inspector:   insp,
		Console:     cons,
		Overlay:     overlayCtx,
		Assets:      assets,
		RenderStats: renderStats,
		Toggles:     toggles,
	}
	if err := registerBuiltinCommands(cons, deps, lua, overlayCtx, store); err != nil {
		return fmt.Errorf("console commands: %w", err)
	}

	pktReg := packet.NewRegistry(log)
	handler.RegisterAll(pktReg, deps)

	// 10. Network server
	netServer, err := gonet.NewServer(cfg.Network.BindAddress, gonet.ServerOptions{
		InQueueSize:      cfg.Network.InQueueSize,
		OutQueueSize:     cfg.Network.OutQueueSize,
		PacketsPerSecond: cfg.Network.PacketsPerSecond,
		WriteTimeout:     cfg.Network.WriteTimeout,
		ServerName:       cfg.Server.Name,
		Build:            cfg.Server.Build,
	}, log)
	if err != nil {
		return fmt.Errorf("net server: %w", err)
	}
	go netServer.AcceptLoop()

	// 11. Systems
	sessions := gonet.NewSessionStore()
	runner := coresys.NewRunner()
	runner.AttachProfiler(prof)
	runner.Register(system.NewInputSystem(netServer, pktReg, sessions, cfg.Network.MaxPacketsPerTick, log))
	runner.Register(system.NewMovementSystem(positions, velocities, scene.Bounds, bus))
	runner.Register(system.NewDecaySystem(world, healths, bus))
	runner.Register(system.NewRenderSimSystem(sprites, positions, healths, renderStats, toggles))
	runner.Register(system.NewOutputSystem(sessions))
	runner.Register(system.NewTelemetrySystem(store, prof, cfg.Telemetry.FlushInterval, cfg.Profiler.Percentile, log))
	runner.Register(system.NewCleanupSystem(world))

	// 12. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Network.TickRate)
	defer ticker.Stop()

	printSection("server ready")
	printReady(fmt.Sprintf("listening on %s", netServer.Addr().String()))
	printReady(fmt.Sprintf("game loop started (tick: %s)", cfg.Network.TickRate))
	fmt.Println()

	frameMon := prof.Monitor("frame.total")
	for {
		select {
		case <-ticker.C:
			prof.NewFrame()
			stop := frameMon.Record()
			bus.SwapBuffers()
			bus.DispatchAll()
			runner.Tick(cfg.Network.TickRate)
			overlayCtx.Update(cfg.Network.TickRate)
			stop()

		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			netServer.Shutdown()
			if store != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				if err := store.Flush(ctx); err != nil {
					log.Warn("final telemetry flush failed", zap.Error(err))
				}
				if err := store.EndSession(ctx); err != nil {
					log.Warn("telemetry session close failed", zap.Error(err))
				}
				cancel()
			}
			log.Info("server stopped")
			return nil
		}
	}
}

// spawnScene instantiates every prototype and tracks its render assets.
func spawnScene(
	world *ecs.World,
	scene *data.Scene,
	assets *render.AssetRegistry,
	positions *ecs.PtrComponentStore[component.Position],
	velocities *ecs.PtrComponentStore[component.Velocity],
	healths *ecs.PtrComponentStore[component.Health],
	sprites *ecs.PtrComponentStore[component.Sprite],
) int {
	spawned := 0
	for _, proto := range scene.Prototypes {
		if proto.Sprite != nil {
			// Plausible sizes: RGBA 256x256 textures, small material blobs.
			assets.Track(render.AssetTexture, proto.Sprite.Texture, 256*256*4)
			if proto.Sprite.Material != "" {
				assets.Track(render.AssetMaterial, proto.Sprite.Material, 4096)
			}
		}

		for i := 0; i < proto.Count; i++ {
			id := world.CreateEntity()
			spawned++

			if proto.Position != nil {
				// Spread copies on a small grid so they don't stack.
				positions.Set(id, &component.Position{
					X: proto.Position.X + float64(i%10)*8,
					Y: proto.Position.Y + float64(i/10)*8,
				})
			}
			if proto.Velocity != nil {
				velocities.Set(id, &component.Velocity{DX: proto.Velocity.DX, DY: proto.Velocity.DY})
			}
			if proto.Health != nil {
				healths.Set(id, &component.Health{
					Current: proto.Health.Max,
					Max:     proto.Health.Max,
					Decay:   proto.Health.Decay,
				})
			}
			if proto.Sprite != nil {
				sprites.Set(id, &component.Sprite{
					Texture:   proto.Sprite.Texture,
					Material:  proto.Sprite.Material,
					Triangles: proto.Sprite.Triangles,
					Visible:   true,
				})
				assets.Acquire(render.AssetTexture, proto.Sprite.Texture)
				if proto.Sprite.Material != "" {
					assets.Acquire(render.AssetMaterial, proto.Sprite.Material)
				}
			}
		}
	}
	return spawned
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
