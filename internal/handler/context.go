package handler

import (
	"go.uber.org/zap"

	"github.com/corvid/corvid/internal/config"
	"github.com/corvid/corvid/internal/console"
	"github.com/corvid/corvid/internal/core/ecs"
	"github.com/corvid/corvid/internal/inspector"
	"github.com/corvid/corvid/internal/net"
	"github.com/corvid/corvid/internal/net/packet"
	"github.com/corvid/corvid/internal/overlay"
	"github.com/corvid/corvid/internal/profiler"
	"github.com/corvid/corvid/internal/render"
)

// Deps holds shared dependencies injected into all packet handlers.
type Deps struct {
	Config      *config.Config
	Log         *zap.Logger
	World       *ecs.World
	Profiler    *profiler.Profiler
	Capturer    *profiler.Capturer
	Inspector   *inspector.Inspector
	Console     *console.Console
	Overlay     *overlay.Context
	Assets      *render.AssetRegistry
	RenderStats *render.StatsCollector
	Toggles     *render.Toggles
}

// RegisterAll registers all packet handlers into the registry.
func RegisterAll(reg *packet.Registry, deps *Deps) {
	// Handshake phase: only auth is served.
	reg.Register(packet.C_OPCODE_AUTH,
		[]packet.SessionState{packet.StateHandshake},
		func(sess any, r *packet.Reader) {
			HandleAuth(sess.(*net.Session), r, deps)
		},
	)

	authed := []packet.SessionState{packet.StateAuthenticated}

	reg.Register(packet.C_OPCODE_PING, authed,
		func(sess any, r *packet.Reader) {
			HandlePing(sess.(*net.Session), r, deps)
		},
	)
	reg.Register(packet.C_OPCODE_QUIT,
		[]packet.SessionState{packet.StateHandshake, packet.StateAuthenticated},
		func(sess any, r *packet.Reader) {
			sess.(*net.Session).Close()
		},
	)
	reg.Register(packet.C_OPCODE_MODULES, authed,
		func(sess any, r *packet.Reader) {
			HandleModules(sess.(*net.Session), r, deps)
		},
	)
	reg.Register(packet.C_OPCODE_EXEC, authed,
		func(sess any, r *packet.Reader) {
			HandleExec(sess.(*net.Session), r, deps)
		},
	)

	reg.Register(packet.C_OPCODE_PROF_SUMMARY, authed,
		func(sess any, r *packet.Reader) {
			HandleProfSummary(sess.(*net.Session), r, deps)
		},
	)
	reg.Register(packet.C_OPCODE_PROF_MONITOR, authed,
		func(sess any, r *packet.Reader) {
			HandleProfMonitor(sess.(*net.Session), r, deps)
		},
	)
	reg.Register(packet.C_OPCODE_CAPTURE, authed,
		func(sess any, r *packet.Reader) {
			HandleCapture(sess.(*net.Session), r, deps)
		},
	)

	reg.Register(packet.C_OPCODE_ENTITY_LIST, authed,
		func(sess any, r *packet.Reader) {
			HandleEntityList(sess.(*net.Session), r, deps)
		},
	)
	reg.Register(packet.C_OPCODE_ENTITY_DETAIL, authed,
		func(sess any, r *packet.Reader) {
			HandleEntityDetail(sess.(*net.Session), r, deps)
		},
	)
	reg.Register(packet.C_OPCODE_COMPONENTS, authed,
		func(sess any, r *packet.Reader) {
			HandleComponents(sess.(*net.Session), r, deps)
		},
	)
	reg.Register(packet.C_OPCODE_RESOURCES, authed,
		func(sess any, r *packet.Reader) {
			HandleResources(sess.(*net.Session), r, deps)
		},
	)
	reg.Register(packet.C_OPCODE_EVENTS, authed,
		func(sess any, r *packet.Reader) {
			HandleEvents(sess.(*net.Session), r, deps)
		},
	)

	reg.Register(packet.C_OPCODE_RENDER_STATS, authed,
		func(sess any, r *packet.Reader) {
			HandleRenderStats(sess.(*net.Session), r, deps)
		},
	)
	reg.Register(packet.C_OPCODE_RENDER_ASSETS, authed,
		func(sess any, r *packet.Reader) {
			HandleRenderAssets(sess.(*net.Session), r, deps)
		},
	)
	reg.Register(packet.C_OPCODE_RENDER_TOGGLE, authed,
		func(sess any, r *packet.Reader) {
			HandleRenderToggle(sess.(*net.Session), r, deps)
		},
	)
}

// sendText sends output lines to the client as one TEXT packet.
func sendText(sess *net.Session, lines []string) {
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_TEXT)
	w.WriteH(uint16(len(lines)))
	for _, line := range lines {
		w.WriteS(line)
	}
	sess.Send(w.Bytes())
}

// sendError sends an error message to the client.
func sendError(sess *net.Session, msg string) {
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_ERROR)
	w.WriteS(msg)
	sess.Send(w.Bytes())
}
