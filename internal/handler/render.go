package handler

import (
	"github.com/corvid/corvid/internal/net"
	"github.com/corvid/corvid/internal/net/packet"
	"github.com/corvid/corvid/internal/render"
)

// Toggle actions for C_OPCODE_RENDER_TOGGLE.
const (
	toggleOff  byte = 0
	toggleOn   byte = 1
	toggleFlip byte = 2
)

// HandleRenderStats processes C_OPCODE_RENDER_STATS.
func HandleRenderStats(sess *net.Session, r *packet.Reader, deps *Deps) {
	stats, frame := deps.RenderStats.Snapshot()

	w := packet.NewWriterWithOpcode(packet.S_OPCODE_RENDER_STATS)
	w.WriteQ(frame)
	w.WriteD(int32(stats.DrawCalls))
	w.WriteD(int32(stats.Triangles))
	w.WriteD(int32(stats.TextureBinds))
	w.WriteD(int32(stats.ShaderSwitches))
	w.WriteD(int32(stats.EntitiesVisible))
	w.WriteD(int32(stats.EntitiesCulled))

	states := deps.Toggles.States()
	for _, name := range []string{"wireframe", "overdraw", "bounds"} {
		if states[name] {
			w.WriteC(1)
		} else {
			w.WriteC(0)
		}
	}
	sess.Send(w.Bytes())
}

// HandleRenderAssets processes C_OPCODE_RENDER_ASSETS.
// Format: [opcode][kind filter\0]. An empty kind lists everything.
func HandleRenderAssets(sess *net.Session, r *packet.Reader, deps *Deps) {
	kind := render.AssetKind(r.ReadS())
	assets := deps.Assets.List(kind)

	w := packet.NewWriterWithOpcode(packet.S_OPCODE_ASSET_LIST)
	w.WriteH(uint16(len(assets)))
	for _, a := range assets {
		w.WriteS(string(a.Kind))
		w.WriteS(a.Name)
		w.WriteQ(uint64(a.Size))
		w.WriteD(int32(a.Refs))
	}
	sess.Send(w.Bytes())
}

// HandleRenderToggle processes C_OPCODE_RENDER_TOGGLE.
// Format: [opcode][action byte][toggle name\0]
func HandleRenderToggle(sess *net.Session, r *packet.Reader, deps *Deps) {
	action := r.ReadC()
	name := r.ReadS()

	var (
		on  bool
		err error
	)
	switch action {
	case toggleOff:
		on, err = deps.Toggles.Set(name, false)
	case toggleOn:
		on, err = deps.Toggles.Set(name, true)
	case toggleFlip:
		on, err = deps.Toggles.Flip(name)
	default:
		sendError(sess, "unknown toggle action")
		return
	}
	if err != nil {
		sendError(sess, err.Error())
		return
	}

	state := "off"
	if on {
		state = "on"
	}
	sendText(sess, []string{name + " = " + state})
}
