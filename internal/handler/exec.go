package handler

import (
	"go.uber.org/zap"

	"github.com/corvid/corvid/internal/net"
	"github.com/corvid/corvid/internal/net/packet"
)

// HandleExec processes C_OPCODE_EXEC, the console command path.
// Format: [opcode][command line\0]
func HandleExec(sess *net.Session, r *packet.Reader, deps *Deps) {
	line := r.ReadS()
	deps.Log.Debug("console exec",
		zap.Uint64("session", sess.ID),
		zap.String("line", line),
	)

	lines, err := deps.Console.Exec(line)
	if err != nil {
		sendError(sess, err.Error())
		return
	}
	sendText(sess, lines)
}

// HandleModules processes C_OPCODE_MODULES.
func HandleModules(sess *net.Session, r *packet.Reader, deps *Deps) {
	mods := deps.Overlay.Modules()
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_MODULE_LIST)
	w.WriteH(uint16(len(mods)))
	for _, m := range mods {
		w.WriteS(m.ID())
		w.WriteS(m.Title())
		w.WriteS(m.Description())
	}
	sess.Send(w.Bytes())
}
