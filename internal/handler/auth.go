package handler

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/corvid/corvid/internal/net"
	"github.com/corvid/corvid/internal/net/packet"
)

const (
	authOK        byte = 0
	authWrongPass byte = 1
)

// HandleAuth processes C_OPCODE_AUTH.
// Format: [opcode][client name\0][password\0]
// An empty configured auth hash means open access; the password is ignored.
func HandleAuth(sess *net.Session, r *packet.Reader, deps *Deps) {
	clientName := r.ReadS()
	password := r.ReadS()

	hash := deps.Config.Network.AuthHash
	if hash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
			deps.Log.Warn("auth rejected",
				zap.Uint64("session", sess.ID),
				zap.String("ip", sess.IP),
			)
			w := packet.NewWriterWithOpcode(packet.S_OPCODE_AUTH_RESULT)
			w.WriteC(authWrongPass)
			sess.SendAndClose(w.Bytes())
			return
		}
	}

	sess.SetState(packet.StateAuthenticated)
	deps.Log.Info("console client authenticated",
		zap.Uint64("session", sess.ID),
		zap.String("client", clientName),
	)
	sendAuthResult(sess, authOK)
}

func sendAuthResult(sess *net.Session, code byte) {
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_AUTH_RESULT)
	w.WriteC(code)
	sess.Send(w.Bytes())
}

// HandlePing processes C_OPCODE_PING.
// Format: [opcode][8B nonce], echoed back with the current frame number.
func HandlePing(sess *net.Session, r *packet.Reader, deps *Deps) {
	nonce := r.ReadQ()
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_PONG)
	w.WriteQ(nonce)
	w.WriteQ(deps.Profiler.Frame())
	sess.Send(w.Bytes())
}
