package handler

import (
	"github.com/corvid/corvid/internal/net"
	"github.com/corvid/corvid/internal/net/packet"
)

// Capture actions for C_OPCODE_CAPTURE.
const (
	captureStart  byte = 1
	captureStop   byte = 2
	captureStatus byte = 3
)

// HandleProfSummary processes C_OPCODE_PROF_SUMMARY.
// Durations travel as microseconds in Q fields.
func HandleProfSummary(sess *net.Session, r *packet.Reader, deps *Deps) {
	stats := deps.Profiler.Summary(deps.Config.Profiler.Percentile)

	w := packet.NewWriterWithOpcode(packet.S_OPCODE_PROF_SUMMARY)
	w.WriteQ(deps.Profiler.Frame())
	w.WriteH(uint16(len(stats)))
	for _, m := range stats {
		w.WriteS(m.Name)
		w.WriteD(int32(m.Snaps))
		w.WriteQ(uint64(m.Latest.Microseconds()))
		w.WriteQ(uint64(m.Average.Microseconds()))
		w.WriteQ(uint64(m.Tail.Microseconds()))
		w.WriteQ(uint64(m.Max.Microseconds()))
	}
	sess.Send(w.Bytes())
}

// HandleProfMonitor processes C_OPCODE_PROF_MONITOR, dumping one monitor's
// retained history.
// Format: [opcode][monitor name\0]
func HandleProfMonitor(sess *net.Session, r *packet.Reader, deps *Deps) {
	name := r.ReadS()
	m, ok := deps.Profiler.Lookup(name)
	if !ok {
		sendError(sess, "unknown monitor "+name)
		return
	}

	snaps := m.Snaps()
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_PROF_MONITOR)
	w.WriteS(name)
	w.WriteH(uint16(len(snaps)))
	for _, s := range snaps {
		w.WriteQ(uint64(s.Duration.Microseconds()))
	}
	sess.Send(w.Bytes())
}

// HandleCapture processes C_OPCODE_CAPTURE, driving pprof captures.
// Format: [opcode][action byte][mode\0]
func HandleCapture(sess *net.Session, r *packet.Reader, deps *Deps) {
	action := r.ReadC()
	mode := r.ReadS()

	switch action {
	case captureStart:
		dir, err := deps.Capturer.Start(mode)
		if err != nil {
			sendError(sess, err.Error())
			return
		}
		sendCaptureState(sess, deps, dir)
	case captureStop:
		if _, err := deps.Capturer.Stop(); err != nil {
			sendError(sess, err.Error())
			return
		}
		sendCaptureState(sess, deps, "")
	case captureStatus:
		sendCaptureState(sess, deps, "")
	default:
		sendError(sess, "unknown capture action")
	}
}

func sendCaptureState(sess *net.Session, deps *Deps, dir string) {
	mode, running := deps.Capturer.Running()
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_CAPTURE_STATE)
	if running {
		w.WriteC(1)
	} else {
		w.WriteC(0)
	}
	w.WriteS(mode)
	w.WriteS(dir)
	sess.Send(w.Bytes())
}
