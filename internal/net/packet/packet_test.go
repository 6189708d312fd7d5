package packet

import (
	"testing"

	"go.uber.org/zap"
)

func TestReaderWriterRoundTrip(t *testing.T) {
	w := NewWriterWithOpcode(S_OPCODE_TEXT)
	w.WriteC(3)
	w.WriteH(700)
	w.WriteD(-42)
	w.WriteQ(1<<40 | 7)
	w.WriteS("骷髏王 boss")
	w.WriteS("")

	r := NewReader(w.Bytes())
	if r.Opcode() != S_OPCODE_TEXT {
		t.Errorf("opcode = %d", r.Opcode())
	}
	if v := r.ReadC(); v != 3 {
		t.Errorf("ReadC = %d", v)
	}
	if v := r.ReadH(); v != 700 {
		t.Errorf("ReadH = %d", v)
	}
	if v := r.ReadD(); v != -42 {
		t.Errorf("ReadD = %d", v)
	}
	if v := r.ReadQ(); v != 1<<40|7 {
		t.Errorf("ReadQ = %d", v)
	}
	if s := r.ReadS(); s != "骷髏王 boss" {
		t.Errorf("ReadS = %q", s)
	}
	if s := r.ReadS(); s != "" {
		t.Errorf("empty ReadS = %q", s)
	}
	if r.Remaining() != 0 {
		t.Errorf("remaining = %d", r.Remaining())
	}
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader([]byte{C_OPCODE_PING, 0x01})
	if v := r.ReadD(); v != 0 {
		t.Errorf("truncated ReadD = %d, want 0", v)
	}
	if v := r.ReadC(); v != 1 {
		t.Errorf("ReadC after failed ReadD = %d", v)
	}
	// Unterminated string returns what is there.
	r2 := NewReader([]byte{C_OPCODE_EXEC, 'h', 'i'})
	if s := r2.ReadS(); s != "hi" {
		t.Errorf("unterminated ReadS = %q", s)
	}
}

func TestRegistryStateGating(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	calls := 0
	reg.Register(C_OPCODE_EXEC, []SessionState{StateAuthenticated}, func(sess any, r *Reader) {
		calls++
	})

	data := []byte{C_OPCODE_EXEC}
	if err := reg.Dispatch(nil, StateHandshake, data); err == nil {
		t.Error("expected state gate rejection")
	}
	if calls != 0 {
		t.Error("handler ran despite gate")
	}

	if err := reg.Dispatch(nil, StateAuthenticated, data); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d", calls)
	}

	// Unknown opcodes are ignored without error.
	if err := reg.Dispatch(nil, StateAuthenticated, []byte{0x7F}); err != nil {
		t.Errorf("unknown opcode: %v", err)
	}
	if err := reg.Dispatch(nil, StateAuthenticated, nil); err == nil {
		t.Error("expected error for empty packet")
	}
}

func TestRegistryPanicRecovery(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	reg.Register(C_OPCODE_PING, []SessionState{StateHandshake}, func(sess any, r *Reader) {
		panic("bad handler")
	})
	if err := reg.Dispatch(nil, StateHandshake, []byte{C_OPCODE_PING}); err == nil {
		t.Error("expected panic to surface as error")
	}
}
