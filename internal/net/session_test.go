package net

import (
	"net"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newPipeSession(t *testing.T) (*Session, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return NewSession(server, 1, 16, 16, 0, time.Second, zap.NewNop()), client
}

func TestSendAndCloseDeliversBeforeShutdown(t *testing.T) {
	sess, client := newPipeSession(t)

	done := make(chan struct{})
	go func() {
		sess.SendAndClose([]byte{0x81, 0x01})
		close(done)
	}()

	payload, err := ReadFrame(client)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if payload[0] != 0x81 || payload[1] != 0x01 {
		t.Errorf("payload = %v", payload)
	}

	<-done
	if !sess.IsClosed() {
		t.Error("session should be closed after SendAndClose")
	}
	if _, err := ReadFrame(client); err == nil {
		t.Error("connection should be closed after the final packet")
	}
}

func TestSendAndCloseAfterClose(t *testing.T) {
	sess, _ := newPipeSession(t)
	sess.Close()
	// Must not block or panic on a dead connection.
	sess.SendAndClose([]byte{0x81, 0x01})
}

func TestFlushOutputBackpressure(t *testing.T) {
	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	sess := NewSession(server, 1, 1, 1, 0, time.Second, zap.NewNop())

	sess.Send([]byte{0x84, 0x01})
	sess.Send([]byte{0x84, 0x02})
	sess.FlushOutput()

	if !sess.IsClosed() {
		t.Error("overflowing the out queue should disconnect the session")
	}
}
