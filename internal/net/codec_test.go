package net

import (
	"bytes"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte{0x01, 0xAA, 0xBB, 0xCC}
	if err := WriteFrame(&buf, payload); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if buf.Len() != len(payload)+2 {
		t.Errorf("frame size = %d, want %d", buf.Len(), len(payload)+2)
	}

	got, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload = %v, want %v", got, payload)
	}
}

func TestReadFrameInvalidLength(t *testing.T) {
	// Length 2 means an empty payload, which is invalid.
	if _, err := ReadFrame(bytes.NewReader([]byte{0x02, 0x00})); err == nil {
		t.Error("expected error for zero payload")
	}
	// Length 1 is below the header size.
	if _, err := ReadFrame(bytes.NewReader([]byte{0x01, 0x00})); err == nil {
		t.Error("expected error for undersized frame")
	}
}

func TestReadFrameTruncated(t *testing.T) {
	// Header promises 8 bytes of payload but only 2 arrive.
	if _, err := ReadFrame(bytes.NewReader([]byte{0x0A, 0x00, 0x01, 0x02})); err == nil {
		t.Error("expected error for truncated payload")
	}
	if _, err := ReadFrame(bytes.NewReader(nil)); err == nil {
		t.Error("expected error for empty stream")
	}
}
