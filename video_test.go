// video_test.go - Display host and input decode tests

package main

import (
	"errors"
	"testing"
)

func newHeadless(t testing.TB) *HeadlessOutput {
	t.Helper()
	out, err := NewVideoOutput(VIDEO_BACKEND_HEADLESS)
	if err != nil {
		t.Fatalf("NewVideoOutput: %v", err)
	}
	t.Cleanup(func() { _ = out.Close() })
	return out.(*HeadlessOutput)
}

func TestNewVideoOutput_UnknownBackend(t *testing.T) {
	_, err := NewVideoOutput(99)
	if err == nil {
		t.Fatal("expected an error for backend 99")
	}
	var vErr *VideoError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *VideoError", err)
	}
	if vErr.Operation != "initialization" {
		t.Fatalf("operation = %q", vErr.Operation)
	}
}

func TestVideoError_Messages(t *testing.T) {
	base := errors.New("socket gone")
	err := &VideoError{Operation: "start", Details: "display", Err: base}
	if !errors.Is(err, base) {
		t.Fatal("wrapped error lost")
	}
	if got := err.Error(); got != "video start failed: display: socket gone" {
		t.Fatalf("message = %q", got)
	}
	bare := &VideoError{Operation: "update", Details: "no frame"}
	if got := bare.Error(); got != "video update failed: no frame" {
		t.Fatalf("message = %q", got)
	}
}

func TestHeadlessOutput_Lifecycle(t *testing.T) {
	h := newHeadless(t)
	if h.IsStarted() {
		t.Fatal("started before Start")
	}
	if err := h.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !h.IsStarted() {
		t.Fatal("not started after Start")
	}
	if err := h.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if h.IsStarted() {
		t.Fatal("still started after Stop")
	}
}

func TestHeadlessOutput_DefaultConfig(t *testing.T) {
	h := newHeadless(t)
	cfg := h.GetDisplayConfig()
	if cfg.Width != COMPOSITE_WIDTH || cfg.Height != SCREEN_HEIGHT || cfg.Scale != 1 {
		t.Fatalf("default config = %+v", cfg)
	}
}

func TestHeadlessOutput_FrameReadBack(t *testing.T) {
	h := newHeadless(t)
	if h.LastFrame() != nil {
		t.Fatal("frame before any update")
	}

	frame := make([]uint32, COMPOSITE_WIDTH*SCREEN_HEIGHT)
	frame[0] = 0xFF123456
	frame[len(frame)-1] = 0xFF654321
	if err := h.UpdateFrame(frame); err != nil {
		t.Fatalf("UpdateFrame: %v", err)
	}
	if got := h.GetFrameCount(); got != 1 {
		t.Fatalf("frame count = %d, want 1", got)
	}

	back := h.LastFrame()
	if back[0] != 0xFF123456 || back[len(back)-1] != 0xFF654321 {
		t.Fatal("read back frame differs")
	}

	// The copy must be detached from the host's buffer.
	back[0] = 0
	if h.LastFrame()[0] != 0xFF123456 {
		t.Fatal("LastFrame aliases the internal buffer")
	}
}

func TestHeadlessOutput_SetDisplayConfigDropsFrame(t *testing.T) {
	h := newHeadless(t)
	_ = h.UpdateFrame(make([]uint32, 8))
	if err := h.SetDisplayConfig(DisplayConfig{Width: 4, Height: 2, Scale: 1}); err != nil {
		t.Fatalf("SetDisplayConfig: %v", err)
	}
	if h.LastFrame() != nil {
		t.Fatal("stale frame survived a config change")
	}
}

func TestHeadlessOutput_QueuedInputDrains(t *testing.T) {
	h := newHeadless(t)
	h.QueueInput(
		InputState{MoveDir: 1},
		InputState{RotateDir: -1, Snapshot: true},
	)
	if s := h.InputState(); s.MoveDir != 1 {
		t.Fatalf("first sample = %+v", s)
	}
	if s := h.InputState(); s.RotateDir != -1 || !s.Snapshot {
		t.Fatalf("second sample = %+v", s)
	}
	if s := h.InputState(); s != (InputState{}) {
		t.Fatalf("drained queue returned %+v", s)
	}
}
