// video_backend_headless.go - Frame sink for tests and smoke runs

package main

import (
	"sync"
	"sync/atomic"
)

// HeadlessOutput accepts frames and input like a real host but renders
// nothing. Smoke runs and tests read back the last frame.
type HeadlessOutput struct {
	mu         sync.Mutex
	started    bool
	config     DisplayConfig
	lastFrame  []uint32
	frameCount uint64

	queued []InputState
}

func NewHeadlessOutput() (VideoOutput, error) {
	return &HeadlessOutput{
		config: DisplayConfig{
			Width:  COMPOSITE_WIDTH,
			Height: SCREEN_HEIGHT,
			Scale:  1,
		},
	}, nil
}

func (h *HeadlessOutput) Start() error {
	h.mu.Lock()
	h.started = true
	h.mu.Unlock()
	return nil
}

func (h *HeadlessOutput) Stop() error {
	h.mu.Lock()
	h.started = false
	h.mu.Unlock()
	return nil
}

func (h *HeadlessOutput) Close() error {
	return h.Stop()
}

func (h *HeadlessOutput) IsStarted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.started
}

func (h *HeadlessOutput) SetDisplayConfig(config DisplayConfig) error {
	h.mu.Lock()
	h.config = config
	h.lastFrame = nil
	h.mu.Unlock()
	return nil
}

func (h *HeadlessOutput) GetDisplayConfig() DisplayConfig {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.config
}

func (h *HeadlessOutput) UpdateFrame(pixels []uint32) error {
	h.mu.Lock()
	if h.lastFrame == nil {
		h.lastFrame = make([]uint32, len(pixels))
	}
	copy(h.lastFrame, pixels)
	h.mu.Unlock()
	atomic.AddUint64(&h.frameCount, 1)
	return nil
}

// InputState pops the next queued sample, or an empty one.
func (h *HeadlessOutput) InputState() InputState {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.queued) == 0 {
		return InputState{}
	}
	s := h.queued[0]
	h.queued = h.queued[1:]
	return s
}

// QueueInput schedules input samples for upcoming frames.
func (h *HeadlessOutput) QueueInput(states ...InputState) {
	h.mu.Lock()
	h.queued = append(h.queued, states...)
	h.mu.Unlock()
}

func (h *HeadlessOutput) GetFrameCount() uint64 {
	return atomic.LoadUint64(&h.frameCount)
}

// LastFrame returns a copy of the most recent frame, or nil.
func (h *HeadlessOutput) LastFrame() []uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.lastFrame == nil {
		return nil
	}
	out := make([]uint32, len(h.lastFrame))
	copy(out, h.lastFrame)
	return out
}
