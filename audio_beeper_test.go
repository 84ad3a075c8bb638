//go:build !headless

// audio_beeper_test.go - Blip synthesis tests without an audio device

package main

import (
	"encoding/binary"
	"math"
	"testing"
)

// testBeeper builds a Beeper around its queue and synth only, skipping the
// device context so tests run on machines with no audio output.
func testBeeper() *Beeper {
	return &Beeper{
		queue:     make(chan blip, BEEP_QUEUE_DEPTH),
		sampleBuf: make([]float32, 256),
	}
}

func sampleAt(t testing.TB, p []byte, i int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestBeeper_MuteDropsRequests(t *testing.T) {
	b := testBeeper()
	b.SetMuted(true)
	b.Bump()
	b.Blip()
	if n := len(b.queue); n != 0 {
		t.Fatalf("muted beeper queued %d blips", n)
	}
	if !b.IsMuted() {
		t.Fatal("IsMuted lost the state")
	}
	if b.ToggleMute() {
		t.Fatal("ToggleMute off still reports muted")
	}
	b.Bump()
	if len(b.queue) != 1 {
		t.Fatal("unmuted beeper dropped the blip")
	}
}

func TestBeeper_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	b := testBeeper()
	for i := 0; i < BEEP_QUEUE_DEPTH+5; i++ {
		b.Bump()
	}
	if n := len(b.queue); n != BEEP_QUEUE_DEPTH {
		t.Fatalf("queue holds %d, want %d", n, BEEP_QUEUE_DEPTH)
	}
}

func TestBeeper_BlipShapes(t *testing.T) {
	b := testBeeper()
	b.Bump()
	low := <-b.queue
	if low.freq != 90 || low.samples != BEEP_SAMPLE_RATE/22 {
		t.Fatalf("bump = %+v", low)
	}
	b.Blip()
	high := <-b.queue
	if high.freq != 880 || high.samples != BEEP_SAMPLE_RATE/30 {
		t.Fatalf("blip = %+v", high)
	}
	if low.freq >= high.freq {
		t.Fatal("bump must sit below blip")
	}
}

func TestBeeper_ReadSilenceWhenIdle(t *testing.T) {
	b := testBeeper()
	p := make([]byte, 64)
	p[0] = 0xAA
	n, err := b.Read(p)
	if err != nil || n != len(p) {
		t.Fatalf("Read = %d, %v", n, err)
	}
	for i, v := range p {
		if v != 0 {
			t.Fatalf("idle sample byte %d = %#x", i, v)
		}
	}
}

func TestBeeper_ReadEnvelopeDecaysToSilence(t *testing.T) {
	b := testBeeper()
	// One full period at this rate is exactly the blip length.
	b.enqueue(blip{freq: 441, samples: 100})

	p := make([]byte, 100*4)
	if n, err := b.Read(p); err != nil || n != len(p) {
		t.Fatalf("Read = %d, %v", n, err)
	}

	first := sampleAt(t, p, 0)
	if math.Abs(float64(first)-BEEP_AMPLITUDE) > 1e-6 {
		t.Fatalf("first sample = %v, want %v", first, BEEP_AMPLITUDE)
	}
	if q1 := sampleAt(t, p, 25); q1 <= 0 {
		t.Fatalf("first half of the square = %v, want positive", q1)
	}
	if q3 := sampleAt(t, p, 75); q3 >= 0 {
		t.Fatalf("second half of the square = %v, want negative", q3)
	}
	mid := sampleAt(t, p, 50)
	last := sampleAt(t, p, 99)
	if abs32(mid) >= abs32(first) || abs32(last) >= abs32(mid) {
		t.Fatalf("envelope not decaying: %v %v %v", first, mid, last)
	}

	// The blip is spent; the next pull is silence again.
	if _, err := b.Read(p[:16]); err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i := 0; i < 4; i++ {
		if s := sampleAt(t, p, i); s != 0 {
			t.Fatalf("tail sample %d = %v", i, s)
		}
	}
}
