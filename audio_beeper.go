//go:build !headless

// audio_beeper.go - square-wave movement blips through oto v3

/*
 ██▀███  ▓█████ ▄▄▄█████▓ ██▀███   ▒█████      ██▀███   ▄▄▄      ▓██   ██▓
▓██ ▒ ██▒▓█   ▀ ▓  ██▒ ▓▒▓██ ▒ ██▒▒██▒  ██▒   ▓██ ▒ ██▒▒████▄     ▒██  ██▒
▓██ ░▄█ ▒▒███   ▒ ▓██░ ▒░▓██ ░▄█ ▒▒██░  ██▒   ▓██ ░▄█ ▒▒██  ▀█▄    ▒██ ██░
▒██▀▀█▄  ▒▓█  ▄ ░ ▓██▓ ░ ▒██▀▀█▄  ▒██   ██░   ▒██▀▀█▄  ░██▄▄▄▄██   ░ ▐██▓░
░██▓ ▒██▒░▒████▒  ▒██▒ ░ ░██▓ ▒██▒░ ████▓▒░   ░██▓ ▒██▒ ▓█   ▓██▒  ░ ██▒▓░
░ ▒▓ ░▒▓░░░ ▒░ ░  ▒ ░░   ░ ▒▓ ░▒▓░░ ▒░▒░▒░    ░ ▒▓ ░▒▓░ ▒▒   ▓▒█░   ██▒▒▒
  ░▒ ░ ▒░ ░ ░  ░    ░      ░▒ ░ ▒░  ░ ▒ ▒░      ░▒ ░ ▒░  ▒   ▒▒ ░ ▓██ ░▒░
  ░░   ░    ░     ░        ░░   ░ ░ ░ ░ ▒       ░░   ░   ░   ▒    ▒ ▒ ░░
   ░        ░  ░            ░         ░ ░        ░           ░  ░ ░ ░
                                                                  ░ ░

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/RetroRay
License: GPLv3 or later
*/

package main

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

const (
	BEEP_SAMPLE_RATE = 44100
	BEEP_QUEUE_DEPTH = 8
	BEEP_AMPLITUDE   = 0.25
)

func init() {
	compiledFeatures = append(compiledFeatures, "audio:oto")
}

type blip struct {
	freq    float32
	samples int
}

// Beeper plays short square-wave blips on demand. Samples are pulled by
// oto through Read, so the demo loop never blocks on audio. Requests are
// queued; when the queue is full new blips are dropped rather than
// delaying the caller.
type Beeper struct {
	ctx       *oto.Context
	player    *oto.Player
	queue     chan blip
	muted     atomic.Bool
	sampleBuf []float32
	cur       blip
	remaining int
	phase     float32
	started   bool
	mutex     sync.Mutex
}

func NewBeeper() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   BEEP_SAMPLE_RATE,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &Beeper{
		ctx:       ctx,
		queue:     make(chan blip, BEEP_QUEUE_DEPTH),
		sampleBuf: make([]float32, 4096),
	}, nil
}

// Bump is the low thud for walking into a wall.
func (b *Beeper) Bump() {
	b.enqueue(blip{freq: 90, samples: BEEP_SAMPLE_RATE / 22})
}

// Blip is the high confirm for snapshots and pose copies.
func (b *Beeper) Blip() {
	b.enqueue(blip{freq: 880, samples: BEEP_SAMPLE_RATE / 30})
}

func (b *Beeper) enqueue(bl blip) {
	if b.muted.Load() {
		return
	}
	select {
	case b.queue <- bl:
	default:
	}
}

// ToggleMute flips the mute state and reports the new value.
func (b *Beeper) ToggleMute() bool {
	muted := !b.muted.Load()
	b.muted.Store(muted)
	return muted
}

func (b *Beeper) SetMuted(muted bool) {
	b.muted.Store(muted)
}

func (b *Beeper) IsMuted() bool {
	return b.muted.Load()
}

// Read generates samples for oto. A decaying square wave per blip keeps
// the envelope click-free without a real ADSR.
func (b *Beeper) Read(p []byte) (n int, err error) {
	numSamples := len(p) / 4
	if numSamples == 0 {
		return 0, nil
	}
	if len(b.sampleBuf) < numSamples {
		b.sampleBuf = make([]float32, numSamples)
	}
	samples := b.sampleBuf[:numSamples]

	for i := 0; i < numSamples; i++ {
		if b.remaining == 0 {
			select {
			case b.cur = <-b.queue:
				b.remaining = b.cur.samples
				b.phase = 0
			default:
				samples[i] = 0
				continue
			}
		}
		level := BEEP_AMPLITUDE * float32(b.remaining) / float32(b.cur.samples)
		if b.phase >= 0.5 {
			level = -level
		}
		samples[i] = level
		b.phase += b.cur.freq / BEEP_SAMPLE_RATE
		if b.phase >= 1 {
			b.phase -= 1
		}
		b.remaining--
	}

	copy(p, (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[:len(p)])
	return len(p), nil
}

func (b *Beeper) Start() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if !b.started {
		if b.player == nil {
			b.player = b.ctx.NewPlayer(b)
		}
		b.player.Play()
		b.started = true
	}
}

func (b *Beeper) Stop() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.started && b.player != nil {
		b.player.Close()
		b.started = false
	}
}

func (b *Beeper) Close() {
	b.Stop()
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.player != nil {
		b.player.Close()
		b.player = nil
	}
}

func (b *Beeper) IsStarted() bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.started
}
