//go:build headless

package main

func init() {
	compiledFeatures = append(compiledFeatures, "audio:silent")
}

// Beeper is silent in headless builds. The demo loop and tests use the
// same API either way.
type Beeper struct {
	started bool
	muted   bool
}

func NewBeeper() (*Beeper, error) {
	return &Beeper{}, nil
}

func (b *Beeper) Bump() {}
func (b *Beeper) Blip() {}

func (b *Beeper) ToggleMute() bool {
	b.muted = !b.muted
	return b.muted
}

func (b *Beeper) IsMuted() bool { return b.muted }

func (b *Beeper) SetMuted(muted bool) { b.muted = muted }

func (b *Beeper) Start() { b.started = true }
func (b *Beeper) Stop()  { b.started = false }
func (b *Beeper) Close() { b.started = false }

func (b *Beeper) IsStarted() bool { return b.started }
