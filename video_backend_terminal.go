//go:build !windows

// video_backend_terminal.go - ANSI half-block host on a raw terminal

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
	"bytes"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/term"
)

// How long a decoded arrow keeps its direction alive. Raw terminals only
// report key-down autorepeats, never releases.
const termHoldWindow = 200 * time.Millisecond

// Repaints are capped so a fast demo loop does not flood slow terminals.
const termPaintInterval = 50 * time.Millisecond

// TerminalOutput paints frames as truecolor half blocks on stdout and
// decodes raw stdin into demo input. One character cell carries two
// vertically stacked pixels via the upper half block glyph.
type TerminalOutput struct {
	mu           sync.Mutex
	started      bool
	config       DisplayConfig
	fd           int
	oldTermState *term.State
	nonblockSet  bool
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once

	pending     InputState
	moveDir     int
	rotateDir   int
	moveUntil   time.Time
	rotateUntil time.Time

	paint      bytes.Buffer
	lastPaint  time.Time
	frameCount uint64
}

func NewTerminalOutput() (VideoOutput, error) {
	return &TerminalOutput{
		config: DisplayConfig{
			Width:  COMPOSITE_WIDTH,
			Height: SCREEN_HEIGHT,
			Scale:  1,
		},
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}, nil
}

// Start puts the terminal in raw mode and begins the stdin reader. The
// demo loop keeps running on the caller's side; input arrives through
// InputState like any other host.
func (t *TerminalOutput) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return nil
	}
	t.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		return &VideoError{
			Operation: "start",
			Details:   "cannot set raw mode on stdin",
			Err:       err,
		}
	}
	t.oldTermState = oldState

	if err := syscall.SetNonblock(t.fd, true); err != nil {
		_ = term.Restore(t.fd, t.oldTermState)
		t.oldTermState = nil
		return &VideoError{
			Operation: "start",
			Details:   "cannot set nonblocking stdin",
			Err:       err,
		}
	}
	t.nonblockSet = true

	fmt.Print("\x1b[2J\x1b[?25l")
	t.started = true
	go t.readLoop()
	return nil
}

func (t *TerminalOutput) readLoop() {
	defer close(t.done)
	buf := make([]byte, 1)
	var esc []byte
	var escAt time.Time

	for {
		select {
		case <-t.stopCh:
			return
		default:
		}

		n, err := syscall.Read(t.fd, buf)
		if n > 0 {
			b := buf[0]
			switch {
			case len(esc) > 0:
				esc = append(esc, b)
				if len(esc) == 2 && b != '[' {
					esc = nil
					t.keyEvent(b)
				} else if len(esc) == 3 {
					t.arrowEvent(esc[2])
					esc = nil
				}
			case b == 0x1b:
				esc = append(esc, b)
				escAt = time.Now()
			default:
				t.keyEvent(b)
			}
			continue
		}
		// A lone escape with no continuation is the Escape key.
		if len(esc) == 1 && time.Since(escAt) > 50*time.Millisecond {
			esc = nil
			t.setQuit()
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK || n == 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
	}
}

func (t *TerminalOutput) arrowEvent(final byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	deadline := time.Now().Add(termHoldWindow)
	switch final {
	case 'A':
		t.moveDir, t.moveUntil = 1, deadline
	case 'B':
		t.moveDir, t.moveUntil = -1, deadline
	case 'C':
		t.rotateDir, t.rotateUntil = 1, deadline
	case 'D':
		t.rotateDir, t.rotateUntil = -1, deadline
	}
}

func (t *TerminalOutput) keyEvent(b byte) {
	switch b {
	case 'q', 0x03:
		t.setQuit()
	case 's':
		t.mu.Lock()
		t.pending.Snapshot = true
		t.mu.Unlock()
	case 'm':
		t.mu.Lock()
		t.pending.ToggleMute = true
		t.mu.Unlock()
	case 'r':
		t.mu.Lock()
		t.pending.ResetPose = true
		t.mu.Unlock()
	}
}

func (t *TerminalOutput) setQuit() {
	t.mu.Lock()
	t.pending.Quit = true
	t.mu.Unlock()
}

func (t *TerminalOutput) Stop() error {
	t.stopped.Do(func() {
		close(t.stopCh)
		select {
		case <-t.done:
		case <-time.After(time.Second):
		}
		t.mu.Lock()
		if t.nonblockSet {
			_ = syscall.SetNonblock(t.fd, false)
			t.nonblockSet = false
		}
		if t.oldTermState != nil {
			_ = term.Restore(t.fd, t.oldTermState)
			t.oldTermState = nil
		}
		t.started = false
		t.mu.Unlock()
		fmt.Print("\x1b[0m\x1b[?25h\n")
	})
	return nil
}

func (t *TerminalOutput) Close() error {
	return t.Stop()
}

func (t *TerminalOutput) IsStarted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started
}

func (t *TerminalOutput) SetDisplayConfig(config DisplayConfig) error {
	t.mu.Lock()
	t.config = config
	t.mu.Unlock()
	return nil
}

func (t *TerminalOutput) GetDisplayConfig() DisplayConfig {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.config
}

// UpdateFrame downsamples the frame into character cells and repaints.
func (t *TerminalOutput) UpdateFrame(pixels []uint32) error {
	atomic.AddUint64(&t.frameCount, 1)
	t.mu.Lock()
	defer t.mu.Unlock()
	if time.Since(t.lastPaint) < termPaintInterval {
		return nil
	}
	t.lastPaint = time.Now()

	srcW, srcH := t.config.Width, t.config.Height
	if srcW*srcH == 0 || len(pixels) < srcW*srcH {
		return nil
	}
	termW, _, err := term.GetSize(t.fd)
	if err != nil || termW <= 0 {
		termW = 80
	}
	step := (srcW + termW - 1) / termW
	if step < 1 {
		step = 1
	}
	cols := srcW / step
	rows := srcH / (2 * step)

	t.paint.Reset()
	t.paint.WriteString("\x1b[H")
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := pixels[(cy*2*step)*srcW+cx*step]
			bot := pixels[(cy*2*step+step)*srcW+cx*step]
			fmt.Fprintf(&t.paint, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				byte(top), byte(top>>8), byte(top>>16),
				byte(bot), byte(bot>>8), byte(bot>>16))
		}
		t.paint.WriteString("\x1b[0m\r\n")
	}
	_, _ = os.Stdout.Write(t.paint.Bytes())
	return nil
}

func (t *TerminalOutput) InputState() InputState {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	s := t.pending
	s.MoveDir, s.RotateDir = 0, 0
	if now.Before(t.moveUntil) {
		s.MoveDir = t.moveDir
	}
	if now.Before(t.rotateUntil) {
		s.RotateDir = t.rotateDir
	}
	t.pending.Quit = false
	t.pending.Snapshot = false
	t.pending.ToggleMute = false
	t.pending.ResetPose = false
	return s
}

func (t *TerminalOutput) GetFrameCount() uint64 {
	return atomic.LoadUint64(&t.frameCount)
}
