// video_interface.go - Display host interface for the comparison demo

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

import "fmt"

// VideoError provides detailed error context for display operations
type VideoError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Operation, e.Details)
}

func (e *VideoError) Unwrap() error {
	return e.Err
}

// DisplayConfig contains host-independent presentation settings
type DisplayConfig struct {
	Width  int // frame width in pixels
	Height int // frame height in pixels
	Scale  int // integer upscale for windowed output
	Title  string
}

// InputState is one sample of the demo controls. MoveDir and RotateDir are
// held-key state; the remaining fields are one-shot events that clear on
// read.
type InputState struct {
	MoveDir    int // +1 forward, -1 back
	RotateDir  int // +1 right, -1 left
	Quit       bool
	Snapshot   bool
	CopyPose   bool
	ToggleMute bool
	ResetPose  bool
}

// VideoOutput is the minimal host surface the demo loop drives. Frames are
// 32-bit ABGR pixels, Width*Height of them, row-major.
type VideoOutput interface {
	// Lifecycle management
	Start() error
	Stop() error
	Close() error
	IsStarted() bool

	// Core display operations
	SetDisplayConfig(config DisplayConfig) error
	GetDisplayConfig() DisplayConfig
	UpdateFrame(pixels []uint32) error

	// Input and pacing
	InputState() InputState
	GetFrameCount() uint64
}

// Optional interfaces for enhanced functionality
type ClipboardCapable interface {
	CopyText(s string) bool
}

type StatusCapable interface {
	SetStatusText(s string)
}

// Predefined video backend types
const (
	VIDEO_BACKEND_EBITEN   = iota // windowed side-by-side host
	VIDEO_BACKEND_TERMINAL        // ANSI half-block host on stdout
	VIDEO_BACKEND_HEADLESS        // frame sink for tests and smoke runs
)

// NewVideoOutput creates a display host of the requested type.
func NewVideoOutput(backend int) (VideoOutput, error) {
	switch backend {
	case VIDEO_BACKEND_EBITEN:
		return NewEbitenOutput()
	case VIDEO_BACKEND_TERMINAL:
		return NewTerminalOutput()
	case VIDEO_BACKEND_HEADLESS:
		return NewHeadlessOutput()
	default:
		return nil, &VideoError{
			Operation: "initialization",
			Details:   fmt.Sprintf("unsupported backend type: %d", backend),
		}
	}
}
