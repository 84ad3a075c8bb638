// raycaster.go - Tracer backend contract and factory

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

// RayCasterError provides detailed error context for tracer operations
type RayCasterError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *RayCasterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("raycaster %s: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("raycaster %s: %s", e.Operation, e.Details)
}

func (e *RayCasterError) Unwrap() error {
	return e.Err
}

// ColumnTrace is the result of tracing one screen column. ScreenY is the
// half height of the wall strip in pixels, never above HORIZON_HEIGHT.
// TextureNo selects the wall face shade: 1 for a hit on a cell-boundary
// line of constant x, 0 for constant y. TextureY and TextureStep are Q8.8
// texel coordinates; when ScreenY is zero the texture fields carry nothing.
type ColumnTrace struct {
	ScreenY     uint8
	TextureNo   uint8
	TextureX    uint8
	TextureY    uint16
	TextureStep uint16
}

// RayCaster traces screen columns against a Grid. Start latches a pose in
// external integer units (1024 position units span four cells, 1024 angle
// units one turn); Trace is pure between Start calls, so columns may be
// traced concurrently.
type RayCaster interface {
	Start(px, py uint16, pa int16)
	Trace(screenX int) ColumnTrace
	Close() error
}

// Tracer backend types
const (
	RAYCASTER_BACKEND_FIXED = iota
	RAYCASTER_BACKEND_FLOAT
)

// NewRayCaster creates a tracer backend of the requested type over world.
func NewRayCaster(backendType int, world Grid) (RayCaster, error) {
	if world == nil {
		return nil, &RayCasterError{
			Operation: "initialization",
			Details:   "nil world grid",
		}
	}
	switch backendType {
	case RAYCASTER_BACKEND_FIXED:
		return NewFixedRayCaster(world), nil
	case RAYCASTER_BACKEND_FLOAT:
		return NewFloatRayCaster(world), nil
	default:
		return nil, &RayCasterError{
			Operation: "initialization",
			Details:   fmt.Sprintf("unsupported backend type: %d", backendType),
		}
	}
}
