// compare.go - float vs fixed-point agreement harness

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

// Pose is a player position and heading in pose units: 256 per map cell,
// 1024 per full turn.
type Pose struct {
	X uint16
	Y uint16
	A int16
}

// CompareStats accumulates per-column differences between the fixed-point
// and float renderers across a scripted tour.
type CompareStats struct {
	Frames  int
	Columns int

	MaxScreenYDelta  int
	MaxDeltaPose     Pose
	MaxDeltaColumn   int
	ColumnsOver1     int
	TextureNoChecked int
	TextureNoDiffs   int
	MaxTextureXDelta int

	DiffPixels  int
	TotalPixels int
}

// TourPoses walks the embedded level: axis-aligned views, diagonals past
// the pillar field, the doorway on the long wall, and the east room.
func TourPoses() []Pose {
	return []Pose{
		{2176, 2176, 0},
		{2176, 2176, 256},
		{2176, 2176, 512},
		{2176, 2176, 768},
		{2176, 2176, 767},
		{2176, 2176, 255},
		{2176, 2176, 257},
		{2176, 2176, 100},
		{1408, 1408, 128},
		{3968, 2944, 300},
		{3968, 2944, 448},
		{2176, 7040, 512},
		{2176, 7040, 960},
		{3712, 7296, 0},
		{3712, 7296, 64},
		{10368, 3712, 640},
		{10368, 9344, 576},
		{13184, 3712, 896},
		{13184, 3712, 320},
		{6400, 5504, 832},
	}
}

// RunComparison traces every tour pose with both backends and renders
// both frames, recording how far the integer renderer drifts from the
// float reference.
func RunComparison(world Grid, poses []Pose) (CompareStats, error) {
	var stats CompareStats

	fixed, err := NewRayCaster(RAYCASTER_BACKEND_FIXED, world)
	if err != nil {
		return stats, err
	}
	defer fixed.Close()
	float, err := NewRayCaster(RAYCASTER_BACKEND_FLOAT, world)
	if err != nil {
		return stats, err
	}
	defer float.Close()

	fixedCols := make([]ColumnTrace, SCREEN_WIDTH)
	floatCols := make([]ColumnTrace, SCREEN_WIDTH)
	fixedFrame := NewFrame()
	floatFrame := NewFrame()

	for _, pose := range poses {
		fixed.Start(pose.X, pose.Y, pose.A)
		float.Start(pose.X, pose.Y, pose.A)

		for sx := 0; sx < SCREEN_WIDTH; sx++ {
			fc := fixed.Trace(sx)
			flc := float.Trace(sx)
			fixedCols[sx] = fc
			floatCols[sx] = flc

			dy := int(fc.ScreenY) - int(flc.ScreenY)
			if dy < 0 {
				dy = -dy
			}
			if dy > stats.MaxScreenYDelta {
				stats.MaxScreenYDelta = dy
				stats.MaxDeltaPose = pose
				stats.MaxDeltaColumn = sx
			}
			if dy > 1 {
				stats.ColumnsOver1++
			}

			// Corner grazes can flip the winning axis between the two
			// arithmetics, so texture identity is only meaningful on
			// walls tall enough to see.
			if flc.ScreenY >= 2 {
				stats.TextureNoChecked++
				if fc.TextureNo != flc.TextureNo {
					stats.TextureNoDiffs++
				} else {
					// Texture x is a ring coordinate, so measure along
					// the shorter arc.
					dx := int(fc.TextureX) - int(flc.TextureX)
					if dx < 0 {
						dx = -dx
					}
					if dx > TEXTURE_SIZE/2 {
						dx = TEXTURE_SIZE - dx
					}
					if dx > stats.MaxTextureXDelta {
						stats.MaxTextureXDelta = dx
					}
				}
			}
			stats.Columns++
		}

		for sx := 0; sx < SCREEN_WIDTH; sx++ {
			PaintColumn(fixedFrame, sx, fixedCols[sx])
			PaintColumn(floatFrame, sx, floatCols[sx])
		}
		for i := range fixedFrame {
			if fixedFrame[i] != floatFrame[i] {
				stats.DiffPixels++
			}
		}
		stats.TotalPixels += len(fixedFrame)
		stats.Frames++
	}
	return stats, nil
}

// Report formats the stats the way the demo prints them with -compare.
func (s CompareStats) Report() string {
	pixelPct := 0.0
	if s.TotalPixels > 0 {
		pixelPct = 100 * float64(s.DiffPixels) / float64(s.TotalPixels)
	}
	texPct := 0.0
	if s.TextureNoChecked > 0 {
		texPct = 100 * float64(s.TextureNoDiffs) / float64(s.TextureNoChecked)
	}
	overPct := 0.0
	if s.Columns > 0 {
		overPct = 100 * float64(s.ColumnsOver1) / float64(s.Columns)
	}
	return fmt.Sprintf(
		"Fixed vs float over %d poses (%d columns):\n"+
			"  max screenY delta   %d (pose %d,%d,%d column %d)\n"+
			"  columns over ±1     %d/%d (%.3f%%)\n"+
			"  textureNo diffs     %d/%d (%.3f%%)\n"+
			"  max textureX delta  %d\n"+
			"  pixel diffs         %d/%d (%.3f%%)\n",
		s.Frames, s.Columns,
		s.MaxScreenYDelta, s.MaxDeltaPose.X, s.MaxDeltaPose.Y, s.MaxDeltaPose.A, s.MaxDeltaColumn,
		s.ColumnsOver1, s.Columns, overPct,
		s.TextureNoDiffs, s.TextureNoChecked, texPct,
		s.MaxTextureXDelta,
		s.DiffPixels, s.TotalPixels, pixelPct)
}
