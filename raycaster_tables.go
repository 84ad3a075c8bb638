// raycaster_tables.go - Lookup tables and integer helpers for the fixed-point tracer

package main

import "math"

// The fixed tracer works in Q16.16 map-cell units internally. The external
// pose unit is 1/256 cell, so poses widen by one byte on entry; the extra
// eight fraction bits keep a hundred-step march within a fraction of a
// texel of the real line.
const (
	FIXED_SHIFT = 16
	FIXED_ONE   = 1 << FIXED_SHIFT
	FIXED_MASK  = FIXED_ONE - 1
	POSE_SHIFT  = FIXED_SHIFT - 8
)

// sinQ16/cosQ16 contain round(sin(2πi/1024) * 65536) for every angle index.
// Index mapping: angle index & ANGLE_MASK
var (
	sinQ16 [POSE_UNITS_PER_TURN]int32
	cosQ16 [POSE_UNITS_PER_TURN]int32
)

// tanQ16/cotQ16 are left zero where the matching cos/sin entry is zero; the
// tracer skips those searches before reading them. The largest stored
// magnitude is tan one step off the axis, about 163 cells per cell.
var (
	tanQ16 [POSE_UNITS_PER_TURN]int32
	cotQ16 [POSE_UNITS_PER_TURN]int32
)

// deltaQ maps a screen column to its ray angle offset in angle-index units,
// round(atan(((sx-160)/160) * π/4) * 1024 / 2π). Range is about ±109.
var deltaQ [SCREEN_WIDTH]int16

func init() {
	for i := 0; i < POSE_UNITS_PER_TURN; i++ {
		phase := 2 * math.Pi * float64(i) / POSE_UNITS_PER_TURN
		sinQ16[i] = int32(math.Round(math.Sin(phase) * FIXED_ONE))
		cosQ16[i] = int32(math.Round(math.Cos(phase) * FIXED_ONE))
	}
	for i := 0; i < POSE_UNITS_PER_TURN; i++ {
		phase := 2 * math.Pi * float64(i) / POSE_UNITS_PER_TURN
		if cosQ16[i] != 0 {
			tanQ16[i] = int32(math.Round(math.Tan(phase) * FIXED_ONE))
		}
		if sinQ16[i] != 0 {
			cotQ16[i] = int32(math.Round(FIXED_ONE / math.Tan(phase)))
		}
	}
	for sx := 0; sx < SCREEN_WIDTH; sx++ {
		ang := math.Atan(((float64(sx) - SCREEN_WIDTH/2) / (SCREEN_WIDTH / 2)) * (math.Pi / 4))
		deltaQ[sx] = int16(math.Round(ang * POSE_UNITS_PER_TURN / (2 * math.Pi)))
	}
}

// mulQ16 multiplies two Q16.16 values.
func mulQ16(a, b int64) int64 {
	return (a * b) >> FIXED_SHIFT
}

// cellOf extracts the map cell from a Q16.16 coordinate, truncating toward
// zero like the float tracer's int cast.
func cellOf(v int64) int {
	return int(v / FIXED_ONE)
}

// isqrt64 returns the integer square root of v (Newton's method).
func isqrt64(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}

// dist2Q32 returns the squared length of a Q16.16 delta in Q32.32. The
// largest overshoot a table slope can produce stays inside 63 bits.
func dist2Q32(dx, dy int64) uint64 {
	return uint64(dx*dx + dy*dy)
}
