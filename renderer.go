// renderer.go - Column painter and frame assembly

package main

import (
	"runtime"
	"sync"
)

// COMPOSITE_WIDTH is the side-by-side frame: both views plus a separator
// column between them.
const COMPOSITE_WIDTH = SCREEN_WIDTH*2 + 1

// PaintColumn writes one traced column into a SCREEN_WIDTH x SCREEN_HEIGHT
// framebuffer. The wall strip spans [HORIZON_HEIGHT-ScreenY,
// HORIZON_HEIGHT+ScreenY); texel rows come from the high byte of a Q8.8
// accumulator seeded with TextureY. A zero ScreenY paints no wall pixels
// at all, so the texture fields of a no-hit column are never read.
func PaintColumn(fb []uint32, x int, t ColumnTrace) {
	wallTop := HORIZON_HEIGHT - int(t.ScreenY)
	wallBot := HORIZON_HEIGHT + int(t.ScreenY)

	for y := 0; y < wallTop; y++ {
		fb[y*SCREEN_WIDTH+x] = CEILING_COLOR
	}
	acc := uint32(t.TextureY)
	for y := wallTop; y < wallBot; y++ {
		fb[y*SCREEN_WIDTH+x] = wallTextures[t.TextureNo][uint8(acc>>8)][t.TextureX]
		acc += uint32(t.TextureStep)
	}
	for y := wallBot; y < SCREEN_HEIGHT; y++ {
		fb[y*SCREEN_WIDTH+x] = FLOOR_COLOR
	}
}

// TraceFrame renders a full view through one tracer backend.
func TraceFrame(rc RayCaster, fb []uint32) {
	for x := 0; x < SCREEN_WIDTH; x++ {
		PaintColumn(fb, x, rc.Trace(x))
	}
}

// TraceFrameParallel splits the columns across the CPUs. Columns are
// independent and Trace is pure between Start calls, so the output is
// identical to TraceFrame.
func TraceFrameParallel(rc RayCaster, fb []uint32) {
	workers := runtime.NumCPU()
	if workers > SCREEN_WIDTH {
		workers = SCREEN_WIDTH
	}
	chunk := (SCREEN_WIDTH + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < SCREEN_WIDTH; lo += chunk {
		hi := min(lo+chunk, SCREEN_WIDTH)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for x := lo; x < hi; x++ {
				PaintColumn(fb, x, rc.Trace(x))
			}
		}(lo, hi)
	}
	wg.Wait()
}

// ComposeSideBySide lays the fixed view left of the float view with a
// separator column between, into a COMPOSITE_WIDTH x SCREEN_HEIGHT frame.
func ComposeSideBySide(fixedFB, floatFB, out []uint32) {
	for y := 0; y < SCREEN_HEIGHT; y++ {
		src := y * SCREEN_WIDTH
		dst := y * COMPOSITE_WIDTH
		copy(out[dst:dst+SCREEN_WIDTH], fixedFB[src:src+SCREEN_WIDTH])
		out[dst+SCREEN_WIDTH] = SEPARATOR
		copy(out[dst+SCREEN_WIDTH+1:dst+COMPOSITE_WIDTH], floatFB[src:src+SCREEN_WIDTH])
	}
}

// NewFrame allocates a single-view framebuffer.
func NewFrame() []uint32 {
	return make([]uint32, SCREEN_WIDTH*SCREEN_HEIGHT)
}

// NewCompositeFrame allocates a side-by-side framebuffer.
func NewCompositeFrame() []uint32 {
	return make([]uint32, COMPOSITE_WIDTH*SCREEN_HEIGHT)
}
