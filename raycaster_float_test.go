// raycaster_float_test.go - Float tracer specifics

package main

import (
	"math"
	"testing"
)

func TestFloatRayCaster_Start_ConvertsPose(t *testing.T) {
	rc := NewFloatRayCaster(openGrid{})
	rc.Start(384, 640, 0)
	if rc.playerX != 1.5 || rc.playerY != 2.5 {
		t.Fatalf("position = (%v, %v), want (1.5, 2.5)", rc.playerX, rc.playerY)
	}
	if rc.playerA != 0 {
		t.Fatalf("angle = %v, want 0", rc.playerA)
	}
}

func TestFloatRayCaster_Start_ReducesAngle(t *testing.T) {
	rc := NewFloatRayCaster(openGrid{})
	rc.Start(384, 384, 300)
	base := rc.playerA
	if base < 0 || base >= 2*math.Pi {
		t.Fatalf("angle %v outside [0, 2π)", base)
	}

	// Whole turns must reduce to the same float before any trig runs;
	// reducing after conversion would leave ulp-sized residue.
	rc.Start(384, 384, 300+POSE_UNITS_PER_TURN)
	if rc.playerA != base {
		t.Fatalf("pa+1024 converted to %v, want %v", rc.playerA, base)
	}
	rc.Start(384, 384, 300-POSE_UNITS_PER_TURN)
	if rc.playerA != base {
		t.Fatalf("pa-1024 converted to %v, want %v", rc.playerA, base)
	}
}

func TestFloatRayCaster_FisheyeCancellation(t *testing.T) {
	// The outermost columns look out just under 38 degrees, so their rays
	// travel further to a wall square to the view. The perpendicular
	// correction must cancel that exactly: a flat wall renders dead flat.
	rows := make([]string, 12)
	for i := 0; i < 11; i++ {
		rows[i] = "..............."
	}
	rows[11] = "###############"
	rc := NewFloatRayCaster(gridFromStrings(rows...))
	rc.Start(7*POSE_UNITS_PER_CELL+128, 384, 0)

	centre := rc.Trace(SCREEN_WIDTH / 2)
	if centre.ScreenY != 30 {
		t.Fatalf("centre column screenY = %d, want 30", centre.ScreenY)
	}
	for sx := 0; sx < SCREEN_WIDTH; sx++ {
		if got := rc.Trace(sx); got.ScreenY != centre.ScreenY {
			t.Fatalf("column %d screenY = %d, centre = %d",
				sx, got.ScreenY, centre.ScreenY)
		}
	}
}
