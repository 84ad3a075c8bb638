// raycaster_tables_test.go - Trig table and fixed-point helper tests

package main

import "testing"

func TestTrigTables_CardinalValues(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"sin 0", sinQ16[0], 0},
		{"sin quarter", sinQ16[256], FIXED_ONE},
		{"sin half", sinQ16[512], 0},
		{"sin three-quarter", sinQ16[768], -FIXED_ONE},
		{"cos 0", cosQ16[0], FIXED_ONE},
		{"cos half", cosQ16[512], -FIXED_ONE},
		{"sin eighth", sinQ16[128], 46341},
		{"cos eighth", cosQ16[128], 46341},
		{"tan eighth", tanQ16[128], FIXED_ONE},
		{"cot eighth", cotQ16[128], FIXED_ONE},
		{"tan five-eighths", tanQ16[640], FIXED_ONE},
		{"cot five-eighths", cotQ16[640], FIXED_ONE},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %d, want %d", tc.got, tc.want)
			}
		})
	}
}

// The slope tables stay zero where their search would never run, and hold
// steep but in-range values one step off the axis.
func TestTrigTables_AxisGuards(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"tan at cos zero", tanQ16[256], 0},
		{"tan at cos zero mirrored", tanQ16[768], 0},
		{"cot at sin zero", cotQ16[0], 0},
		{"cot at sin zero mirrored", cotQ16[512], 0},
		{"cot one step off axis", cotQ16[1], 10680573},
		{"tan one step short of half", tanQ16[511], -402},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %d, want %d", tc.got, tc.want)
			}
		})
	}
}

func TestTrigTables_Symmetry(t *testing.T) {
	for i := 0; i < POSE_UNITS_PER_TURN; i++ {
		mirror := (POSE_UNITS_PER_TURN - i) & ANGLE_MASK
		if sinQ16[i] != -sinQ16[mirror] {
			t.Fatalf("sin not odd at %d: %d vs %d", i, sinQ16[i], sinQ16[mirror])
		}
		if cosQ16[i] != cosQ16[mirror] {
			t.Fatalf("cos not even at %d: %d vs %d", i, cosQ16[i], cosQ16[mirror])
		}
		if sinQ16[i] != cosQ16[(i+768)&ANGLE_MASK] {
			t.Fatalf("sin/cos quarter-turn identity broken at %d", i)
		}
		if cosQ16[i] != 0 && tanQ16[i] != -tanQ16[mirror] {
			t.Fatalf("tan not odd at %d: %d vs %d", i, tanQ16[i], tanQ16[mirror])
		}
		if sinQ16[i] != 0 && cotQ16[i] != -cotQ16[mirror] {
			t.Fatalf("cot not odd at %d: %d vs %d", i, cotQ16[i], cotQ16[mirror])
		}
	}
}

// The column fan is a fixed property of the projection: about 38 degrees
// to each side, denser near the centre, antisymmetric about it.
func TestColumnAngles_Fan(t *testing.T) {
	tests := []struct {
		name string
		sx   int
		want int16
	}{
		{"left edge", 0, -109},
		{"left of centre", 159, -1},
		{"centre", 160, 0},
		{"right of centre", 161, 1},
		{"right edge", 319, 108},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if deltaQ[tc.sx] != tc.want {
				t.Fatalf("deltaQ[%d] = %d, want %d", tc.sx, deltaQ[tc.sx], tc.want)
			}
		})
	}

	for sx := 0; sx < SCREEN_WIDTH-1; sx++ {
		if deltaQ[sx] > deltaQ[sx+1] {
			t.Fatalf("deltaQ not monotone at %d: %d > %d", sx, deltaQ[sx], deltaQ[sx+1])
		}
	}
	// The fan is centred on column 160, so sx pairs with 320-sx, leaving
	// column 0 as the sole unpaired edge.
	for sx := 1; sx < SCREEN_WIDTH; sx++ {
		if deltaQ[sx] != -deltaQ[SCREEN_WIDTH-sx] {
			t.Fatalf("deltaQ not antisymmetric at %d: %d vs %d", sx, deltaQ[sx], deltaQ[SCREEN_WIDTH-sx])
		}
	}
}

func TestMulQ16(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"one times one", FIXED_ONE, FIXED_ONE, FIXED_ONE},
		{"one and a half", 3 * FIXED_ONE / 2, FIXED_ONE, 3 * FIXED_ONE / 2},
		{"negative", -FIXED_ONE, FIXED_ONE / 2, -FIXED_ONE / 2},
		{"two by three quarters", 2 * FIXED_ONE, 3 * FIXED_ONE / 4, 3 * FIXED_ONE / 2},
		{"below one lsb", 1, 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := mulQ16(tc.a, tc.b); got != tc.want {
				t.Fatalf("mulQ16(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

// cellOf truncates toward zero, so every coordinate in (-1, 1) lands in
// cell 0 just as the float tracer's int cast does.
func TestCellOf(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		want int
	}{
		{"just below one", FIXED_ONE - 1, 0},
		{"exactly one", FIXED_ONE, 1},
		{"one and a half", 3 * FIXED_ONE / 2, 1},
		{"just below two", 2*FIXED_ONE - 1, 1},
		{"exactly two", 2 * FIXED_ONE, 2},
		{"just below zero", -1, 0},
		{"just above minus one", -FIXED_ONE + 1, 0},
		{"exactly minus one", -FIXED_ONE, -1},
		{"just below minus one", -FIXED_ONE - 1, -1},
		{"exactly minus two", -2 * FIXED_ONE, -2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cellOf(tc.v); got != tc.want {
				t.Fatalf("cellOf(%d) = %d, want %d", tc.v, got, tc.want)
			}
		})
	}
}

func TestIsqrt64(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		want uint64
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"below square", 3, 1},
		{"square", 4, 2},
		{"above square", 17, 4},
		{"one in q32", 1 << 32, 1 << 16},
		{"large power of two", 1 << 60, 1 << 30},
		{"diagonal hit distance", 105226698752, 324386},
		{"near int64 max", (1 << 62) - 1, (1 << 31) - 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isqrt64(tc.v); got != tc.want {
				t.Fatalf("isqrt64(%d) = %d, want %d", tc.v, got, tc.want)
			}
		})
	}
}
