// game_test.go - Pose, movement and collision tests

package main

import "testing"

func TestNewGame_MasksAngle(t *testing.T) {
	g := NewGame(openGrid{}, 100, 100, 1500)
	if _, _, pa := g.Pose(); pa != 476 {
		t.Fatalf("pa = %d, want 476", pa)
	}
	g = NewGame(openGrid{}, 100, 100, -1)
	if _, _, pa := g.Pose(); pa != 1023 {
		t.Fatalf("pa = %d, want 1023", pa)
	}
}

func TestGame_Move_ZeroTicksIsNoop(t *testing.T) {
	g := NewGame(openGrid{}, 500, 600, 42)
	if g.Move(1, 1, 0) {
		t.Fatal("zero ticks reported a bump")
	}
	px, py, pa := g.Pose()
	if px != 500 || py != 600 || pa != 42 {
		t.Fatalf("pose changed to %d,%d,%d", px, py, pa)
	}
}

func TestGame_Move_RotationWraps(t *testing.T) {
	tests := []struct {
		name      string
		start     int16
		rotateDir int
		ticks     uint32
		want      int16
	}{
		{"wraps up past zero", 1020, 1, 8, 4},
		{"wraps down past zero", 4, -1, 8, 1020},
		{"full speed stays in range", 0, 1, MAX_MOVE_TICKS, 64},
		{"stalled frame clamps", 0, 1, 100000, 64},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame(openGrid{}, 500, 500, tc.start)
			g.Move(0, tc.rotateDir, tc.ticks)
			if _, _, pa := g.Pose(); pa != tc.want {
				t.Fatalf("pa = %d, want %d", pa, tc.want)
			}
		})
	}
}

func TestGame_Move_ForwardAtCardinals(t *testing.T) {
	tests := []struct {
		name   string
		pa     int16
		wantDX int
		wantDY int
	}{
		{"north", 0, 0, 30},
		{"east", 256, 30, 0},
		{"south", 512, 0, -30},
		{"west", 768, -30, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame(openGrid{}, 1000, 1000, tc.pa)
			if g.Move(1, 0, 10) {
				t.Fatal("open grid reported a bump")
			}
			px, py, _ := g.Pose()
			if int(px) != 1000+tc.wantDX || int(py) != 1000+tc.wantDY {
				t.Fatalf("moved to %d,%d, want %d,%d",
					px, py, 1000+tc.wantDX, 1000+tc.wantDY)
			}
		})
	}
}

func TestGame_Move_ClampsStalledFrame(t *testing.T) {
	g := NewGame(openGrid{}, 1000, 1000, 0)
	g.Move(1, 0, 100000)
	if _, py, _ := g.Pose(); py != 1000+MAX_MOVE_TICKS*MOVE_SPEED {
		t.Fatalf("py = %d, want %d", py, 1000+MAX_MOVE_TICKS*MOVE_SPEED)
	}
}

// A diagonal into a wall keeps the open axis moving: the blocked axis
// reports the bump, the other slides along the wall face.
func TestGame_Move_WallSlide(t *testing.T) {
	world := gridFromStrings(
		"...",
		"..#",
		"..#",
	)
	g := NewGame(world, 450, 300, 128)
	if !g.Move(1, 0, 10) {
		t.Fatal("no bump against the wall column")
	}
	px, py, _ := g.Pose()
	if px != 450 {
		t.Fatalf("blocked axis moved to %d", px)
	}
	if py != 321 {
		t.Fatalf("open axis at %d, want 321", py)
	}
}

func TestGame_Move_CornerBlocksBothAxes(t *testing.T) {
	world := gridFromStrings(
		"...",
		"..#",
		".##",
	)
	g := NewGame(world, 450, 450, 128)
	if !g.Move(1, 0, 10) {
		t.Fatal("no bump in the corner")
	}
	px, py, _ := g.Pose()
	if px != 450 || py != 450 {
		t.Fatalf("pose moved to %d,%d", px, py)
	}
}

// Outside the grid every cell is solid, including cell -1 behind the
// origin, so the player cannot escape through position zero.
func TestGame_Move_EdgeOfWorldBlocks(t *testing.T) {
	world := gridFromStrings(
		"...",
		"...",
		"...",
	)
	g := NewGame(world, 30, 300, 768)
	if !g.Move(1, 0, 10) {
		t.Fatal("no bump at the world edge")
	}
	if px, _, _ := g.Pose(); px != 30 {
		t.Fatalf("px = %d, want 30", px)
	}
}

func TestGame_Reset(t *testing.T) {
	g := NewGame(openGrid{}, 700, 800, 200)
	g.Move(1, 1, 20)
	g.Reset()
	px, py, pa := g.Pose()
	if px != 700 || py != 800 || pa != 200 {
		t.Fatalf("reset pose = %d,%d,%d, want 700,800,200", px, py, pa)
	}
}
