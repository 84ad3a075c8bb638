// game.go - Player pose, movement and collision

package main

const (
	MOVE_SPEED    = 3  // external position units per tick
	ROTATE_SPEED  = 1  // angle units per tick
	PLAYER_RADIUS = 64 // collision margin, a quarter cell

	// A stalled frame advances at most a quarter second, which keeps the
	// largest possible step under one cell so walls cannot be tunnelled.
	MAX_MOVE_TICKS = 64
)

// Game owns the pose in external integer units and advances it with the
// same trig tables the fixed tracer uses.
type Game struct {
	world Grid

	px, py uint16
	pa     int16

	startX, startY uint16
	startA         int16
}

func NewGame(world Grid, px, py uint16, pa int16) *Game {
	return &Game{
		world:  world,
		px:     px,
		py:     py,
		pa:     pa & ANGLE_MASK,
		startX: px,
		startY: py,
		startA: pa & ANGLE_MASK,
	}
}

func (g *Game) Pose() (px, py uint16, pa int16) {
	return g.px, g.py, g.pa
}

// Reset restores the level start pose.
func (g *Game) Reset() {
	g.px, g.py, g.pa = g.startX, g.startY, g.startA
}

// Move advances the pose by one input sample. moveDir and rotateDir are
// -1, 0 or +1; ticks are 1/256 second units. Each axis is tested against
// the world independently so a blocked diagonal slides along the wall.
// Reports whether a wall blocked part of the motion.
func (g *Game) Move(moveDir, rotateDir int, ticks uint32) bool {
	if ticks == 0 {
		return false
	}
	if ticks > MAX_MOVE_TICKS {
		ticks = MAX_MOVE_TICKS
	}

	g.pa = int16((int(g.pa) + rotateDir*int(ticks)*ROTATE_SPEED) & ANGLE_MASK)

	if moveDir == 0 {
		return false
	}

	a := int(g.pa)
	dist := moveDir * int(ticks) * MOVE_SPEED
	dx := (dist * int(sinQ16[a])) >> FIXED_SHIFT
	dy := (dist * int(cosQ16[a])) >> FIXED_SHIFT

	bumped := false
	if dx != 0 {
		nx := int(g.px) + dx
		probe := nx + PLAYER_RADIUS
		if dx < 0 {
			probe = nx - PLAYER_RADIUS
		}
		if g.world.IsWall(poseCell(probe), poseCell(int(g.py))) {
			bumped = true
		} else {
			g.px = uint16(nx)
		}
	}
	if dy != 0 {
		ny := int(g.py) + dy
		probe := ny + PLAYER_RADIUS
		if dy < 0 {
			probe = ny - PLAYER_RADIUS
		}
		if g.world.IsWall(poseCell(int(g.px)), poseCell(probe)) {
			bumped = true
		} else {
			g.py = uint16(ny)
		}
	}
	return bumped
}

// poseCell maps an external position unit to its map cell. Negative
// positions belong to cell -1, which every Grid reports solid.
func poseCell(v int) int {
	if v < 0 {
		return -1
	}
	return v / POSE_UNITS_PER_CELL
}
