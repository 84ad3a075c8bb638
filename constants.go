// constants.go - Screen, world and projection constants shared by both tracer backends

package main

const (
	SCREEN_WIDTH   = 320
	SCREEN_HEIGHT  = 200
	HORIZON_HEIGHT = SCREEN_HEIGHT / 2
	SCREEN_SCALE   = 2 // window upscale, presentation only
)

const (
	MAP_X  = 64
	MAP_Y  = 64
	MAP_XS = 6 // log2 of the row stride in cells
)

const (
	INV_FACTOR = 288 // projection numerator: half wall height = INV_FACTOR / distance
	RAY_DEPTH  = 100 // step budget per grid-line search
)

// Pose units are integer and backend neutral: 1024 position units span four
// map cells and 1024 angle units are one full turn.
const (
	POSE_UNITS_PER_CELL = 256
	POSE_UNITS_PER_TURN = 1024
	ANGLE_MASK          = POSE_UNITS_PER_TURN - 1
	CELL_MASK           = POSE_UNITS_PER_CELL - 1
)

// Spawn pose for the embedded level, mid cell (8,8) facing north.
const (
	PLAYER_START_X = 8*POSE_UNITS_PER_CELL + 128
	PLAYER_START_Y = 8*POSE_UNITS_PER_CELL + 128
	PLAYER_START_A = 0
)
