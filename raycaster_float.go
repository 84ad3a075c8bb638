// raycaster_float.go - Floating-point tracer backend

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

import "math"

// RAY_EPSILON guards the axis-parallel cases: a search whose step driver is
// this close to zero would cross its grid lines kilometres apart, so it is
// skipped and reports no hit.
const RAY_EPSILON = 0.001

// FloatRayCaster is the reference tracer. It converts the integer pose to
// map-cell floats once per Start and runs the two grid-line searches in
// float64.
type FloatRayCaster struct {
	world Grid

	playerX float64 // map-cell units
	playerY float64
	playerA float64 // radians, [0, 2π)
}

func NewFloatRayCaster(world Grid) *FloatRayCaster {
	return &FloatRayCaster{world: world}
}

// Start latches a pose. The angle is reduced to [0, 1024) before the float
// conversion so that whole-turn offsets produce bit-identical traces.
func (c *FloatRayCaster) Start(px, py uint16, pa int16) {
	c.playerX = float64(px) / POSE_UNITS_PER_CELL
	c.playerY = float64(py) / POSE_UNITS_PER_CELL
	c.playerA = float64(int(pa)&ANGLE_MASK) / POSE_UNITS_PER_TURN * 2 * math.Pi
}

// Trace walks one screen column to the nearest wall and projects it.
func (c *FloatRayCaster) Trace(screenX int) ColumnTrace {
	deltaAngle := math.Atan(((float64(screenX) - SCREEN_WIDTH/2) / (SCREEN_WIDTH / 2)) * (math.Pi / 4))
	rayA := c.playerA + deltaAngle
	for rayA < 0 {
		rayA += 2 * math.Pi
	}
	for rayA >= 2*math.Pi {
		rayA -= 2 * math.Pi
	}

	sinA := math.Sin(rayA)
	cosA := math.Cos(rayA)

	// A search that finds nothing within RAY_DEPTH steps reports +Inf so
	// the other side wins the strict compare below. A zero sentinel here
	// would make an empty search look like a touching wall.
	vertDist := math.Inf(1)
	horiDist := math.Inf(1)
	var vertY, horiX float64

	// Lines of constant x, stepped by the sign of sin.
	if sinA > RAY_EPSILON || sinA < -RAY_EPSILON {
		cotA := cosA / sinA
		var rayX, xOffset float64
		if sinA > 0 {
			rayX = math.Trunc(c.playerX) + 1
			xOffset = 1
		} else {
			rayX = math.Trunc(c.playerX) - RAY_EPSILON
			xOffset = -1
		}
		rayY := (rayX-c.playerX)*cotA + c.playerY
		yOffset := xOffset * cotA
		for depth := 0; depth < RAY_DEPTH; depth++ {
			if c.world.IsWall(int(rayX), int(rayY)) {
				vertDist = math.Hypot(rayX-c.playerX, rayY-c.playerY)
				vertY = rayY
				break
			}
			rayX += xOffset
			rayY += yOffset
		}
	}

	// Lines of constant y, stepped by the sign of cos.
	if cosA > RAY_EPSILON || cosA < -RAY_EPSILON {
		tanA := sinA / cosA
		var rayY, yOffset float64
		if cosA > 0 {
			rayY = math.Trunc(c.playerY) + 1
			yOffset = 1
		} else {
			rayY = math.Trunc(c.playerY) - RAY_EPSILON
			yOffset = -1
		}
		rayX := (rayY-c.playerY)*tanA + c.playerX
		xOffset := yOffset * tanA
		for depth := 0; depth < RAY_DEPTH; depth++ {
			if c.world.IsWall(int(rayX), int(rayY)) {
				horiDist = math.Hypot(rayX-c.playerX, rayY-c.playerY)
				horiX = rayX
				break
			}
			rayX += xOffset
			rayY += yOffset
		}
	}

	if math.IsInf(vertDist, 1) && math.IsInf(horiDist, 1) {
		return ColumnTrace{}
	}

	var hitDist, hitOffset float64
	var textureNo uint8
	if vertDist < horiDist {
		hitDist = vertDist
		hitOffset = vertY
		textureNo = 1
	} else {
		hitDist = horiDist
		hitOffset = horiX
		textureNo = 0
	}

	distance := hitDist * math.Cos(deltaAngle)
	if distance <= 0 {
		return ColumnTrace{}
	}

	_, offsetFrac := math.Modf(hitOffset)
	textureX := uint8(int32(offsetFrac * 256))

	halfHeight := INV_FACTOR / distance
	screenY := int(halfHeight)
	fullHeight := 2 * halfHeight

	var textureY, textureStep uint16
	if fullHeight != 0 {
		textureStep = uint16(int64((256 / fullHeight) * 256))
		if fullHeight > SCREEN_HEIGHT {
			// Cropped column: the first texel row comes from the
			// pre-clamp height.
			wallHeight := (fullHeight - SCREEN_HEIGHT) / 2
			textureY = uint16(int64(wallHeight * (256 / fullHeight) * 256))
			screenY = HORIZON_HEIGHT
		}
	}

	return ColumnTrace{
		ScreenY:     uint8(screenY),
		TextureNo:   textureNo,
		TextureX:    textureX,
		TextureY:    textureY,
		TextureStep: textureStep,
	}
}

func (c *FloatRayCaster) Close() error {
	return nil
}
