// textures.go - Generated wall textures and flat surface colors

package main

const (
	TEXTURE_COUNT = 2
	TEXTURE_SIZE  = 256
)

// Framebuffer pixels are 32-bit ABGR: A<<24 | B<<16 | G<<8 | R.
const (
	CEILING_COLOR = 0xFF544036
	FLOOR_COLOR   = 0xFF2E4256
	SEPARATOR     = 0xFF101010
)

// wallTextures holds one texture per hit direction; variant 1 is a darkened
// variant 0 so the two wall faces shade apart. Both are built once at
// startup. External texture art stays out of scope.
var wallTextures [TEXTURE_COUNT][TEXTURE_SIZE][TEXTURE_SIZE]uint32

func init() {
	for y := 0; y < TEXTURE_SIZE; y++ {
		for x := 0; x < TEXTURE_SIZE; x++ {
			r, g, b := brickTexel(x, y)
			wallTextures[0][y][x] = packABGR(r, g, b)
			wallTextures[1][y][x] = packABGR(r*5/8, g*5/8, b*5/8)
		}
	}
}

// brickTexel returns the RGB of a 256x256 running-bond brick pattern with
// a deterministic speckle, so frames are reproducible in tests.
func brickTexel(x, y int) (int, int, int) {
	course := y / 32
	xs := x
	if course%2 == 1 {
		xs += 32
	}
	if y%32 >= 29 || xs%64 >= 61 {
		return 150, 144, 134
	}
	speckle := (x*31 + y*17) % 13
	return 166 + speckle, 74 + speckle/2, 58 + speckle/2
}

func packABGR(r, g, b int) uint32 {
	return 0xFF000000 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}
