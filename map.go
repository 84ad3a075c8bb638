// map.go - Packed world grid, solidity rules and level loading

package main

import (
	_ "embed"
	"fmt"
	"os"
)

// MAP_BYTES is the size of a level on disk and in memory: 64 rows of 64
// cells packed eight to a byte.
const MAP_BYTES = (MAP_X / 8) * MAP_Y

//go:embed level1.map
var defaultLevel []byte

// MapError provides detailed error context for level loading operations
type MapError struct {
	Operation string
	Details   string
	Err       error
}

func (e *MapError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("map %s: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("map %s: %s", e.Operation, e.Details)
}

func (e *MapError) Unwrap() error {
	return e.Err
}

// Grid is the world both tracer backends march through. Anything that can
// answer a cell solidity query will do; tests inject synthetic grids.
type Grid interface {
	IsWall(x, y int) bool
}

// WorldMap is the shipped Grid: a 64x64 cell field packed eight cells to a
// byte, row-major.
type WorldMap struct {
	bits [MAP_BYTES]byte
}

// NewWorldMap returns the embedded default level.
func NewWorldMap() *WorldMap {
	m, err := NewWorldMapFromBytes(defaultLevel)
	if err != nil {
		// The embedded level is validated by tests; a bad build is not
		// recoverable at runtime.
		panic(err)
	}
	return m
}

// NewWorldMapFromBytes validates and copies a packed level image.
func NewWorldMapFromBytes(data []byte) (*WorldMap, error) {
	if len(data) != MAP_BYTES {
		return nil, &MapError{
			Operation: "decode",
			Details:   fmt.Sprintf("level image is %d bytes, want %d", len(data), MAP_BYTES),
		}
	}
	m := &WorldMap{}
	copy(m.bits[:], data)
	return m, nil
}

// LoadWorldMap reads a packed level image from disk.
func LoadWorldMap(path string) (*WorldMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MapError{
			Operation: "load",
			Details:   path,
			Err:       err,
		}
	}
	m, err := NewWorldMapFromBytes(data)
	if err != nil {
		return nil, &MapError{
			Operation: "load",
			Details:   path,
			Err:       err,
		}
	}
	return m, nil
}

// IsWall reports whether cell (x, y) blocks a ray. Out-of-range queries are
// solid, with the historical >= 63 asymmetry on the high edges. The bit
// select is evaluated at int width: for x%8 == 0 it picks bit 8, one above
// the byte, so those columns never read solid from the bitmap.
func (m *WorldMap) IsWall(x, y int) bool {
	if x < 0 || y < 0 || x >= MAP_X-1 || y >= MAP_Y-1 {
		return true
	}
	return int(m.bits[(x>>3)+(y<<(MAP_XS-3))])&(1<<uint(8-(x&7))) != 0
}

// Bytes returns the packed level image, for snapshots and round-trips.
func (m *WorldMap) Bytes() []byte {
	out := make([]byte, MAP_BYTES)
	copy(out, m.bits[:])
	return out
}
