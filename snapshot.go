// snapshot.go - PNG capture of the composite frame

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"
)

// WritePNG saves an ABGR frame to disk as a PNG.
func WritePNG(path string, pixels []uint32, width, height int) error {
	if width <= 0 || height <= 0 || len(pixels) < width*height {
		return fmt.Errorf("snapshot %dx%d: frame too small (%d pixels)", width, height, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: byte(p),
				G: byte(p >> 8),
				B: byte(p >> 16),
				A: byte(p >> 24),
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// SnapshotName builds a timestamped filename so repeated captures never
// overwrite each other.
func SnapshotName() string {
	return fmt.Sprintf("retroray-%s.png", time.Now().Format("20060102-150405"))
}
