//go:build headless

// video_backend_ebiten_headless.go - Ebiten substitute for display-less builds

package main

func init() {
	compiledFeatures = append(compiledFeatures, "video:headless")
}

// NewEbitenOutput falls back to the frame sink when the build excludes the
// windowed host.
func NewEbitenOutput() (VideoOutput, error) {
	return NewHeadlessOutput()
}
