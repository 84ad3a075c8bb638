//go:build !headless

// video_backend_ebiten.go - Windowed side-by-side host on Ebiten

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

import (
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

func init() {
	compiledFeatures = append(compiledFeatures, "video:ebiten")
}

type EbitenOutput struct {
	running     bool
	window      *ebiten.Image
	width       int
	height      int
	scale       int
	fullscreen  bool
	windowedW   int
	windowedH   int
	title       string
	frameBuffer []byte // RGBA, width*height*4
	bufferMutex sync.RWMutex
	frameCount  uint64
	vsyncChan   chan struct{}

	pending    InputState
	statusText string
	showStatus bool

	clipboardOnce sync.Once
	clipboardOK   bool

	quit atomic.Bool
}

func NewEbitenOutput() (VideoOutput, error) {
	return &EbitenOutput{
		width:       COMPOSITE_WIDTH,
		height:      SCREEN_HEIGHT,
		scale:       SCREEN_SCALE,
		windowedW:   COMPOSITE_WIDTH * SCREEN_SCALE,
		windowedH:   SCREEN_HEIGHT * SCREEN_SCALE,
		title:       "RetroRay",
		frameBuffer: make([]byte, COMPOSITE_WIDTH*SCREEN_HEIGHT*4),
		vsyncChan:   make(chan struct{}, 1),
		showStatus:  true,
	}, nil
}

func (eo *EbitenOutput) Start() error {
	if eo.running {
		return nil
	}
	eo.running = true
	ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
	ebiten.SetWindowTitle(eo.title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	go func() {
		defer func() {
			eo.running = false
			eo.quit.Store(true)
		}()
		if err := ebiten.RunGame(eo); err != nil && err != ebiten.Termination {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()

	// Wait for first Draw call to ensure Ebiten is ready
	<-eo.vsyncChan
	return nil
}

func (eo *EbitenOutput) Stop() error {
	eo.running = false
	return nil
}

func (eo *EbitenOutput) Close() error {
	return eo.Stop()
}

func (eo *EbitenOutput) IsStarted() bool {
	return eo.running
}

func (eo *EbitenOutput) SetDisplayConfig(config DisplayConfig) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()

	if config.Width > 0 {
		eo.width = config.Width
	}
	if config.Height > 0 {
		eo.height = config.Height
	}
	if config.Scale > 0 {
		eo.scale = min(config.Scale, 8)
	}
	if config.Title != "" {
		eo.title = config.Title
	}
	newSize := eo.width * eo.height * 4
	if len(eo.frameBuffer) != newSize {
		eo.frameBuffer = make([]byte, newSize)
	}
	eo.windowedW = eo.width * eo.scale
	eo.windowedH = eo.height * eo.scale
	if eo.running {
		ebiten.SetWindowTitle(eo.title)
		if !eo.fullscreen {
			ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
		}
	}
	if eo.window != nil {
		eo.window.Deallocate()
		eo.window = nil
	}
	return nil
}

func (eo *EbitenOutput) GetDisplayConfig() DisplayConfig {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()
	return DisplayConfig{
		Width:  eo.width,
		Height: eo.height,
		Scale:  eo.scale,
		Title:  eo.title,
	}
}

// UpdateFrame converts an ABGR frame into the RGBA staging buffer the next
// Draw uploads.
func (eo *EbitenOutput) UpdateFrame(pixels []uint32) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()
	n := min(len(pixels), len(eo.frameBuffer)/4)
	for i := 0; i < n; i++ {
		p := pixels[i]
		eo.frameBuffer[i*4] = byte(p)
		eo.frameBuffer[i*4+1] = byte(p >> 8)
		eo.frameBuffer[i*4+2] = byte(p >> 16)
		eo.frameBuffer[i*4+3] = byte(p >> 24)
	}
	return nil
}

// SetStatusText replaces the overlay line the next Draw paints.
func (eo *EbitenOutput) SetStatusText(s string) {
	eo.bufferMutex.Lock()
	eo.statusText = s
	eo.bufferMutex.Unlock()
}

// CopyText puts s on the system clipboard. Reports false when no clipboard
// is reachable, which is not an error for the demo.
func (eo *EbitenOutput) CopyText(s string) bool {
	eo.clipboardOnce.Do(func() {
		eo.clipboardOK = clipboard.Init() == nil
	})
	if !eo.clipboardOK {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return true
}

func (eo *EbitenOutput) InputState() InputState {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()
	s := eo.pending
	s.Quit = s.Quit || eo.quit.Load()
	eo.pending.Snapshot = false
	eo.pending.CopyPose = false
	eo.pending.ToggleMute = false
	eo.pending.ResetPose = false
	return s
}

func (eo *EbitenOutput) GetFrameCount() uint64 {
	return atomic.LoadUint64(&eo.frameCount)
}

func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() || !eo.running {
		eo.quit.Store(true)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		eo.quit.Store(true)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		eo.bufferMutex.Lock()
		eo.fullscreen = !eo.fullscreen
		ebiten.SetFullscreen(eo.fullscreen)
		if !eo.fullscreen {
			ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
		}
		eo.bufferMutex.Unlock()
	}

	move, rotate := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		rotate++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		rotate--
	}

	eo.bufferMutex.Lock()
	eo.pending.MoveDir = move
	eo.pending.RotateDir = rotate
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		eo.pending.Snapshot = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		eo.pending.CopyPose = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		eo.showStatus = !eo.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		eo.pending.ToggleMute = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		eo.pending.ResetPose = true
	}
	eo.bufferMutex.Unlock()
	return nil
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	if eo.window == nil {
		eo.window = ebiten.NewImage(eo.width, eo.height)
	}

	eo.bufferMutex.RLock()
	eo.window.WritePixels(eo.frameBuffer)
	showStatus := eo.showStatus
	status := eo.statusText
	eo.bufferMutex.RUnlock()
	screen.DrawImage(eo.window, nil)

	if showStatus {
		if status == "" {
			status = fmt.Sprintf("%.0f fps", ebiten.ActualFPS())
		}
		text.Draw(screen, status, basicfont.Face7x13, 4, eo.height-4, color.White)
	}

	atomic.AddUint64(&eo.frameCount, 1)
	select {
	case eo.vsyncChan <- struct{}{}:
	default:
	}
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return eo.width, eo.height
}
