// main.go - Main entry point for the RetroRay demo

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
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;60;0m ██▀███  ▓█████ ▄▄▄█████▓ ██▀███   ▒█████      ██▀███   ▄▄▄      ▓██   ██▓\033[0m\n\033[38;2;255;85;0m▓██ ▒ ██▒▓█   ▀ ▓  ██▒ ▓▒▓██ ▒ ██▒▒██▒  ██▒   ▓██ ▒ ██▒▒████▄     ▒██  ██▒\033[0m\n\033[38;2;255;110;0m▓██ ░▄█ ▒▒███   ▒ ▓██░ ▒░▓██ ░▄█ ▒▒██░  ██▒   ▓██ ░▄█ ▒▒██  ▀█▄    ▒██ ██░\033[0m\n\033[38;2;255;135;0m▒██▀▀█▄  ▒▓█  ▄ ░ ▓██▓ ░ ▒██▀▀█▄  ▒██   ██░   ▒██▀▀█▄  ░██▄▄▄▄██   ░ ▐██▓░\033[0m\n\033[38;2;255;160;0m░██▓ ▒██▒░▒████▒  ▒██▒ ░ ░██▓ ▒██▒░ ████▓▒░   ░██▓ ▒██▒ ▓█   ▓██▒  ░ ██▒▓░\033[0m\n\033[38;2;255;185;0m░ ▒▓ ░▒▓░░░ ▒░ ░  ▒ ░░   ░ ▒▓ ░▒▓░░ ▒░▒░▒░    ░ ▒▓ ░▒▓░ ▒▒   ▓▒█░   ██▒▒▒\033[0m\n\033[38;2;255;210;0m  ░▒ ░ ▒░ ░ ░  ░    ░      ░▒ ░ ▒░  ░ ▒ ▒░      ░▒ ░ ▒░  ▒   ▒▒ ░ ▓██ ░▒░\033[0m\n\033[38;2;255;235;0m  ░░   ░    ░     ░        ░░   ░ ░ ░ ░ ▒       ░░   ░   ░   ▒    ▒ ▒ ░░\033[0m\n\033[38;2;255;255;40m   ░        ░  ░            ░         ░ ░        ░           ░  ░ ░ ░\033[0m\n\033[38;2;255;255;90m                                                                  ░ ░\033[0m")
	fmt.Println("\nA 320x200 raycaster traced twice per frame: IEEE floats beside pure integer fixed-point.")
	fmt.Println("(c) 2025 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/RetroRay")
	fmt.Println("Buy me a coffee: https://ko-fi.com/intuition/tip")
	fmt.Println("License: GPLv3 or later")
	fmt.Println()
	printFeatures()
}

type demoOptions struct {
	parallel  bool
	maxFrames int
	snapshot  bool
	fps       int
}

func main() {
	boilerPlate()

	var (
		modeTerminal bool
		modeHeadless bool
		modeCompare  bool
		frames       int
		fps          int
		parallel     bool
		muted        bool
		snapshot     bool
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVar(&modeTerminal, "terminal", false, "Render into the terminal with ANSI half blocks")
	flagSet.BoolVar(&modeHeadless, "headless", false, "Run without any display")
	flagSet.BoolVar(&modeCompare, "compare", false, "Trace the scripted tour with both backends and report drift")
	flagSet.IntVar(&frames, "frames", 0, "Stop after N frames (0 runs until quit)")
	flagSet.IntVar(&fps, "fps", 60, "Demo loop rate")
	flagSet.BoolVar(&parallel, "parallel", false, "Trace columns across all CPUs")
	flagSet.BoolVar(&muted, "mute", false, "Start with sound muted")
	flagSet.BoolVar(&snapshot, "snapshot", false, "Save a PNG of the final frame on exit")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./retroray [-terminal|-headless] [-compare] [-frames N] [-fps N] [-parallel] [-mute] [-snapshot] [level.map]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if modeTerminal && modeHeadless {
		fmt.Println("Error: select at most one of -terminal and -headless")
		os.Exit(1)
	}
	if fps < 1 || fps > 240 {
		fmt.Println("Error: -fps must be between 1 and 240")
		os.Exit(1)
	}

	mapFile := flagSet.Arg(0)

	var world *WorldMap
	var err error
	if mapFile != "" {
		world, err = LoadWorldMap(mapFile)
		if err != nil {
			fmt.Printf("Error loading map: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded map: %s\n", mapFile)
	} else {
		world = NewWorldMap()
	}

	if modeCompare {
		stats, err := RunComparison(world, TourPoses())
		if err != nil {
			fmt.Printf("Comparison failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(stats.Report())
		// Corner grazes flip a handful of columns between the two
		// arithmetics; anything beyond a small fraction means real drift.
		if stats.ColumnsOver1*50 > stats.Columns {
			fmt.Println("FAIL: backends disagree on more than 2% of columns")
			os.Exit(1)
		}
		return
	}

	backend := VIDEO_BACKEND_EBITEN
	if modeTerminal {
		backend = VIDEO_BACKEND_TERMINAL
	} else if modeHeadless {
		backend = VIDEO_BACKEND_HEADLESS
	}

	video, err := NewVideoOutput(backend)
	if err != nil {
		fmt.Printf("Failed to initialize video: %v\n", err)
		os.Exit(1)
	}
	if err := video.SetDisplayConfig(DisplayConfig{
		Width:  COMPOSITE_WIDTH,
		Height: SCREEN_HEIGHT,
		Scale:  SCREEN_SCALE,
		Title:  "RetroRay - fixed-point vs float",
	}); err != nil {
		fmt.Printf("Failed to configure video: %v\n", err)
		os.Exit(1)
	}

	// Sound is a garnish here, so a missing audio device downgrades to
	// silence instead of refusing to run.
	beeper, err := NewBeeper()
	if err != nil {
		fmt.Printf("Failed to initialize sound: %v (continuing silent)\n", err)
		beeper = nil
	}
	if beeper != nil {
		beeper.SetMuted(muted)
	}

	game := NewGame(world, PLAYER_START_X, PLAYER_START_Y, PLAYER_START_A)

	opts := demoOptions{
		parallel:  parallel,
		maxFrames: frames,
		snapshot:  snapshot,
		fps:       fps,
	}
	if err := runDemo(game, world, video, beeper, opts); err != nil {
		fmt.Printf("Demo failed: %v\n", err)
		os.Exit(1)
	}
}

// runDemo drives the side-by-side loop until quit or the frame budget
// runs out. Both tracers share one pose per frame, so any visible
// difference between the two halves is arithmetic, not input timing.
func runDemo(game *Game, world Grid, video VideoOutput, beeper *Beeper, opts demoOptions) error {
	fixed, err := NewRayCaster(RAYCASTER_BACKEND_FIXED, world)
	if err != nil {
		return err
	}
	defer fixed.Close()
	float, err := NewRayCaster(RAYCASTER_BACKEND_FLOAT, world)
	if err != nil {
		return err
	}
	defer float.Close()

	if err := video.Start(); err != nil {
		return err
	}
	defer video.Stop()

	if beeper != nil {
		beeper.Start()
		defer beeper.Close()
	}

	fixedFB := NewFrame()
	floatFB := NewFrame()
	composite := NewCompositeFrame()

	trace := TraceFrame
	if opts.parallel {
		trace = TraceFrameParallel
	}

	ticker := time.NewTicker(time.Second / time.Duration(opts.fps))
	defer ticker.Stop()

	last := time.Now()
	rendered := 0
	for {
		in := video.InputState()
		if in.Quit {
			break
		}

		now := time.Now()
		ticks := uint32(now.Sub(last) * 256 / time.Second)
		last = now

		if in.ResetPose {
			game.Reset()
		}
		if in.ToggleMute && beeper != nil {
			beeper.ToggleMute()
		}
		if game.Move(in.MoveDir, in.RotateDir, ticks) && beeper != nil {
			beeper.Bump()
		}

		px, py, pa := game.Pose()
		fixed.Start(px, py, pa)
		float.Start(px, py, pa)
		trace(fixed, fixedFB)
		trace(float, floatFB)
		ComposeSideBySide(fixedFB, floatFB, composite)
		if err := video.UpdateFrame(composite); err != nil {
			return err
		}

		if sc, ok := video.(StatusCapable); ok {
			sc.SetStatusText(fmt.Sprintf("fixed | float   pose %d,%d,%d", px, py, pa))
		}

		if in.CopyPose {
			if cc, ok := video.(ClipboardCapable); ok {
				if cc.CopyText(fmt.Sprintf("%d,%d,%d", px, py, pa)) && beeper != nil {
					beeper.Blip()
				}
			}
		}
		if in.Snapshot {
			name := SnapshotName()
			if err := WritePNG(name, composite, COMPOSITE_WIDTH, SCREEN_HEIGHT); err != nil {
				fmt.Printf("Snapshot failed: %v\n", err)
			} else if beeper != nil {
				beeper.Blip()
			}
		}

		rendered++
		if opts.maxFrames > 0 && rendered >= opts.maxFrames {
			break
		}
		<-ticker.C
	}

	if opts.snapshot {
		name := SnapshotName()
		if err := WritePNG(name, composite, COMPOSITE_WIDTH, SCREEN_HEIGHT); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", name)
	}
	return nil
}
