package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boing/audio"
	"github.com/lixenwraith/boing/config"
	"github.com/lixenwraith/boing/display"
	"github.com/lixenwraith/boing/engine"
	"github.com/lixenwraith/boing/input"
	"github.com/lixenwraith/boing/render"
)

var (
	saverFlag    = flag.Bool("s", false, "Run as screensaver: any key or mouse button exits")
	settingsFlag = flag.Bool("c", false, "Print settings, combined with -reset and -set to change them")
	previewFlag  = flag.String("p", "", "Preview in a centered WxH cell box, e.g. 40x20")
	configFlag   = flag.String("config", "", "Settings file (default: user config dir)")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/boing.log")
	colorFlag    = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides ColorMode setting)")
	resetFlag    = flag.Bool("reset", false, "Restore default settings")
	setFlags     assignments
)

func init() {
	flag.Var(&setFlags, "set", "Store a setting as Key=Value, repeatable")
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	path := *configFlag
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "boing: %v\n", err)
			os.Exit(1)
		}
		path = p
	}

	fileStore, err := config.OpenFileStore(path)
	if err != nil {
		// Store is still usable, every key falls back to its default
		log.Printf("config: %v", err)
	}

	if *settingsFlag || *resetFlag || len(setFlags) > 0 {
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		if err := runSettings(fileStore, *resetFlag, setFlags, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "boing: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(fileStore); err != nil {
		fmt.Fprintf(os.Stderr, "boing: %v\n", err)
		os.Exit(1)
	}
}

// run owns the terminal for the lifetime of the animation
func run(fileStore *config.FileStore) error {
	store := config.NewEnvStore(fileStore)
	settings := config.Load(store)

	var preview display.Dims
	if *previewFlag != "" {
		d, err := display.ParseDims(*previewFlag)
		if err != nil {
			return err
		}
		preview = d
	}

	colorName := settings.ColorMode
	if *colorFlag != "" {
		colorName = *colorFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBOING CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	if *saverFlag {
		screen.EnableMouse()
	}

	var displays display.Enumerator
	mode := engine.ModeFromSetting(settings.MultiMonitorMode)
	if preview.W > 0 {
		displays = display.NewBox(screen, preview)
		mode = engine.ModeSingle
	} else {
		grid, err := display.ParseDims(settings.Displays)
		if err != nil {
			log.Printf("config: %v, using a single display", err)
			grid = display.Dims{W: 1, H: 1}
		}
		displays = display.NewScreenLayout(screen, grid)
	}

	backend := render.NewTcellBackend(screen, render.ParseColorMode(colorName))
	log.Printf("render: %s color", backend.Mode())

	topo := engine.NewTopologyManager(backend, displays)
	if err := topo.Build(mode); err != nil {
		if errors.Is(err, engine.ErrNoSurfaces) {
			return fmt.Errorf("nothing to draw on: %w", err)
		}
		return err
	}
	defer topo.Teardown()

	var player engine.SoundPlayer
	if settings.Sound {
		sm := audio.NewSoundManager(audio.LoadAudioConfig())
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: %v, continuing without sound", err)
		} else {
			player = sm
			defer sm.Cleanup()
		}
	}

	orch := engine.NewOrchestrator(topo, backend, engine.NewTimeProvider(), player, engine.OptionsFromSettings(settings))

	profile := input.ProfileInteractive
	if *saverFlag {
		profile = input.ProfileSaver
	}
	orch.SetIntents(input.StartPoller(screen, profile))

	orch.SetReloader(func() (engine.Mode, engine.FrameOptions) {
		fs, err := config.OpenFileStore(fileStore.Path())
		if err != nil {
			log.Printf("config: %v", err)
		}
		s := config.Load(config.NewEnvStore(fs))
		m := engine.ModeFromSetting(s.MultiMonitorMode)
		if preview.W > 0 {
			m = engine.ModeSingle
		}
		log.Printf("config: reloaded from %s", fs.Path())
		return m, engine.OptionsFromSettings(s)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return orch.Run(ctx)
}
