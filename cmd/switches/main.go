package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/switches/audio"
	"github.com/lixenwraith/switches/config"
	"github.com/lixenwraith/switches/palette"
	"github.com/lixenwraith/switches/ui"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML settings file")
	debugFlag  = flag.Bool("debug", false, "Write diagnostics to "+logDir+"/"+logFileName)
	seedFlag   = flag.Int64("seed", 0, "Random seed for base hue and offsets (0 = time based)")
	muteFlag   = flag.Bool("mute", false, "Disable tap sounds")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(logDir, *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Starting with seed %d", seed)

	board := palette.NewBoard(cfg.Settings(), rand.New(rand.NewSource(seed)))
	board.OnChange(func(s palette.State) {
		log.Print(s)
	})

	audioCfg := cfg.AudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the screen works without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// Restore the terminal before a crash report reaches stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSWITCHES CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app := ui.New(screen, board, sound, ui.Options{Transition: cfg.Transition})
	runErr := app.Run(ctx)
	screen.Fini()

	if runErr != nil && runErr != context.Canceled {
		log.Printf("Screen loop ended: %v", runErr)
	}
	log.Printf("Final color %s", board.State())
}
