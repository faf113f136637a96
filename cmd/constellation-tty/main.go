// cmd/constellation-tty/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"constellation-defenders/internal/audio"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/tty"

	"github.com/gdamore/tcell/v2"
)

func main() {
	levelsPath := flag.String("levels", "", "YAML file overriding the built-in level table")
	seed := flag.Int64("seed", 0, "PRNG seed for every match (0 = random)")
	sound := flag.Bool("sound", false, "play sound cues")
	logPath := flag.String("log", "", "write the log to this file instead of discarding it")
	flag.Parse()

	// лог поверх терминала ломает картинку
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	var catalog *defs.Catalog
	var err error
	if *levelsPath != "" {
		catalog, err = defs.LoadCatalog(*levelsPath)
	} else {
		catalog, err = defs.DefaultCatalog()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load levels: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	dispatcher := event.NewDispatcher()
	if *sound {
		player := audio.NewPlayer(config.AudioVolume)
		player.Attach(dispatcher)
		defer player.Close()
	}

	tty.NewFrontend(screen, catalog, dispatcher, *seed).Run()
}
