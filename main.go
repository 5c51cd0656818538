package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/starwell/starwell/config"
)

func main() {
	configPath := flag.String("config", "settings.yaml", "settings file, reloaded live on edit")
	scenarioPath := flag.String("scenario", "", "tengo script that seeds the simulation at startup")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "show the FPS/body-count overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := config.NewStore(*configPath)
	defer cfg.Close()

	s := cfg.Current()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(s.WindowWidth, s.WindowHeight)
	ebiten.SetWindowTitle("starwell")

	initClipboard()

	game := NewGame(cfg, *scenarioPath, *seed, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
