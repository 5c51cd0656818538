package main

import (
	"fmt"
	"log"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/starwell/starwell/assets"
	"github.com/starwell/starwell/config"
	"github.com/starwell/starwell/engine"
	"github.com/starwell/starwell/scenario"
)

type Game struct {
	cfg      *config.Store
	sim      *engine.Simulation
	injector *engine.Injector
	sprites  *assets.SpriteSet
	controls *ControlsUI

	debug  bool
	frames int
}

func NewGame(cfg *config.Store, scenarioPath string, seed int64, debug bool) *Game {
	g := &Game{
		cfg:     cfg,
		sim:     engine.NewSimulation(seed),
		sprites: assets.LoadSprites(),
		debug:   debug,
	}
	g.injector = engine.NewInjector(g.sim, func() engine.InjectorConfig {
		s := cfg.Current()
		return engine.InjectorConfig{Mass: s.DefaultMass, DragSpeed: s.DragSpeed}
	}, g.sprites.Count)
	g.controls = NewControlsUI(g)

	if scenarioPath != "" {
		s := cfg.Current()
		bodies, err := scenario.Run(scenarioPath, scenario.Env{
			Width:       float64(s.WindowWidth),
			Height:      float64(s.WindowHeight),
			DefaultMass: s.DefaultMass,
			Gravity:     s.Gravity,
			Galaxy:      s.Galaxy,
			NextID:      g.sim.NextID,
			Rand:        g.sim.Rand(),
			SpriteCount: g.sprites.Count,
		})
		if err != nil {
			log.Printf("scenario: %v (starting empty)", err)
		} else {
			g.sim.AddBodies(bodies)
			log.Printf("scenario: seeded %d bodies from %s", len(bodies), scenarioPath)
		}
	}
	return g
}

func (g *Game) Update() error {
	g.frames++
	g.cfg.Poll()

	// Termination instead of os.Exit so main's deferred cfg.Close runs.
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.spawnGalaxy()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.requestExport()
	}

	g.updatePointer()
	g.controls.ui.Update()
	g.controls.Refresh(g.cfg.Current())

	s := g.cfg.Current()
	g.sim.Advance(s.Gravity, s.TimeStep)
	return nil
}

// updatePointer feeds mouse gestures into the injector. Presses over the
// control panel belong to the UI and never start a gesture; a cursor leaving
// the window cancels whatever drag was in flight.
func (g *Game) updatePointer() {
	cx, cy := ebiten.CursorPosition()
	s := g.cfg.Current()
	if cx < 0 || cy < 0 || cx >= s.WindowWidth || cy >= s.WindowHeight {
		g.injector.Leave()
		return
	}

	p := cp.Vector{X: float64(cx), Y: float64(cy)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if !ebuiinput.UIHovered {
			g.injector.Press(p)
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.injector.Release(p)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.injector.Move(p)
	}
}

// spawnGalaxy adds the configured galaxy preset centered on the window.
func (g *Game) spawnGalaxy() {
	s := g.cfg.Current()
	p := s.Galaxy
	p.Center = cp.Vector{X: float64(s.WindowWidth) / 2, Y: float64(s.WindowHeight) / 2}
	p.Gravity = s.Gravity
	p.SpriteCount = g.sprites.Count()
	g.sim.AddBodies(engine.GenerateGalaxy(p, g.sim.NextID, g.sim.Rand()))
}

func (g *Game) requestExport() {
	s := g.cfg.Current()
	if err := exportPNG(g.sim.Bodies(), g.sprites, s.WindowWidth, s.WindowHeight); err != nil {
		log.Printf("%v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawBodies(screen, g.sim.Bodies(), g.sprites)
	g.controls.ui.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Bodies: %d", g.frames, ebiten.ActualFPS(), len(g.sim.Bodies())))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	s := g.cfg.Current()
	return float64(s.WindowWidth), float64(s.WindowHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
