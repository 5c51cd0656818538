package engine

import "github.com/jakecoffman/cp"

const (
	// A drag emits one body every spawnThreshold units of path traveled.
	spawnThreshold = 15.0
	// Press/release displacements below this (squared) count as a click.
	clickThresholdSq = 25.0
)

// InjectorConfig carries the live-tunable knobs for pointer injection. The
// injector re-reads it on every emission, so slider changes apply mid-drag.
type InjectorConfig struct {
	// Mass given to every injected body. Must be positive.
	Mass float64
	// DragSpeed scales tangential launch speed per unit of drag segment.
	DragSpeed float64
}

// Injector turns pointer gestures into bodies appended to the simulation.
// It is a two-state machine, Idle until a press and Dragging until release
// or leave. A short press-release is a click dropping a single body at rest;
// a longer drag streams bodies along the path with tangential velocity.
type Injector struct {
	sim     *Simulation
	cfg     func() InjectorConfig
	sprites func() int // number of loaded sprites, 0 while assets aren't ready

	dragging bool
	start    cp.Vector
	last     cp.Vector
}

func NewInjector(sim *Simulation, cfg func() InjectorConfig, sprites func() int) *Injector {
	return &Injector{sim: sim, cfg: cfg, sprites: sprites}
}

// Press arms a gesture at p. No body is created yet; release decides between
// click and drag.
func (in *Injector) Press(p cp.Vector) {
	in.dragging = true
	in.start = p
	in.last = p
}

// Move emits a body once the pointer has traveled more than spawnThreshold
// units since the last emission, so the spawn rate follows distance covered
// rather than event frequency. The body launches perpendicular to the drag
// segment, faster for faster strokes. A move with no preceding press is a
// no-op.
func (in *Injector) Move(p cp.Vector) {
	if !in.dragging {
		return
	}
	seg := p.Sub(in.last)
	dist := seg.Length()
	if dist <= spawnThreshold {
		return
	}
	cfg := in.cfg()
	vel := seg.Perp().Normalize().Mult(cfg.DragSpeed * dist)
	in.sim.AddBodies([]Body{in.newBody(p, vel, cfg.Mass)})
	in.last = p
}

// Release ends the gesture. If the total displacement from the press stays
// under the click threshold, exactly one body is dropped at rest at the
// release point; a genuine drag already emitted its bodies during Move.
func (in *Injector) Release(p cp.Vector) {
	if !in.dragging {
		return
	}
	if p.Sub(in.start).LengthSq() < clickThresholdSq {
		in.sim.AddBodies([]Body{in.newBody(p, cp.Vector{}, in.cfg().Mass)})
	}
	in.reset()
}

// Leave cancels an in-progress gesture without creating anything.
func (in *Injector) Leave() {
	in.reset()
}

func (in *Injector) reset() {
	in.dragging = false
	in.start = cp.Vector{}
	in.last = cp.Vector{}
}

func (in *Injector) newBody(pos, vel cp.Vector, mass float64) Body {
	return Body{
		ID:     in.sim.NextID(),
		Pos:    pos,
		Vel:    vel,
		Mass:   mass,
		Sprite: spriteIndex(in.sprites(), in.sim.Rand()),
	}
}
