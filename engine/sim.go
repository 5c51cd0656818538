package engine

import "math/rand"

// Simulation owns the body store. Every mutation goes through its methods;
// the renderer and UI only ever read the snapshot returned by Bodies. This
// keeps a single writer for the store even though injection, scripting and
// physics all produce bodies.
type Simulation struct {
	bodies []Body
	paused bool
	nextID int64
	rng    *rand.Rand

	onCount func(count int)
	onPause func(paused bool)
}

// NewSimulation returns an empty, running simulation. The seed drives sprite
// assignment and galaxy generation, so a fixed seed reproduces a session's
// initial conditions exactly.
func NewSimulation(seed int64) *Simulation {
	return &Simulation{rng: rand.New(rand.NewSource(seed))}
}

// Rand is the simulation's random source.
func (s *Simulation) Rand() *rand.Rand { return s.rng }

// NextID returns a fresh body id, unique for the life of the process.
func (s *Simulation) NextID() int64 {
	s.nextID++
	return s.nextID
}

// Bodies returns the current snapshot. Callers must not write through it.
func (s *Simulation) Bodies() []Body { return s.bodies }

func (s *Simulation) IsPaused() bool { return s.paused }

// OnCountChange registers the observer fired whenever the store size changes.
func (s *Simulation) OnCountChange(fn func(count int)) { s.onCount = fn }

// OnPauseChange registers the observer fired whenever pause state flips.
func (s *Simulation) OnPauseChange(fn func(paused bool)) { s.onPause = fn }

// Advance runs one physics tick with the given gravitational constant and
// time step. While paused it leaves every body untouched, so repeated calls
// are idempotent. The new snapshot is installed only once the whole sweep
// finishes.
func (s *Simulation) Advance(g, dt float64) {
	if s.paused || len(s.bodies) == 0 {
		return
	}
	s.bodies = Step(s.bodies, Forces(s.bodies, g), dt)
}

// TogglePause flips between running and paused.
func (s *Simulation) TogglePause() {
	s.paused = !s.paused
	if s.onPause != nil {
		s.onPause(s.paused)
	}
}

// Clear empties the store. A paused simulation resumes, so the next injected
// body starts moving immediately.
func (s *Simulation) Clear() {
	had := len(s.bodies)
	s.bodies = nil
	if s.paused {
		s.paused = false
		if s.onPause != nil {
			s.onPause(false)
		}
	}
	if had != 0 {
		s.notifyCount()
	}
}

// AddBodies appends a batch to the store without touching pause state.
func (s *Simulation) AddBodies(batch []Body) {
	if len(batch) == 0 {
		return
	}
	s.bodies = append(s.bodies, batch...)
	s.notifyCount()
}

func (s *Simulation) notifyCount() {
	if s.onCount != nil {
		s.onCount(len(s.bodies))
	}
}
