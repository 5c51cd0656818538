// Package engine is the gravitational core of starwell: the body store, the
// pairwise force solver, the fixed-step integrator, pointer-driven body
// injection and the spiral galaxy generator. It knows nothing about rendering
// or input devices; the root package feeds it gestures and reads snapshots.
package engine

import "github.com/jakecoffman/cp"

// Body is a point mass participating in gravity. Positions are in scene units
// and unbounded; bodies drifting off screen are neither clamped nor destroyed.
type Body struct {
	ID  int64
	Pos cp.Vector
	Vel cp.Vector
	// Mass must be positive. The solver divides by it and does not check;
	// every creator in this package always supplies a positive mass.
	Mass float64
	// Sprite selects a star sprite for rendering. Negative means none was
	// assigned and the renderer falls back to a plain circle.
	Sprite int
}
