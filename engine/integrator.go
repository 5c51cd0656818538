package engine

import "github.com/jakecoffman/cp"

// Step advances every body by one fixed time step with semi-implicit Euler:
// velocity is updated from the applied force first, then position from the
// new velocity. The result is a fresh slice derived only from the input
// snapshot, so the order bodies are stored in can never affect the physics.
func Step(bodies []Body, forces []cp.Vector, dt float64) []Body {
	next := make([]Body, len(bodies))
	for i, b := range bodies {
		b.Vel = b.Vel.Add(forces[i].Mult(dt / b.Mass))
		b.Pos = b.Pos.Add(b.Vel.Mult(dt))
		next[i] = b
	}
	return next
}
