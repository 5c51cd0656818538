package engine

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Softening is added in squared distance to every pair, so the force between
// two bodies stays finite even at zero separation. Scene units.
const Softening = 5.0

// Forces computes the net gravitational force on every body from every other
// body. forces[i] corresponds to bodies[i]. Exact O(n²) sweep over all pairs,
// accumulated symmetrically; pure function of the snapshot.
func Forces(bodies []Body, g float64) []cp.Vector {
	forces := make([]cp.Vector, len(bodies))
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			d := bodies[j].Pos.Sub(bodies[i].Pos)
			distSq := d.LengthSq() + Softening*Softening
			// F = g*mi*mj/distSq along d/sqrt(distSq).
			f := d.Mult(g * bodies[i].Mass * bodies[j].Mass / (distSq * math.Sqrt(distSq)))
			forces[i] = forces[i].Add(f)
			forces[j] = forces[j].Sub(f)
		}
	}
	return forces
}
