package engine

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestForcesBoundedBySoftening(t *testing.T) {
	const g = 6.674
	cases := []struct {
		name       string
		separation float64
	}{
		{"zero_separation", 0},
		{"touching", 1},
		{"near", Softening},
		{"far", 500},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bodies := []Body{
				{ID: 1, Pos: cp.Vector{}, Mass: 40},
				{ID: 2, Pos: cp.Vector{X: c.separation}, Mass: 25},
			}
			forces := Forces(bodies, g)

			bound := g * bodies[0].Mass * bodies[1].Mass / (Softening * Softening)
			for i, f := range forces {
				mag := f.Length()
				if math.IsNaN(mag) || math.IsInf(mag, 0) {
					t.Fatalf("force on body %d is not finite: %v", i, f)
				}
				if mag > bound+1e-9 {
					t.Fatalf("force magnitude %v exceeds softening bound %v", mag, bound)
				}
			}
		})
	}
}

func TestForcesNewtonThirdLaw(t *testing.T) {
	bodies := []Body{
		{ID: 1, Pos: cp.Vector{X: -30, Y: 10}, Mass: 12},
		{ID: 2, Pos: cp.Vector{X: 45, Y: -8}, Mass: 3},
		{ID: 3, Pos: cp.Vector{X: 2, Y: 90}, Mass: 77},
	}
	forces := Forces(bodies, 1.5)

	var net cp.Vector
	for _, f := range forces {
		net = net.Add(f)
	}
	if net.Length() > 1e-9 {
		t.Fatalf("net internal force should cancel, got %v", net)
	}
}

func TestForcesIgnoreStoreOrder(t *testing.T) {
	a := []Body{
		{ID: 1, Pos: cp.Vector{X: 0, Y: 0}, Mass: 5},
		{ID: 2, Pos: cp.Vector{X: 20, Y: 0}, Mass: 9},
		{ID: 3, Pos: cp.Vector{X: 0, Y: -15}, Mass: 2},
	}
	b := []Body{a[2], a[0], a[1]}

	fa := Forces(a, 2)
	fb := Forces(b, 2)

	byID := map[int64]cp.Vector{b[0].ID: fb[0], b[1].ID: fb[1], b[2].ID: fb[2]}
	for i, body := range a {
		got := byID[body.ID]
		if got.Sub(fa[i]).Length() > 1e-9 {
			t.Fatalf("force on body %d depends on store order: %v vs %v", body.ID, fa[i], got)
		}
	}
}
