// Package scenario runs optional tengo startup scripts that seed the
// simulation before the first tick. A script calls spawn and spawn_galaxy to
// build its initial conditions; everything it produces is merged into the
// store in one batch.
package scenario

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/starwell/starwell/engine"

	"github.com/jakecoffman/cp"
)

// Env is what a scenario script can see and touch. Galaxy supplies the
// preset defaults for spawn_galaxy; the script overrides position and count
// per call.
type Env struct {
	Width, Height float64
	DefaultMass   float64
	Gravity       float64
	Galaxy        engine.GalaxyParams
	NextID        func() int64
	Rand          *rand.Rand
	SpriteCount   func() int
}

// Run compiles and executes the script at path with a `sim` map exposing:
//
//	sim.spawn(x, y, vx, vy, mass)
//	sim.spawn_galaxy(x, y, count, arms, tightness, spread, bulge_fraction, max_radius, mass)
//	sim.width, sim.height
//	sim.rand()
//
// and returns every body the script spawned, in call order. Everything after
// spawn_galaxy's center is optional and falls back to the configured preset.
// Any compile or runtime error returns no bodies.
func Run(path string, env Env) ([]engine.Body, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var bodies []engine.Body

	spawn := &tengo.UserFunction{Name: "spawn", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		vals := make([]float64, 5)
		vals[4] = env.DefaultMass
		for i := range args {
			if i >= len(vals) {
				break
			}
			f, ok := tengo.ToFloat64(args[i])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: fmt.Sprintf("arg %d", i), Expected: "number"}
			}
			vals[i] = f
		}
		if vals[4] <= 0 {
			return nil, fmt.Errorf("spawn: mass must be positive, got %v", vals[4])
		}
		sprite := -1
		if n := env.SpriteCount(); n > 0 {
			sprite = env.Rand.Intn(n)
		}
		bodies = append(bodies, engine.Body{
			ID:     env.NextID(),
			Pos:    cp.Vector{X: vals[0], Y: vals[1]},
			Vel:    cp.Vector{X: vals[2], Y: vals[3]},
			Mass:   vals[4],
			Sprite: sprite,
		})
		return tengo.TrueValue, nil
	}}

	spawnGalaxy := &tengo.UserFunction{Name: "spawn_galaxy", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 || len(args) > 9 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, okX := tengo.ToFloat64(args[0])
		y, okY := tengo.ToFloat64(args[1])
		if !okX || !okY {
			return nil, tengo.ErrInvalidArgumentType{Name: "center", Expected: "number"}
		}
		p := env.Galaxy
		p.Center = cp.Vector{X: x, Y: y}
		p.Gravity = env.Gravity
		p.SpriteCount = env.SpriteCount()

		// Trailing args override the preset, in GalaxyParams field order.
		counts := []struct {
			name string
			dst  *int
		}{{"count", &p.Count}, {"arms", &p.Arms}}
		for i, c := range counts {
			if len(args) <= 2+i {
				break
			}
			n, ok := tengo.ToInt(args[2+i])
			if !ok || n < 0 {
				return nil, tengo.ErrInvalidArgumentType{Name: c.name, Expected: "int"}
			}
			*c.dst = n
		}
		scalars := []struct {
			name string
			dst  *float64
		}{
			{"tightness", &p.Tightness},
			{"spread", &p.Spread},
			{"bulge_fraction", &p.BulgeFraction},
			{"max_radius", &p.MaxRadius},
			{"mass", &p.Mass},
		}
		for i, sc := range scalars {
			if len(args) <= 4+i {
				break
			}
			f, ok := tengo.ToFloat64(args[4+i])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: sc.name, Expected: "number"}
			}
			*sc.dst = f
		}
		switch {
		case p.Arms < 1:
			return nil, fmt.Errorf("spawn_galaxy: needs at least one arm, got %d", p.Arms)
		case p.Tightness <= 0:
			return nil, fmt.Errorf("spawn_galaxy: tightness must be positive, got %v", p.Tightness)
		case p.Spread < 0:
			return nil, fmt.Errorf("spawn_galaxy: spread must not be negative, got %v", p.Spread)
		case p.BulgeFraction < 0 || p.BulgeFraction > 1:
			return nil, fmt.Errorf("spawn_galaxy: bulge_fraction must be in [0,1], got %v", p.BulgeFraction)
		case p.MaxRadius <= 0:
			return nil, fmt.Errorf("spawn_galaxy: max_radius must be positive, got %v", p.MaxRadius)
		case p.Mass <= 0:
			return nil, fmt.Errorf("spawn_galaxy: mass must be positive, got %v", p.Mass)
		}

		batch := engine.GenerateGalaxy(p, env.NextID, env.Rand)
		bodies = append(bodies, batch...)
		return &tengo.Int{Value: int64(len(batch))}, nil
	}}

	random := &tengo.UserFunction{Name: "rand", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: env.Rand.Float64()}, nil
	}}

	sim := &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"spawn":        spawn,
		"spawn_galaxy": spawnGalaxy,
		"rand":         random,
		"width":        &tengo.Float{Value: env.Width},
		"height":       &tengo.Float{Value: env.Height},
	}}

	script := tengo.NewScript(src)
	if err := script.Add("sim", sim); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	if _, err := script.Run(); err != nil {
		return nil, fmt.Errorf("scenario: run %s: %w", path, err)
	}
	return bodies, nil
}
