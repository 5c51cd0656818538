package scenario

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/starwell/starwell/engine"
)

func testEnv() (Env, *int64) {
	var nextID int64
	return Env{
		Width:       1280,
		Height:      720,
		DefaultMass: 20,
		Gravity:     6.674,
		Galaxy: engine.GalaxyParams{
			Count:         100,
			Arms:          2,
			Tightness:     12,
			Spread:        0.3,
			BulgeFraction: 0.5,
			MaxRadius:     300,
			Mass:          8,
		},
		NextID:      func() int64 { nextID++; return nextID },
		Rand:        rand.New(rand.NewSource(42)),
		SpriteCount: func() int { return 0 },
	}, &nextID
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.tengo")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunSpawnsBodiesInCallOrder(t *testing.T) {
	path := writeScript(t, `
sim.spawn(100, 200, 1, -1, 50)
sim.spawn(300, 400)
`)
	env, _ := testEnv()

	bodies, err := Run(path, env)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(bodies))
	}

	first := bodies[0]
	if first.Pos.X != 100 || first.Pos.Y != 200 {
		t.Errorf("first body at (%v, %v), want (100, 200)", first.Pos.X, first.Pos.Y)
	}
	if first.Vel.X != 1 || first.Vel.Y != -1 {
		t.Errorf("first body velocity (%v, %v), want (1, -1)", first.Vel.X, first.Vel.Y)
	}
	if first.Mass != 50 {
		t.Errorf("first body mass %v, want 50", first.Mass)
	}

	// Omitted mass falls back to the configured default.
	if bodies[1].Mass != env.DefaultMass {
		t.Errorf("second body mass %v, want default %v", bodies[1].Mass, env.DefaultMass)
	}
	if bodies[0].ID == bodies[1].ID {
		t.Errorf("ids must be unique, both are %d", bodies[0].ID)
	}
}

func TestRunSpawnGalaxyUsesPresetWithOverrides(t *testing.T) {
	path := writeScript(t, `n := sim.spawn_galaxy(sim.width / 2, sim.height / 2, 40)`)
	env, _ := testEnv()

	bodies, err := Run(path, env)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(bodies) == 0 || len(bodies) > 40 {
		t.Fatalf("expected between 1 and 40 bodies, got %d", len(bodies))
	}
	// Half the requested count is bulge per the preset's bulge_fraction,
	// and bulge bodies are never radius-skipped.
	if len(bodies) < 20 {
		t.Fatalf("expected at least the 20 bulge bodies, got %d", len(bodies))
	}
}

func TestRunSpawnGalaxyHonorsTrailingOverrides(t *testing.T) {
	// bulge_fraction 1 makes every star a bulge star, and bulge stars always
	// land inside the inner fifth of max_radius. If any trailing arg were
	// silently dropped, preset values (bulge 0.5, radius 300) would leak
	// through and break both checks.
	path := writeScript(t, `sim.spawn_galaxy(0, 0, 10, 1, 12, 0.3, 1.0, 50, 8)`)
	env, _ := testEnv()

	bodies, err := Run(path, env)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(bodies) != 10 {
		t.Fatalf("expected the overridden count of 10 bodies, got %d", len(bodies))
	}
	for i, b := range bodies {
		if r := b.Pos.Length(); r > 0.2*50+1e-9 {
			t.Fatalf("body %d at radius %v, outside the overridden 50-unit galaxy's bulge", i, r)
		}
	}
}

func TestRunSpawnGalaxyRejectsBadOverrides(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"too_many_args", `sim.spawn_galaxy(0, 0, 10, 1, 12, 0.3, 0.1, 50, 8, 99)`},
		{"negative_tightness", `sim.spawn_galaxy(0, 0, 10, 1, -5)`},
		{"armless", `sim.spawn_galaxy(0, 0, 10, 0)`},
		{"bad_mass", `sim.spawn_galaxy(0, 0, 10, 1, 12, 0.3, 0.1, 50, -8)`},
		{"bulge_over_one", `sim.spawn_galaxy(0, 0, 10, 1, 12, 0.3, 1.5)`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env, _ := testEnv()
			bodies, err := Run(writeScript(t, c.src), env)
			if err == nil {
				t.Fatal("expected an error")
			}
			if len(bodies) != 0 {
				t.Fatalf("expected no bodies on error, got %d", len(bodies))
			}
		})
	}
}

func TestRunScriptErrorsReturnNoBodies(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax_error", `sim.spawn(`},
		{"bad_mass", `sim.spawn(0, 0, 0, 0, -5)`},
		{"bad_args", `sim.spawn()`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env, _ := testEnv()
			bodies, err := Run(writeScript(t, c.src), env)
			if err == nil {
				t.Fatal("expected an error")
			}
			if len(bodies) != 0 {
				t.Fatalf("expected no bodies on error, got %d", len(bodies))
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	env, _ := testEnv()
	if _, err := Run(filepath.Join(t.TempDir(), "nope.tengo"), env); err == nil {
		t.Fatal("expected an error for a missing script")
	}
}

func TestRunIsDeterministicForFixedSeed(t *testing.T) {
	src := `sim.spawn_galaxy(640, 360, 30)`

	run := func() []engine.Body {
		env, _ := testEnv()
		bodies, err := Run(writeScript(t, src), env)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return bodies
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("body %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
