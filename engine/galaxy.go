package engine

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
)

// spiralPitch is the growth rate of the logarithmic spiral the arms follow:
// idealRadius = Tightness * exp(spiralPitch * angle).
const spiralPitch = 0.1

// GalaxyParams describes a procedural spiral galaxy. The yaml tags let
// presets load straight from config files; Center, Gravity and SpriteCount
// are filled in by the caller at spawn time.
type GalaxyParams struct {
	Center        cp.Vector `yaml:"-"`
	Count         int       `yaml:"count"`
	Arms          int       `yaml:"arms"`
	Tightness     float64   `yaml:"tightness"`
	Spread        float64   `yaml:"spread"`
	BulgeFraction float64   `yaml:"bulge_fraction"`
	MaxRadius     float64   `yaml:"max_radius"`
	Mass          float64   `yaml:"mass"` // base mass per star, must be positive
	Gravity       float64   `yaml:"-"`    // G used to derive orbital speeds
	SpriteCount   int       `yaml:"-"`
}

// GenerateGalaxy synthesizes a dense central bulge plus logarithmic spiral
// arms with orbitally consistent, counter-clockwise initial velocities. All
// randomness comes from rng and all ids from ids, so a seeded source
// reproduces the same galaxy. Arm stars whose ideal radius lands outside
// MaxRadius are skipped rather than padded, so the result can be shorter
// than Count. Like Body.Mass, Tightness and MaxRadius must be positive and
// Spread non-negative; callers (config validation, scenario scripts) enforce
// this before calling.
func GenerateGalaxy(p GalaxyParams, ids func() int64, rng *rand.Rand) []Body {
	if p.Arms < 1 {
		p.Arms = 1
	}
	bulgeCount := int(float64(p.Count) * p.BulgeFraction)
	armTotal := p.Count - bulgeCount

	bodies := make([]Body, 0, p.Count)

	// Bulge: uniform disc over the inner fifth of the radius with a little
	// velocity jitter instead of orbital motion.
	bulgeMass := 0.0
	for i := 0; i < bulgeCount; i++ {
		angle := rng.Float64() * 2 * math.Pi
		radius := rng.Float64() * 0.2 * p.MaxRadius
		mass := p.Mass * (1 + rng.Float64())
		bulgeMass += mass
		bodies = append(bodies, Body{
			ID:     ids(),
			Pos:    p.Center.Add(cp.Vector{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius}),
			Vel:    cp.Vector{X: (rng.Float64() - 0.5) * 0.2, Y: (rng.Float64() - 0.5) * 0.2},
			Mass:   mass,
			Sprite: spriteIndex(p.SpriteCount, rng),
		})
	}

	// Nominal mass of the disc, used for the enclosed-mass estimate below.
	totalArmMass := float64(armTotal) * p.Mass

	perArm, rem := 0, 0
	if armTotal > 0 {
		perArm = armTotal / p.Arms
		rem = armTotal % p.Arms
	}

	for arm := 0; arm < p.Arms; arm++ {
		count := perArm
		if arm < rem {
			count++
		}
		if count == 0 {
			continue
		}
		baseAngle := float64(arm) * 2 * math.Pi / float64(p.Arms)

		// Sweep each arm over roughly the same angular span regardless of
		// its population: step to the angle where the spiral reaches
		// MaxRadius.
		maxAngle := 0.0
		if p.Tightness > 0 && p.MaxRadius > p.Tightness {
			maxAngle = math.Log(p.MaxRadius/p.Tightness) / spiralPitch
		}
		step := maxAngle / float64(count)

		for i := 0; i < count; i++ {
			angle := float64(i) * step
			idealRadius := p.Tightness * math.Exp(spiralPitch*angle)
			if idealRadius > p.MaxRadius {
				continue
			}
			theta := baseAngle + angle
			ideal := cp.Vector{X: math.Cos(theta), Y: math.Sin(theta)}

			// Orbital speed comes from the mass enclosed inside the ideal
			// radius: the whole bulge plus the disc fraction interior to it.
			// The radial scatter below must not change the orbit, so speed
			// is derived before scattering.
			enclosed := bulgeMass + totalArmMass*idealRadius/p.MaxRadius
			speed := math.Sqrt(p.Gravity * enclosed / (math.Max(idealRadius, 1) + Softening))

			scatter := (rng.Float64() - 0.5) * p.Spread * idealRadius
			bodies = append(bodies, Body{
				ID:     ids(),
				Pos:    p.Center.Add(ideal.Mult(idealRadius + scatter)),
				Vel:    ideal.Perp().Mult(speed),
				Mass:   p.Mass * (0.8 + 0.4*rng.Float64()),
				Sprite: spriteIndex(p.SpriteCount, rng),
			})
		}
	}
	return bodies
}

func spriteIndex(n int, rng *rand.Rand) int {
	if n <= 0 {
		return -1
	}
	return rng.Intn(n)
}
