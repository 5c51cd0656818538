package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/starwell/starwell/assets"
	"github.com/starwell/starwell/common"
	"github.com/starwell/starwell/engine"
)

const (
	// Sprite size tracks sqrt(mass) so doubling mass doesn't double the
	// star's apparent area twice over.
	spriteScale   = 3.0
	minSpriteSize = 4.0
	maxSpriteSize = 48.0
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 14, A: 255}
	fallbackColor   = color.RGBA{R: 230, G: 228, B: 210, A: 255}
)

// drawBodies renders one snapshot: a star sprite per body once the sprite
// set is ready, a plain filled circle before that or for any body without a
// loaded sprite. Store order only affects layering, so this iterates the
// snapshot as-is.
func drawBodies(screen *ebiten.Image, bodies []engine.Body, sprites *assets.SpriteSet) {
	screen.Fill(backgroundColor)

	for _, b := range bodies {
		img := sprites.Sprite(b.Sprite)
		if img == nil {
			r := math.Max(1, math.Sqrt(b.Mass))
			vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(r), fallbackColor, true)
			continue
		}

		w := float64(img.Bounds().Dx())
		h := float64(img.Bounds().Dy())
		size := common.Clamp(math.Sqrt(b.Mass)*spriteScale, minSpriteSize, maxSpriteSize)
		scale := size / math.Max(w, h)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(b.Pos.X-w*scale/2, b.Pos.Y-h*scale/2)
		screen.DrawImage(img, op)
	}
}
