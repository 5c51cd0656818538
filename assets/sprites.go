// Package assets embeds the star sprites and decodes them in the background.
// Rendering degrades to plain circles until every sprite has either loaded or
// failed; the physics tick never waits on any of this.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var assetsFS embed.FS

var spriteNames = []string{"star_0.png", "star_1.png", "star_2.png", "star_3.png"}

// SpriteSet holds the decoded star sprites. Ready flips true once every
// sprite has been attempted, loaded or not; failed slots stay nil and the
// renderer falls back per body.
type SpriteSet struct {
	ready   atomic.Bool
	sprites []*ebiten.Image
}

// LoadSprites kicks off background decoding of every embedded star sprite
// and returns immediately. Individual failures are logged and leave a nil
// slot; they never stop the remaining sprites or the readiness barrier.
func LoadSprites() *SpriteSet {
	s := &SpriteSet{sprites: make([]*ebiten.Image, len(spriteNames))}
	go func() {
		var wg sync.WaitGroup
		for i, name := range spriteNames {
			wg.Add(1)
			go func(i int, name string) {
				defer wg.Done()
				img, err := loadImage(name)
				if err != nil {
					log.Printf("assets: %v (circle fallback for sprite %d)", err, i)
					return
				}
				s.sprites[i] = img
			}(i, name)
		}
		wg.Wait()
		s.ready.Store(true)
	}()
	return s
}

// Ready reports whether every sprite has finished its load attempt.
func (s *SpriteSet) Ready() bool { return s.ready.Load() }

// Count returns the number of selectable sprite indices once the set is
// ready, and 0 before that, so new bodies never reference sprites that are
// still loading.
func (s *SpriteSet) Count() int {
	if !s.ready.Load() {
		return 0
	}
	return len(s.sprites)
}

// Sprite returns the image for index i, or nil if i is out of range or that
// sprite failed to load.
func (s *SpriteSet) Sprite(i int) *ebiten.Image {
	if !s.ready.Load() || i < 0 || i >= len(s.sprites) {
		return nil
	}
	return s.sprites[i]
}

func loadImage(name string) (*ebiten.Image, error) {
	b, err := assetsFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
