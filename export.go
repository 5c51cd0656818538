package main

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/starwell/starwell/assets"
	"github.com/starwell/starwell/engine"
)

var clipboardReady bool

// initClipboard makes clipboard.Write usable. Some platforms have no
// clipboard backend; exports then just skip the clipboard copy.
func initClipboard() {
	if err := clipboard.Init(); err != nil {
		log.Printf("export: clipboard unavailable: %v", err)
		return
	}
	clipboardReady = true
}

// exportPNG re-renders the snapshot into an offscreen image, writes it next
// to the binary as starwell_<unix>.png and pushes the same bytes to the
// system clipboard. Must run on the game loop since it draws with ebiten.
func exportPNG(bodies []engine.Body, sprites *assets.SpriteSet, width, height int) error {
	frame := ebiten.NewImage(width, height)
	defer frame.Deallocate()
	drawBodies(frame, bodies, sprites)

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}

	name := fmt.Sprintf("starwell_%d.png", time.Now().Unix())
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", name, err)
	}

	if clipboardReady {
		clipboard.Write(clipboard.FmtImage, buf.Bytes())
	}
	log.Printf("export: wrote %s (%d bodies)", name, len(bodies))
	return nil
}
