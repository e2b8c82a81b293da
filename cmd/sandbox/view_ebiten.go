package main

/*
 * view_ebiten.go renders the simulation using Ebiten: a persistent
 * offscreen image is mutated incrementally from the changed-pixel list
 * each tick, then drawn scaled into the window.
 */

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hevezolly/fallingsand/config"
	"github.com/hevezolly/fallingsand/field"
)

// windowScale downsizes the world image when drawn into the window, since
// the default chunk bounds produce a world far larger than a comfortable
// screen.
const windowScale = 0.5

// game implements ebiten.Game, advancing the simulation every other frame
// and tracking only the pixels that changed since the previous tick.
type game struct {
	f      *field.Field
	seed   int64
	tick   int64
	width  int
	height int
	img    *ebiten.Image
}

func (g *game) Update() error {
	if g.tick%2 != 0 {
		g.tick++
		return nil
	}

	if _, err := g.f.Update(context.Background(), g.seed+g.tick); err != nil {
		return err
	}
	for _, p := range g.f.LoadPixels() {
		if p.Pos.X < 0 || p.Pos.Y < 0 || p.Pos.X >= g.width || p.Pos.Y >= g.height {
			continue
		}
		g.img.Set(p.Pos.X, p.Pos.Y, color.RGBA{R: p.Color[0], G: p.Color[1], B: p.Color[2], A: p.Color[3]})
	}
	g.tick++
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(windowScale, windowScale)
	screen.DrawImage(g.img, opts)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(float64(g.width) * windowScale), int(float64(g.height) * windowScale)
}

// runGUI opens an Ebiten window driving f, sized to cfg's chunk bounds.
func runGUI(f *field.Field, cfg *config.Config, seed int64) error {
	width := cfg.World.ChunkBoundsWidth * field.ChunkSize
	height := cfg.World.ChunkBoundsHeight * field.ChunkSize

	g := &game{
		f:      f,
		seed:   seed,
		width:  width,
		height: height,
		img:    ebiten.NewImage(width, height),
	}

	ebiten.SetWindowSize(int(float64(width)*windowScale), int(float64(height)*windowScale))
	ebiten.SetWindowTitle(fmt.Sprintf(
		"falling-sand | bounds=%dx%d chunks | threads=%d",
		cfg.World.ChunkBoundsWidth, cfg.World.ChunkBoundsHeight, cfg.World.Threads,
	))
	return ebiten.RunGame(g)
}
