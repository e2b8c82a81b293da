package main

import (
	"github.com/hevezolly/fallingsand/config"
	"github.com/hevezolly/fallingsand/element"
	"github.com/hevezolly/fallingsand/field"
	"github.com/hevezolly/fallingsand/geom"
)

// seedColumn drops a single Sand grain near the top of the world, matching
// the free-fall demonstration scenario: nothing else occupies the column, so
// the grain falls straight down tick after tick.
func seedColumn(f *field.Field, cfg *config.Config) {
	f.Set(geom.Point{X: 16, Y: 0}, element.Sand{Params: cfg.Elements.Sand.ToParams()})
}

// seedDisplacement places a lighter liquid below a denser solid, so the solid
// sinks through it over the following ticks.
func seedDisplacement(f *field.Field, cfg *config.Config, rng element.RNG) {
	f.Set(geom.Point{X: 10, Y: 3}, element.Sand{Params: cfg.Elements.Sand.ToParams()})
	f.Set(geom.Point{X: 10, Y: 5}, element.Water{Params: cfg.Elements.Water.ToParams(rng)})
}

// seedAcidPatch buries a 3x3 patch of Sand under an Acid grain so the
// dissolution pass has immediate neighbours to consume.
func seedAcidPatch(f *field.Field, cfg *config.Config, rng element.RNG) {
	const baseX, baseY = 20, 2
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			f.Set(geom.Point{X: baseX + dx, Y: baseY + 1 + dy}, element.Sand{Params: cfg.Elements.Sand.ToParams()})
		}
	}
	f.Set(geom.Point{X: baseX + 1, Y: baseY}, element.Acid{
		Params:   cfg.Elements.Acid.ToParams(rng),
		Strength: cfg.Elements.Acid.DefaultStrength,
	})
}

// seedRandomScatter floors a widthxheight window with a Block row so loose
// elements have something to settle on, shuffles every cell position above
// that row, and assigns the leading fraction (density) of them an element
// picked uniformly among Sand, Water and Oil. The shuffle is a Fisher-Yates
// walk driven by rng.IntRange.
func seedRandomScatter(f *field.Field, cfg *config.Config, rng element.RNG, width, height int, density float64) {
	floorY := height - 1
	f.SetInArea(geom.Point{X: width / 2, Y: floorY}, geom.Point{X: width, Y: 1},
		element.NewBlockWithDensity(cfg.Elements.Block.Density))

	total := width * (height - 1)
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := total - 1; i > 0; i-- {
		j := rng.IntRange(0, i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	placed := int(float64(total) * density)
	makers := []func() element.Element{
		func() element.Element { return element.Sand{Params: cfg.Elements.Sand.ToParams()} },
		func() element.Element { return element.Water{Params: cfg.Elements.Water.ToParams(rng)} },
		func() element.Element { return element.Oil{Params: cfg.Elements.Oil.ToParams(rng)} },
	}

	for i := 0; i < placed; i++ {
		x := idx[i] % width
		y := idx[i] / width
		maker := makers[rng.IntRange(0, len(makers)-1)]
		f.Set(geom.Point{X: x, Y: y}, maker())
	}
}

// seedScene dispatches to the named scene, falling back to a wide random
// scatter when name is unrecognised.
func seedScene(name string, f *field.Field, cfg *config.Config, rng element.RNG) {
	switch name {
	case "column":
		seedColumn(f, cfg)
	case "displacement":
		seedDisplacement(f, cfg, rng)
	case "acid":
		seedAcidPatch(f, cfg, rng)
	default:
		width := cfg.World.ChunkBoundsWidth * field.ChunkSize
		height := cfg.World.ChunkBoundsHeight * field.ChunkSize
		seedRandomScatter(f, cfg, rng, width, height, 0.05)
	}
}
