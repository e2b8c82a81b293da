package element

import "github.com/hevezolly/fallingsand/geom"

const desolveChance = 0.07

// Acid is a Liquid variant that dissolves whatever it touches, losing one
// point of Strength per successful dissolution; it vanishes once Strength
// reaches zero. Its default physics match Water's (see NewAcid).
type Acid struct {
	Params   LiquidParams
	Strength int
}

// NewAcid constructs Acid with the given strength and Water-like physics,
// picking its initial side bias from rng.
func NewAcid(strength int, rng RNG) Acid {
	return Acid{Params: DefaultWaterParams(rng), Strength: strength}
}

func (a Acid) Kind() Kind                 { return KindAcid }
func (a Acid) Color() Color               { return Color{0x20, 0xe0, 0x20, 0xff} }
func (a Acid) Density() float64           { return a.Params.Density }
func (a Acid) liquidParams() LiquidParams { return a.Params }

func (a Acid) Refresh() Element {
	return Acid{Params: a.Params.refresh(), Strength: a.Strength}
}

// Update runs the Liquid movement algorithm; every placement (whether by
// falling, dispersing, or staying at rest) is accompanied by a dissolution
// pass at the destination.
func (a Acid) Update(pos geom.Point, ctx Context) {
	dest, params, ok := liquidDestination(a.Params, pos, ctx)
	if ok {
		moveAndDissolve(ctx, pos, dest, params, a.Strength)
		return
	}

	if params.StableTime < params.keepAliveWindow() {
		ctx.KeepAlive(pos)
	}
	params.StableTime++

	remaining := a.Strength - clearNeighbours(pos, ctx, a.Strength)
	if remaining > 0 {
		ctx.SetStatic(pos, Acid{Params: params, Strength: remaining})
	}
}

// moveAndDissolve clears from, dissolves around to, and writes the
// remaining Acid back at to if any strength is left.
func moveAndDissolve(ctx Context, from, to geom.Point, params LiquidParams, strength int) {
	ctx.Clear(from)
	remaining := strength - clearNeighbours(to, ctx, strength)
	if remaining > 0 {
		ctx.Set(to, Acid{Params: params, Strength: remaining})
	}
}

// clearNeighbours attempts to dissolve of and its 4 direct neighbours, in
// arbitrary order, each with probability desolveChance, skipping cells that
// hold an Acid with remaining strength or a Block. It stops once maxCleared
// cells have been removed and returns the number actually cleared.
func clearNeighbours(of geom.Point, ctx Context, maxCleared int) int {
	removed := 0
	targets := append(geom.Neighbours4(of), of)
	for _, n := range targets {
		el, ok, err := ctx.Get(n)
		if err != nil || !ok {
			continue
		}
		if acid, isAcid := el.(Acid); isAcid && acid.Strength > 0 {
			continue
		}
		if el.Kind() == KindBlock {
			continue
		}
		if ctx.RNG().Bernoulli(desolveChance) {
			removed++
			ctx.Clear(n)
			if removed >= maxCleared {
				break
			}
		}
	}
	return removed
}
