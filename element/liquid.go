package element

import "github.com/hevezolly/fallingsand/geom"

// DefaultWaterParams returns the physics payload used by NewWater. Side is
// randomized per spawn via the supplied RNG.
func DefaultWaterParams(rng RNG) LiquidParams {
	return LiquidParams{
		Side:             randomSide(rng),
		MoveTime:         100,
		DisperseDistance: 10,
		Density:          7,
		SlipThroughProb:  0.02,
	}
}

// DefaultOilParams returns the physics payload used by NewOil.
func DefaultOilParams(rng RNG) LiquidParams {
	return LiquidParams{
		Side:             randomSide(rng),
		MoveTime:         60,
		DisperseDistance: 2,
		Density:          2,
	}
}

func randomSide(rng RNG) int {
	if rng.Bool() {
		return 1
	}
	return -1
}

// Water is the ordinary wetting liquid; Sand resting beside it converts to
// WetSand.
type Water struct {
	Params LiquidParams
}

// NewWater constructs Water with default physics, picking its initial side
// bias from rng.
func NewWater(rng RNG) Water { return Water{Params: DefaultWaterParams(rng)} }

func (w Water) Kind() Kind                  { return KindWater }
func (w Water) Color() Color                { return Color{0x00, 0x50, 0xff, 0xff} }
func (w Water) Density() float64            { return w.Params.Density }
func (w Water) liquidParams() LiquidParams  { return w.Params }

func (w Water) Update(pos geom.Point, ctx Context) {
	liquidUpdate(w.Params, pos, ctx, func(p LiquidParams, _ geom.Point, _ Context) Element {
		return Water{Params: p}
	})
}

func (w Water) Refresh() Element { return Water{Params: w.Params.refresh()} }

// Oil is a low-density liquid that never wets Sand.
type Oil struct {
	Params LiquidParams
}

// NewOil constructs Oil with default physics, picking its initial side bias
// from rng.
func NewOil(rng RNG) Oil { return Oil{Params: DefaultOilParams(rng)} }

func (o Oil) Kind() Kind                 { return KindOil }
func (o Oil) Color() Color               { return Color{0x33, 0x33, 0x10, 0xff} }
func (o Oil) Density() float64           { return o.Params.Density }
func (o Oil) liquidParams() LiquidParams { return o.Params }

func (o Oil) Update(pos geom.Point, ctx Context) {
	liquidUpdate(o.Params, pos, ctx, func(p LiquidParams, _ geom.Point, _ Context) Element {
		return Oil{Params: p}
	})
}

func (o Oil) Refresh() Element { return Oil{Params: o.Params.refresh()} }

// liquidMoveFunc builds the move predicate shared by every Liquid-shaped
// element: static solids never yield, and two liquids with identical
// physics never displace one another.
func liquidMoveFunc(params LiquidParams, rng RNG) func(Element) bool {
	return func(e Element) bool {
		if isStatic(e) {
			return false
		}
		prob := rng.Bernoulli(densitySwapProb(e.Density(), params.Density, params.SlipThroughProb))
		if other, ok := e.(liquidLike); ok {
			return !params.samePhysics(other.liquidParams()) && prob
		}
		return prob
	}
}

// liquidDestination computes where a Liquid-shaped element would move this
// tick, returning ok=false if it should stay put. It does not perform the
// write itself so callers (Water/Oil vs Acid) can apply their own
// move/dissolve semantics at the destination.
func liquidDestination(params LiquidParams, pos geom.Point, ctx Context) (dest geom.Point, newParams LiquidParams, ok bool) {
	rng := ctx.RNG()
	moveFunc := liquidMoveFunc(params, rng)

	belowPos := below(pos)
	if ctx.ReachableEmptyOrFitting(belowPos, moveFunc) {
		newParams = params
		newParams.StableTime = 0
		return belowPos, newParams, true
	}

	if params.StableTime >= params.MoveTime {
		return geom.Point{}, params, false
	}

	moveDistance := rng.IntRange(1, params.DisperseDistance)
	side := params.Side
	doMove := false
	destX := pos.X + side*moveDistance
	adjacent := geom.Point{X: pos.X + side, Y: pos.Y}

	if ctx.ReachableEmptyOrFitting(adjacent, func(e Element) bool { return e.Density() < params.Density }) {
		doMove = true
	} else {
		side = -side
		adjacent = geom.Point{X: pos.X + side, Y: pos.Y}
		if ctx.ReachableEmptyOrFitting(adjacent, func(e Element) bool { return e.Density() < params.Density }) {
			doMove = true
			destX = pos.X + side*moveDistance
		}
	}

	// The side flip (if the first direction failed) is persisted regardless
	// of whether the second direction ends up usable.
	params.Side = side

	if !doMove {
		return geom.Point{}, params, false
	}

	target := availablePoint(pos, geom.Point{X: destX, Y: pos.Y}, ctx, func(el Element, ok bool) bool {
		return !ok || moveFunc(el)
	})
	newDest := below(target)
	if !ctx.ReachableEmptyOrFitting(newDest, func(e Element) bool { return e.Density() < params.Density }) {
		newDest = target
	}
	if newDest == pos || !ctx.ReachableEmptyOrFitting(newDest, moveFunc) {
		return geom.Point{}, params, false
	}

	newParams = params
	newParams.StableTime = 0
	return newDest, newParams, true
}

// liquidUpdate runs the shared algorithm for Water and Oil: compute a
// destination via liquidDestination and either move there or settle,
// writing through convert in both cases.
func liquidUpdate(params LiquidParams, pos geom.Point, ctx Context, convert func(LiquidParams, geom.Point, Context) Element) {
	dest, params, ok := liquidDestination(params, pos, ctx)
	if ok {
		ctx.MoveFromTo(pos, dest, convert(params, dest, ctx))
		return
	}

	if params.StableTime < params.keepAliveWindow() {
		ctx.KeepAlive(pos)
	}
	params.StableTime++
	ctx.SetStatic(pos, convert(params, pos, ctx))
}
