package element

import "github.com/hevezolly/fallingsand/geom"

const wetSandDryTime = 600

// DefaultSandParams returns the physics payload used by NewSand.
func DefaultSandParams() MovableSolidParams {
	return MovableSolidParams{
		IsFalling:        true,
		FlowCoefficient:  2,
		MoveTime:         20,
		UnstuckSpeed:     20,
		DisperseDistance: 3,
		Density:          10,
		SlipThroughProb:  0,
	}
}

// DefaultWetSandParams returns the physics payload used by NewWetSand.
func DefaultWetSandParams() MovableSolidParams {
	return MovableSolidParams{
		IsFalling:          true,
		FlowCoefficient:    0.3,
		MoveTime:           10,
		UnstuckSpeed:       10,
		DisperseDistance:   2,
		Density:            10.1,
		SlipThroughProb:    0,
		KeepAliveExtraTime: wetSandDryTime,
		HasKeepAliveExtra:  true,
	}
}

// Sand is a dry MovableSolid that converts to WetSand when it rests next to
// Water.
type Sand struct {
	Params MovableSolidParams
}

// NewSand constructs Sand with its default physics.
func NewSand() Sand { return Sand{Params: DefaultSandParams()} }

func (s Sand) Kind() Kind       { return KindSand }
func (s Sand) Color() Color     { return Color{0xff, 0xff, 0x00, 0xff} }
func (s Sand) Density() float64 { return s.Params.Density }
func (s Sand) solidParams() MovableSolidParams { return s.Params }

func (s Sand) Update(pos geom.Point, ctx Context) {
	movableSolidUpdate(s.Params, pos, ctx, sandConvert)
}

func (s Sand) Refresh() Element {
	return Sand{Params: s.Params.refresh()}
}

// sandConvert checks Sand's 4-neighbourhood for Water at placement time; if
// present the cell becomes WetSand instead.
func sandConvert(p MovableSolidParams, pos geom.Point, ctx Context) Element {
	if hasAdjacentWater(pos, ctx) {
		ws := DefaultWetSandParams()
		ws.StableTime = p.StableTime
		ws.IsFalling = p.IsFalling
		return WetSand{Params: ws, Dryness: 0}
	}
	return Sand{Params: p}
}

// WetSand is Sand with accumulated dryness; it reverts to Sand after
// wetSandDryTime consecutive own-updates with no adjacent Water.
type WetSand struct {
	Params  MovableSolidParams
	Dryness int
}

// NewWetSand constructs WetSand with its default physics and dryness 0.
func NewWetSand() WetSand { return WetSand{Params: DefaultWetSandParams()} }

func (w WetSand) Kind() Kind       { return KindWetSand }
func (w WetSand) Color() Color     { return Color{0xb3, 0xb3, 0x00, 0xff} }
func (w WetSand) Density() float64 { return w.Params.Density }
func (w WetSand) solidParams() MovableSolidParams { return w.Params }

func (w WetSand) Update(pos geom.Point, ctx Context) {
	movableSolidUpdate(w.Params, pos, ctx, func(p MovableSolidParams, pos geom.Point, ctx Context) Element {
		newDryness := w.Dryness + 1
		if hasAdjacentWater(pos, ctx) {
			newDryness = 0
		}
		if newDryness >= wetSandDryTime {
			return Sand{Params: DefaultSandParams()}
		}
		return WetSand{Params: p, Dryness: newDryness}
	})
}

func (w WetSand) Refresh() Element {
	return WetSand{Params: w.Params.refresh(), Dryness: w.Dryness}
}

func hasAdjacentWater(pos geom.Point, ctx Context) bool {
	for _, n := range geom.Neighbours4(pos) {
		if ctx.ReachableAndFitting(n, func(el Element, ok bool) bool {
			return ok && el.Kind() == KindWater
		}) {
			return true
		}
	}
	return false
}

// movableSolidUpdate runs the shared gravity/dispersion algorithm common to
// every MovableSolid-shaped element. convert is called once a resting
// position for this tick is known, producing the Element value actually
// written back (allowing Sand<->WetSand conversion at placement time).
func movableSolidUpdate(params MovableSolidParams, pos geom.Point, ctx Context, convert func(MovableSolidParams, geom.Point, Context) Element) {
	rng := ctx.RNG()
	dest0 := below(pos)

	moveFunc := func(e Element) bool {
		if isStatic(e) {
			return false
		}
		prob := rng.Bernoulli(densitySwapProb(e.Density(), params.Density, params.SlipThroughProb))
		if other, ok := e.(movableSolidLike); ok {
			return !params.samePhysics(other.solidParams()) && prob
		}
		return prob
	}

	if ctx.ReachableEmptyOrFitting(dest0, moveFunc) {
		p := params
		p.StableTime = 0
		p.IsFalling = false
		ctx.MoveFromTo(pos, dest0, convert(p, dest0, ctx))
		return
	}

	k := int(params.FlowCoefficient * float64(params.MoveTime))
	chance := rng.IntRange(min(0, k), k)

	if chance >= params.StableTime {
		side := -1
		if rng.Bool() {
			side = 1
		}
		doMove := false
		destX := pos.X + side*params.DisperseDistance
		adjacent := geom.Point{X: pos.X + side, Y: pos.Y}

		if ctx.ReachableEmptyOrFitting(adjacent, moveFunc) {
			doMove = true
		} else {
			side = -side
			adjacent = geom.Point{X: pos.X + side, Y: pos.Y}
			if ctx.ReachableEmptyOrFitting(adjacent, moveFunc) {
				doMove = true
				destX = pos.X + side*params.DisperseDistance
			}
		}

		if doMove {
			dest := availablePoint(pos, geom.Point{X: destX, Y: pos.Y}, ctx, func(el Element, ok bool) bool {
				return !ok || moveFunc(el)
			})
			dest = below(dest)
			if ctx.ReachableEmptyOrFitting(dest, func(e Element) bool {
				return e.Density() < params.Density || moveFunc(e)
			}) {
				p := params
				p.StableTime = 0
				ctx.MoveFromTo(pos, dest, convert(p, dest, ctx))
				return
			}
		}
	}

	if params.StableTime < params.keepAliveWindow() {
		ctx.KeepAlive(pos)
	}
	p := params
	p.StableTime++
	ctx.SetStatic(pos, convert(p, pos, ctx))
}
