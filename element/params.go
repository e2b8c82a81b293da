package element

import "math"

// MovableSolidParams is the physics payload shared by Sand and WetSand.
type MovableSolidParams struct {
	Density             float64
	SlipThroughProb     float64
	MoveTime            int
	DisperseDistance    int
	KeepAliveExtraTime  int
	HasKeepAliveExtra   bool
	FlowCoefficient     float64
	UnstuckSpeed        int
	StableTime          int
	IsFalling           bool
}

// samePhysics reports whether two MovableSolids share the same physics
// shape, ignoring the transient StableTime/IsFalling fields.
func (p MovableSolidParams) samePhysics(o MovableSolidParams) bool {
	return p.FlowCoefficient == o.FlowCoefficient &&
		p.MoveTime == o.MoveTime &&
		p.UnstuckSpeed == o.UnstuckSpeed &&
		p.DisperseDistance == o.DisperseDistance &&
		p.Density == o.Density &&
		p.SlipThroughProb == o.SlipThroughProb
}

func (p MovableSolidParams) keepAliveWindow() int {
	if p.HasKeepAliveExtra {
		return p.KeepAliveExtraTime
	}
	return p.MoveTime
}

// refresh lowers StableTime by UnstuckSpeed, floored at 0.
func (p MovableSolidParams) refresh() MovableSolidParams {
	p.StableTime = max(0, p.StableTime-p.UnstuckSpeed)
	return p
}

// LiquidParams is the physics payload shared by Water, Oil and Acid.
type LiquidParams struct {
	Side               int
	DisperseDistance   int
	MoveTime           int
	KeepAliveExtraTime int
	HasKeepAliveExtra  bool
	Density            float64
	StableTime         int
	SlipThroughProb    float64
}

// samePhysics compares the physics shape of two Liquids. Side and
// StableTime are excluded, since they're transient per-instance state.
func (p LiquidParams) samePhysics(o LiquidParams) bool {
	return p.MoveTime == o.MoveTime &&
		p.DisperseDistance == o.DisperseDistance &&
		p.Density == o.Density &&
		p.SlipThroughProb == o.SlipThroughProb
}

func (p LiquidParams) keepAliveWindow() int {
	if p.HasKeepAliveExtra {
		return p.KeepAliveExtraTime
	}
	return p.MoveTime
}

func (p LiquidParams) refresh() LiquidParams {
	p.StableTime = 0
	return p
}

// densitySwapProb is the probability that an element of density myDensity
// displaces a neighbour of density otherDensity: higher density is harder
// to push through, floored at the mover's slip-through probability.
func densitySwapProb(otherDensity, myDensity, slipThroughProb float64) float64 {
	return math.Max(1-otherDensity/myDensity, slipThroughProb)
}

// movableSolidLike is implemented by every element whose movement behaves
// like a MovableSolid (Sand, WetSand), so move predicates can detect
// "identical neighbour, don't displace" without a type switch per kind.
type movableSolidLike interface {
	solidParams() MovableSolidParams
}

// liquidLike is implemented by every element whose movement behaves like a
// Liquid (Water, Oil, Acid).
type liquidLike interface {
	liquidParams() LiquidParams
}

// isStatic reports whether e is a StaticSolid (Block): such elements never
// yield to a move.
func isStatic(e Element) bool {
	return e.Kind() == KindBlock
}
