package element

import (
	"testing"

	"github.com/hevezolly/fallingsand/geom"
)

func TestWaterFallsIntoEmptySpaceBelow(t *testing.T) {
	ctx := newFakeContext(neverRNG())
	pos := geom.Point{X: 0, Y: 0}
	NewWater(neverRNG()).Update(pos, ctx)

	el, ok, _ := ctx.Get(geom.Point{X: 0, Y: 1})
	if !ok || el.Kind() != KindWater {
		t.Fatalf("expected Water at (0,1), got %+v (ok=%v)", el, ok)
	}
}

func TestWaterDoesNotDisplaceDenserSand(t *testing.T) {
	// Sand (density 10) sits below Water (density 7); density_swap_prob
	// caps out at the mover's slip-through probability, and neverRNG always
	// fails the Bernoulli draw, so Water must not fall through.
	ctx := newFakeContext(neverRNG())
	pos := geom.Point{X: 0, Y: 0}
	below := geom.Point{X: 0, Y: 1}
	ctx.Set(below, NewSand())

	NewWater(neverRNG()).Update(pos, ctx)

	el, ok, _ := ctx.Get(below)
	if !ok || el.Kind() != KindSand {
		t.Fatalf("Sand should remain undisturbed at %+v, got %+v (ok=%v)", below, el, ok)
	}
}

func TestIdenticalLiquidsDoNotDisplaceEachOther(t *testing.T) {
	ctx := newFakeContext(alwaysRNG())
	pos := geom.Point{X: 0, Y: 0}
	ctx.Set(geom.Point{X: 0, Y: 1}, NewWater(alwaysRNG()))
	ctx.Set(geom.Point{X: 1, Y: 0}, NewBlock())
	ctx.Set(geom.Point{X: -1, Y: 0}, NewBlock())

	NewWater(alwaysRNG()).Update(pos, ctx)

	if _, ok, _ := ctx.Get(pos); !ok {
		t.Errorf("identical Water below and blocked sides should leave the mover in place")
	}
}

func TestOilIsLessDenseThanWater(t *testing.T) {
	oil := NewOil(neverRNG())
	water := NewWater(neverRNG())
	if oil.Density() >= water.Density() {
		t.Errorf("Oil density (%v) should be lower than Water (%v)", oil.Density(), water.Density())
	}
}
