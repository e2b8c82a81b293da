// Package element implements the per-cell physics rules: movable solids
// (sand, wet sand), liquids (water, oil, acid) and static solids (block).
// Every rule is expressed purely against the Context interface so that the
// field package can supply chunk-aware reads/writes without element
// importing field (which would create an import cycle, since field's
// chunks hold Elements).
package element

import (
	"errors"

	"github.com/hevezolly/fallingsand/geom"
)

// ErrOutOfRange is returned by Context.Get when the requested position is
// further than one chunk away from the chunk currently being updated.
var ErrOutOfRange = errors.New("element: position out of range")

// Kind identifies the concrete element variant occupying a cell. It is used
// for rendering and for save/diagnostic purposes; rule dispatch itself goes
// through the Element interface, never a switch on Kind.
type Kind int

const (
	KindSand Kind = iota
	KindWetSand
	KindWater
	KindOil
	KindAcid
	KindBlock
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindSand:
		return "Sand"
	case KindWetSand:
		return "WetSand"
	case KindWater:
		return "Water"
	case KindOil:
		return "Oil"
	case KindAcid:
		return "Acid"
	case KindBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// Color is a packed RGBA8 color.
type Color [4]byte

// Element is the behavior every cell occupant implements. A cell update
// calls Update once per eligible tick; Refresh is called when a neighbour
// cell is disturbed (the "keep adjacent alive" mechanism) without running
// a full Update.
type Element interface {
	Kind() Kind
	Color() Color
	Density() float64
	Update(pos geom.Point, ctx Context)
	Refresh() Element
}

// RNG is the randomness source an element rule draws from. Implementations
// must be safe for use by exactly one goroutine at a time (the field
// package hands each dispatched chunk task its own RNG, so no locking is
// required inside implementations).
type RNG interface {
	// Bool returns a fair coin flip, used to pick an initial lateral side.
	Bool() bool
	// Bernoulli returns true with probability p (clamped to [0, 1]).
	Bernoulli(p float64) bool
	// IntRange returns a uniformly distributed integer in [lo, hi], inclusive
	// of both ends. Callers must ensure lo <= hi.
	IntRange(lo, hi int) int
}

// Context is the sole conduit an element rule uses to read or write world
// state. Every method that targets a position further than one chunk away
// from the chunk being updated behaves as documented per-method; none of
// them propagate errors beyond what is stated, matching the "OutOfRange is
// silent" policy of the core's error design.
type Context interface {
	// Get returns the element at pos, or ok=false if the cell is empty.
	// err is ErrOutOfRange if pos is not reachable from the chunk being
	// updated.
	Get(pos geom.Point) (el Element, ok bool, err error)

	// ReachableEmptyOrFitting reports whether pos is reachable and either
	// empty or occupied by an element matching pred. Returns false on
	// ErrOutOfRange.
	ReachableEmptyOrFitting(pos geom.Point, pred func(Element) bool) bool

	// ReachableAndFitting reports whether pos is reachable and pred matches
	// its current content (nil if empty). Returns false on ErrOutOfRange.
	ReachableAndFitting(pos geom.Point, pred func(el Element, ok bool) bool) bool

	// Set writes el at pos, flips the cell's parity to "already processed"
	// and pokes the 8 surrounding cells alive.
	Set(pos geom.Point, el Element)

	// SetStatic writes el at pos like Set, but does not poke neighbours:
	// used when a rule concludes the element is at rest this tick.
	SetStatic(pos geom.Point, el Element)

	// Clear removes any element at pos and pokes neighbours alive.
	Clear(pos geom.Point)

	// MoveFromTo places el at to; if to was occupied, its prior occupant is
	// moved back to from (a swap), otherwise from is cleared.
	MoveFromTo(from, to geom.Point, el Element)

	// KeepAlive marks pos to be re-examined next tick without rewriting it.
	KeepAlive(pos geom.Point)

	// RNG returns the per-task random source for this update.
	RNG() RNG
}
