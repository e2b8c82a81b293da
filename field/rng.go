package field

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hevezolly/fallingsand/element"
)

// seededRNG adapts a private *rand.Rand into the element.RNG interface using
// gonum's distribution samplers rather than hand-rolled probability
// arithmetic. Nothing here is safe for concurrent use by more than one
// goroutine.
type seededRNG struct {
	src *rand.Rand
}

// NewRNG returns an element.RNG seeded with seed, owned by a single
// goroutine. The tick scheduler builds one per dispatched chunk task (so no
// RNG state is ever shared across goroutines); callers that need element
// randomness outside a dispatched update, such as scene seeding, construct
// their own.
func NewRNG(seed int64) element.RNG {
	return &seededRNG{src: rand.New(rand.NewSource(seed))}
}

// newTaskRNG derives a task's private RNG from the tick's base seed and the
// task's dispatch index.
func newTaskRNG(tickSeed int64, taskIndex int) element.RNG {
	return NewRNG(tickSeed + int64(taskIndex))
}

func (r *seededRNG) Bool() bool {
	return distuv.Bernoulli{P: 0.5, Src: r.src}.Rand() == 1
}

func (r *seededRNG) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return distuv.Bernoulli{P: p, Src: r.src}.Rand() == 1
}

func (r *seededRNG) IntRange(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	u := distuv.Uniform{Min: float64(lo), Max: float64(hi) + 1, Src: r.src}
	v := int(u.Rand())
	if v > hi {
		v = hi
	}
	return v
}
