package element

import "github.com/hevezolly/fallingsand/geom"

// fakeRNG is a deterministic element.RNG double: bernoulli reports whether a
// draw at probability p "succeeds", letting tests pin down which branch of a
// probabilistic rule runs without relying on real randomness.
type fakeRNG struct {
	boolVal   bool
	bernoulli func(p float64) bool
	intRange  func(lo, hi int) int
}

func (r fakeRNG) Bool() bool                  { return r.boolVal }
func (r fakeRNG) Bernoulli(p float64) bool    { return r.bernoulli(p) }
func (r fakeRNG) IntRange(lo, hi int) int     { return r.intRange(lo, hi) }

// neverRNG fails every Bernoulli draw and always picks the lower bound of a
// range; useful for asserting a rule that should not rely on luck.
func neverRNG() RNG {
	return fakeRNG{
		boolVal:   true,
		bernoulli: func(float64) bool { return false },
		intRange:  func(lo, _ int) int { return lo },
	}
}

// alwaysRNG succeeds every Bernoulli draw and always picks the upper bound;
// useful for asserting a rule that should trigger given enough luck.
func alwaysRNG() RNG {
	return fakeRNG{
		boolVal:   true,
		bernoulli: func(float64) bool { return true },
		intRange:  func(_, hi int) int { return hi },
	}
}

// fakeContext is a minimal, unbounded in-memory Context double: unlike the
// field package's ChunkContext it never returns OutOfRange, which keeps
// element-rule tests focused on the rule's own logic.
type fakeContext struct {
	cells map[geom.Point]Element
	rng   RNG
}

func newFakeContext(rng RNG) *fakeContext {
	return &fakeContext{cells: make(map[geom.Point]Element), rng: rng}
}

func (c *fakeContext) Get(pos geom.Point) (Element, bool, error) {
	el, ok := c.cells[pos]
	return el, ok, nil
}

func (c *fakeContext) ReachableEmptyOrFitting(pos geom.Point, pred func(Element) bool) bool {
	el, ok, _ := c.Get(pos)
	if !ok {
		return true
	}
	return pred(el)
}

func (c *fakeContext) ReachableAndFitting(pos geom.Point, pred func(Element, bool) bool) bool {
	el, ok, _ := c.Get(pos)
	return pred(el, ok)
}

func (c *fakeContext) Set(pos geom.Point, el Element) { c.cells[pos] = el }

func (c *fakeContext) SetStatic(pos geom.Point, el Element) { c.cells[pos] = el }

func (c *fakeContext) Clear(pos geom.Point) { delete(c.cells, pos) }

func (c *fakeContext) MoveFromTo(from, to geom.Point, el Element) {
	other, ok := c.cells[to]
	c.cells[to] = el
	if ok {
		c.cells[from] = other
	} else {
		delete(c.cells, from)
	}
}

func (c *fakeContext) KeepAlive(geom.Point) {}

func (c *fakeContext) RNG() RNG { return c.rng }
