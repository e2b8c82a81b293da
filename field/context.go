package field

import (
	"github.com/hevezolly/fallingsand/element"
	"github.com/hevezolly/fallingsand/geom"
)

// DeferredAction is a write that could not be performed in-worker because
// its destination chunk did not yet exist; Field reconciles these between
// ticks.
type DeferredAction struct {
	ChunkCoord ChunkCoord
	Local      Local
	Element    element.Element
}

// ChunkContext is the per-chunk, per-tick view handed to a worker task: the
// chunk being updated, its 8 neighbours (nil entry meaning "in range but
// not yet created", missing entry meaning "outside the field's chunk
// boundaries"), and the accumulators a tick's reconciliation step drains.
// A ChunkContext is used by exactly one goroutine and must not outlive the
// task it was built for.
type ChunkContext struct {
	currentChunk      *Chunk
	currentChunkCoord ChunkCoord
	neighbours        map[ChunkCoord]*Chunk
	parity            bool
	rng               element.RNG

	deferredActions    []DeferredAction
	updatedCoordinates []geom.Point
}

// NewChunkContext builds a context for updating chunk at coord, given its
// neighbour map (see ChunkContext doc), the global parity at dispatch time,
// and the task's private RNG.
func NewChunkContext(chunk *Chunk, coord ChunkCoord, neighbours map[ChunkCoord]*Chunk, parity bool, rng element.RNG) *ChunkContext {
	return &ChunkContext{
		currentChunk:      chunk,
		currentChunkCoord: coord,
		neighbours:        neighbours,
		parity:            parity,
		rng:               rng,
	}
}

// CurrentChunk returns the chunk this context was built to update.
func (c *ChunkContext) CurrentChunk() *Chunk { return c.currentChunk }

// CurrentChunkCoord returns the coordinate of the chunk being updated.
func (c *ChunkContext) CurrentChunkCoord() ChunkCoord { return c.currentChunkCoord }

// Parity returns the global parity value at dispatch time.
func (c *ChunkContext) Parity() bool { return c.parity }

// DeferredActions returns the writes this task could not perform because
// their destination chunk was absent. The accumulator is not reset.
func (c *ChunkContext) DeferredActions() []DeferredAction { return c.deferredActions }

// UpdatedCoordinates returns the world positions this task wrote to. The
// accumulator is not reset.
func (c *ChunkContext) UpdatedCoordinates() []geom.Point { return c.updatedCoordinates }

func (c *ChunkContext) isInNeighbourRange(coord ChunkCoord) bool {
	return abs(coord.X-c.currentChunkCoord.X) <= 1 && abs(coord.Y-c.currentChunkCoord.Y) <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Get implements element.Context.
func (c *ChunkContext) Get(pos geom.Point) (element.Element, bool, error) {
	chunkCoord, local := globalToChunkLocal(pos)
	if !c.isInNeighbourRange(chunkCoord) {
		return nil, false, element.ErrOutOfRange
	}
	if chunkCoord == c.currentChunkCoord {
		el, ok := c.currentChunk.Get(local)
		return el, ok, nil
	}
	chunk, known := c.neighbours[chunkCoord]
	if !known {
		return nil, false, element.ErrOutOfRange
	}
	if chunk == nil {
		return nil, false, nil
	}
	el, ok := chunk.Get(local)
	return el, ok, nil
}

// ReachableEmptyOrFitting implements element.Context.
func (c *ChunkContext) ReachableEmptyOrFitting(pos geom.Point, pred func(element.Element) bool) bool {
	el, ok, err := c.Get(pos)
	if err != nil {
		return false
	}
	if !ok {
		return true
	}
	return pred(el)
}

// ReachableAndFitting implements element.Context.
func (c *ChunkContext) ReachableAndFitting(pos geom.Point, pred func(element.Element, bool) bool) bool {
	el, ok, err := c.Get(pos)
	if err != nil {
		return false
	}
	return pred(el, ok)
}

// Set implements element.Context.
func (c *ChunkContext) Set(pos geom.Point, el element.Element) {
	c.setInternal(pos, el, true)
}

// SetStatic implements element.Context.
func (c *ChunkContext) SetStatic(pos geom.Point, el element.Element) {
	c.setInternal(pos, el, false)
}

func (c *ChunkContext) setInternal(pos geom.Point, el element.Element, keepAdjacentAlive bool) {
	chunkCoord, local := globalToChunkLocal(pos)
	if !c.isInNeighbourRange(chunkCoord) {
		return
	}

	if chunkCoord == c.currentChunkCoord {
		c.currentChunk.Set(local, el, !c.parity)
	} else if chunk, known := c.neighbours[chunkCoord]; known {
		if chunk == nil {
			c.deferredActions = append(c.deferredActions, DeferredAction{
				ChunkCoord: chunkCoord,
				Local:      local,
				Element:    el,
			})
			return
		}
		chunk.Set(local, el, !c.parity)
	} else {
		return
	}

	c.updatedCoordinates = append(c.updatedCoordinates, pos)
	if keepAdjacentAlive {
		c.keepAdjacentCellsAlive(pos)
	}
}

// Clear implements element.Context. Unlike Set/SetStatic, a Clear targeting
// a chunk that does not exist still records the update and pokes
// neighbours alive: there is nothing to defer, clearing an absent chunk is
// a no-op by construction.
func (c *ChunkContext) Clear(pos geom.Point) {
	chunkCoord, local := globalToChunkLocal(pos)
	if !c.isInNeighbourRange(chunkCoord) {
		return
	}

	if chunkCoord == c.currentChunkCoord {
		c.currentChunk.Clear(local)
	} else if chunk, known := c.neighbours[chunkCoord]; known && chunk != nil {
		chunk.Clear(local)
	}

	c.updatedCoordinates = append(c.updatedCoordinates, pos)
	c.keepAdjacentCellsAlive(pos)
}

// MoveFromTo implements element.Context.
func (c *ChunkContext) MoveFromTo(from, to geom.Point, el element.Element) {
	other, ok, _ := c.Get(to)
	c.Set(to, el)
	if ok {
		c.Set(from, other)
	} else {
		c.Clear(from)
	}
}

// KeepAlive implements element.Context.
func (c *ChunkContext) KeepAlive(pos geom.Point) {
	chunkCoord, local := globalToChunkLocal(pos)
	if !c.isInNeighbourRange(chunkCoord) {
		return
	}
	if chunkCoord == c.currentChunkCoord {
		c.KeepAliveLocal(local)
		return
	}
	if chunk, known := c.neighbours[chunkCoord]; known && chunk != nil {
		chunk.MarkDirty(local)
	}
}

// KeepAliveLocal marks local (within the current chunk) to be re-examined
// next tick without rewriting it. Exposed directly for the sweep's
// "already updated by a neighbour" branch, which never leaves the current
// chunk.
func (c *ChunkContext) KeepAliveLocal(local Local) {
	c.currentChunk.MarkDirty(local)
}

// RNG implements element.Context.
func (c *ChunkContext) RNG() element.RNG { return c.rng }

// keepAdjacentCellsAlive refreshes the 8 cells surrounding pos: each
// containing chunk (current or neighbour) has that local cell added to its
// next sweep area, and if it holds an element, the element is refreshed in
// place with its existing parity preserved (not flipped, unlike a normal
// Set) so the refresh itself never marks the cell as processed this tick.
func (c *ChunkContext) keepAdjacentCellsAlive(pos geom.Point) {
	for _, n := range geom.Neighbours8(pos) {
		chunkCoord, local := globalToChunkLocal(n)

		var chunk *Chunk
		if chunkCoord == c.currentChunkCoord {
			chunk = c.currentChunk
		} else if neighbour, known := c.neighbours[chunkCoord]; known && neighbour != nil {
			chunk = neighbour
		} else {
			continue
		}

		chunk.MarkDirty(local)
		if el, ok := chunk.Get(local); ok {
			parity := chunk.Parity(local)
			chunk.Set(local, el.Refresh(), parity)
		}
	}
}
