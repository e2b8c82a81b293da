// Package field implements the chunked grid, its per-cell update context,
// and the tick scheduler that dispatches chunk updates to a bounded worker
// pool.
package field

import (
	"sync"

	"github.com/hevezolly/fallingsand/element"
	"github.com/hevezolly/fallingsand/geom"
)

// ChunkSize is the fixed width and height of every chunk.
const ChunkSize = 32

// Local is a coordinate within a chunk, in [0, ChunkSize).
type Local = geom.Point

// Chunk is a fixed ChunkSize x ChunkSize tile of cells, each either empty
// or holding an Element, along with the per-cell parity flags and dirty
// rects that drive the tick scheduler. Every exported method locks the
// chunk for the minimal duration of its own operation; callers never hold
// a chunk's lock across more than one call.
type Chunk struct {
	mu                sync.RWMutex
	cells             [ChunkSize][ChunkSize]element.Element
	cellParity        [ChunkSize][ChunkSize]bool
	currentUpdateArea geom.Rect
	nextUpdateArea    geom.Rect
	elementCount      int
}

// NewChunk constructs an empty chunk whose cells all start at the given
// parity (matching the field's current global parity at creation time).
func NewChunk(parity bool) *Chunk {
	c := &Chunk{}
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			c.cellParity[y][x] = parity
		}
	}
	return c
}

// NeedsUpdate reports whether this chunk has a non-empty sweep area for the
// tick currently in progress.
func (c *Chunk) NeedsUpdate() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentUpdateArea.HasValue()
}

// Get returns the element at local, or ok=false if empty.
func (c *Chunk) Get(local Local) (element.Element, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	el := c.cells[local.Y][local.X]
	return el, el != nil
}

// Parity returns the per-cell parity flag at local.
func (c *Chunk) Parity(local Local) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cellParity[local.Y][local.X]
}

// Set writes el at local with the given parity, growing the chunk's dirty
// rect and element count as needed.
func (c *Chunk) Set(local Local, el element.Element, parity bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cells[local.Y][local.X] == nil {
		c.elementCount++
		c.nextUpdateArea = c.nextUpdateArea.Expand(local)
	}
	c.cellParity[local.Y][local.X] = parity
	c.cells[local.Y][local.X] = el
}

// Clear removes any element at local. Unlike Set it does not touch the
// chunk's dirty rect; callers that need the surrounding area re-examined
// (e.g. ChunkContext.Clear) must mark it dirty themselves.
func (c *Chunk) Clear(local Local) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cells[local.Y][local.X] != nil {
		c.elementCount--
	}
	c.cells[local.Y][local.X] = nil
}

// MarkDirty expands the next sweep area to include local.
func (c *Chunk) MarkDirty(local Local) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextUpdateArea = c.nextUpdateArea.Expand(local)
}

// MarkDirtyWithNeighbourhood expands the next sweep area to include local
// and its 4 axis-aligned neighbours, clamped to chunk bounds. Used for
// writes originating outside a worker task (e.g. the demo harness seeding
// cells), so the following tick re-examines the surrounding cells too.
func (c *Chunk) MarkDirtyWithNeighbourhood(local Local) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextUpdateArea = c.nextUpdateArea.Expand(local)
	bounds := geom.Rect{Left: 0, Top: 0, Right: ChunkSize, Bottom: ChunkSize}
	for _, n := range geom.Neighbours4(local) {
		if bounds.Contains(n) {
			c.nextUpdateArea = c.nextUpdateArea.Expand(n)
		}
	}
}

// CommitTick fixes this tick's sweep area from the accumulator built up
// since the last tick, and resets the accumulator.
func (c *Chunk) CommitTick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentUpdateArea = c.nextUpdateArea
	c.nextUpdateArea = geom.Rect{}
}

// UpdateRect returns this tick's fixed sweep area.
func (c *Chunk) UpdateRect() geom.Rect {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentUpdateArea
}

// ElementCount returns the number of occupied cells.
func (c *Chunk) ElementCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.elementCount
}

// ForEach calls visit once per occupied cell, in row-major order.
func (c *Chunk) ForEach(visit func(local Local, el element.Element)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			if el := c.cells[y][x]; el != nil {
				visit(Local{X: x, Y: y}, el)
			}
		}
	}
}
