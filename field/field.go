package field

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hevezolly/fallingsand/element"
	"github.com/hevezolly/fallingsand/geom"
)

// PixelUpdate is one world coordinate whose color may have changed since
// the last LoadPixels call.
type PixelUpdate struct {
	Pos   geom.Point
	Color element.Color
}

// Field owns the full set of live chunks, the global parity, and the tick
// scheduler. Chunk structural changes (insertion, eviction) and the
// updated-cell log are protected by mu; individual chunks guard their own
// cells independently (see Chunk).
type Field struct {
	mu      sync.Mutex
	chunks  map[ChunkCoord]*Chunk
	bounds  geom.Rect // chunk-coordinate bounds, half-open
	threads int
	parity  bool

	updatedCells []geom.Point
}

// New constructs a Field capping chunk coordinates to bounds (in
// chunk-coordinate space) and dispatching up to threads chunk updates
// concurrently per tick.
func New(bounds geom.Rect, threads int) *Field {
	if threads < 1 {
		threads = 1
	}
	return &Field{
		chunks:  make(map[ChunkCoord]*Chunk),
		bounds:  bounds,
		threads: threads,
	}
}

// Get returns the element at a world position, if any.
func (f *Field) Get(pos geom.Point) (element.Element, bool) {
	f.mu.Lock()
	chunkCoord, local := globalToChunkLocal(pos)
	chunk := f.chunks[chunkCoord]
	f.mu.Unlock()
	if chunk == nil {
		return nil, false
	}
	return chunk.Get(local)
}

// Set places el at pos (nil clears the cell), creating the containing
// chunk if absent, and marks the cell and its 4-neighbourhood dirty so the
// next tick re-examines the surroundings. Writes outside the field's chunk
// boundaries are silently dropped.
func (f *Field) Set(pos geom.Point, el element.Element) {
	chunkCoord, local := globalToChunkLocal(pos)
	if !f.bounds.Contains(chunkCoord) {
		return
	}

	f.mu.Lock()
	chunk, ok := f.chunks[chunkCoord]
	if !ok {
		chunk = NewChunk(f.parity)
		f.chunks[chunkCoord] = chunk
	}
	f.updatedCells = append(f.updatedCells, pos)
	parity := f.parity
	f.mu.Unlock()

	if el != nil {
		chunk.Set(local, el, parity)
	} else {
		chunk.Clear(local)
	}
	chunk.MarkDirtyWithNeighbourhood(local)
}

// SetInArea applies Set to every cell in the w x h rectangle centered on
// center, clipped to the field's world boundaries.
func (f *Field) SetInArea(center geom.Point, size geom.Point, el element.Element) {
	rect := geom.RectFromCenter(center, size)

	top := max(rect.Top, f.bounds.Top*ChunkSize)
	left := max(rect.Left, f.bounds.Left*ChunkSize)
	bottom := min(rect.Bottom, f.bounds.Bottom*ChunkSize)
	right := min(rect.Right, f.bounds.Right*ChunkSize)

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			f.Set(geom.Point{X: x, Y: y}, el)
		}
	}
}

// Chunks returns the world-space rectangle of every live chunk, for debug
// overlays.
func (f *Field) Chunks() []geom.Rect {
	f.mu.Lock()
	defer f.mu.Unlock()

	rects := make([]geom.Rect, 0, len(f.chunks))
	for coord := range f.chunks {
		rects = append(rects, geom.Rect{
			Left:   coord.X * ChunkSize,
			Top:    coord.Y * ChunkSize,
			Right:  (coord.X + 1) * ChunkSize,
			Bottom: (coord.Y + 1) * ChunkSize,
		})
	}
	return rects
}

// ChunkUpdateRects returns the world-space rectangle of every live chunk's
// current sweep area, for debug overlays.
func (f *Field) ChunkUpdateRects() []geom.Rect {
	f.mu.Lock()
	chunks := make(map[ChunkCoord]*Chunk, len(f.chunks))
	for coord, chunk := range f.chunks {
		chunks[coord] = chunk
	}
	f.mu.Unlock()

	rects := make([]geom.Rect, 0, len(chunks))
	for coord, chunk := range chunks {
		rect := chunk.UpdateRect()
		rects = append(rects, geom.Rect{
			Left:   coord.X*ChunkSize + rect.Left,
			Top:    coord.Y*ChunkSize + rect.Top,
			Right:  coord.X*ChunkSize + rect.Right,
			Bottom: coord.Y*ChunkSize + rect.Bottom,
		})
	}
	return rects
}

// LoadPixels drains every world coordinate changed since the last call,
// paired with the color of its current occupant (transparent black if now
// empty).
func (f *Field) LoadPixels() []PixelUpdate {
	f.mu.Lock()
	pending := f.updatedCells
	f.updatedCells = nil
	f.mu.Unlock()

	result := make([]PixelUpdate, 0, len(pending))
	for _, pos := range pending {
		el, _ := f.Get(pos)
		var c element.Color // transparent black when the cell is now empty
		if el != nil {
			c = el.Color()
		}
		result = append(result, PixelUpdate{Pos: pos, Color: c})
	}
	return result
}

// CountByKind tallies the number of live elements of each kind across every
// chunk, for telemetry.
func (f *Field) CountByKind() map[element.Kind]int {
	f.mu.Lock()
	chunks := make([]*Chunk, 0, len(f.chunks))
	for _, chunk := range f.chunks {
		chunks = append(chunks, chunk)
	}
	f.mu.Unlock()

	counts := make(map[element.Kind]int)
	for _, chunk := range chunks {
		chunk.ForEach(func(_ Local, el element.Element) {
			counts[el.Kind()]++
		})
	}
	return counts
}

// Update advances the simulation by one tick, dispatching one goroutine per
// chunk with a non-empty sweep area (bounded to f.threads concurrently),
// reconciling deferred actions, flipping global parity and evicting empty
// chunks. tickSeed seeds every dispatched task's private RNG. It returns the
// number of deferred actions reconciled this tick, for telemetry.
func (f *Field) Update(ctx context.Context, tickSeed int64) (int, error) {
	f.mu.Lock()
	allChunks := make(map[ChunkCoord]*Chunk, len(f.chunks))
	for coord, chunk := range f.chunks {
		allChunks[coord] = chunk
	}
	bounds := f.bounds
	parity := f.parity
	f.mu.Unlock()

	for _, chunk := range allChunks {
		chunk.CommitTick()
	}

	type dispatched struct {
		coord ChunkCoord
	}
	var toRun []dispatched
	for coord, chunk := range allChunks {
		if chunk.NeedsUpdate() {
			toRun = append(toRun, dispatched{coord})
		}
	}

	results := make([]*ChunkContext, len(toRun))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.threads)

	for i, d := range toRun {
		i, d := i, d
		g.Go(func() (err error) {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("field: chunk %v update panicked: %v", d.coord, r)
				}
			}()

			neighbours := make(map[ChunkCoord]*Chunk, 8)
			for _, n := range geom.Neighbours8(d.coord) {
				if !bounds.Contains(n) {
					continue
				}
				neighbours[n] = allChunks[n] // nil if absent, matching the map semantics
			}

			chunkCtx := NewChunkContext(allChunks[d.coord], d.coord, neighbours, parity, newTaskRNG(tickSeed, i))
			updateChunkSweep(chunkCtx)
			results[i] = chunkCtx
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var deferredActions []DeferredAction
	var updatedCells []geom.Point
	for _, r := range results {
		if r == nil {
			continue
		}
		deferredActions = append(deferredActions, r.DeferredActions()...)
		updatedCells = append(updatedCells, r.UpdatedCoordinates()...)
	}

	f.mu.Lock()
	f.parity = !f.parity
	newParity := f.parity
	f.updatedCells = append(f.updatedCells, updatedCells...)

	for _, action := range deferredActions {
		chunk, ok := f.chunks[action.ChunkCoord]
		if !ok {
			chunk = NewChunk(newParity)
			f.chunks[action.ChunkCoord] = chunk
		}
		chunk.Set(action.Local, action.Element, newParity)
		f.updatedCells = append(f.updatedCells, localToGlobal(action.Local, action.ChunkCoord))
	}

	for coord, chunk := range f.chunks {
		if chunk.ElementCount() == 0 {
			delete(f.chunks, coord)
		}
	}
	f.mu.Unlock()

	return len(deferredActions), nil
}
