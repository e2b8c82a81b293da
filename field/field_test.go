package field

import (
	"context"
	"testing"

	"github.com/hevezolly/fallingsand/element"
	"github.com/hevezolly/fallingsand/geom"
)

func bigBounds() geom.Rect {
	return geom.Rect{Left: -4, Top: -4, Right: 4, Bottom: 4}
}

func TestFieldSetThenGetRoundTrips(t *testing.T) {
	f := New(bigBounds(), 2)
	pos := geom.Point{X: 10, Y: 10}
	f.Set(pos, element.NewBlock())

	el, ok := f.Get(pos)
	if !ok || el.Kind() != element.KindBlock {
		t.Fatalf("Get(%+v) = %+v, %v, want Block", pos, el, ok)
	}
}

func TestFieldSandFallsOneCellPerTick(t *testing.T) {
	f := New(bigBounds(), 2)
	pos := geom.Point{X: 5, Y: 5}
	f.Set(pos, element.NewSand())

	if _, err := f.Update(context.Background(), 1); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if _, ok := f.Get(pos); ok {
		t.Errorf("sand should have moved off its original cell")
	}
	below, ok := f.Get(geom.Point{X: 5, Y: 6})
	if !ok || below.Kind() != element.KindSand {
		t.Errorf("sand should have fallen to (5,6), got %+v, %v", below, ok)
	}
}

func TestFieldSandRestsOnBlockWithoutDoubleUpdate(t *testing.T) {
	f := New(bigBounds(), 2)
	sandPos := geom.Point{X: 5, Y: 5}
	f.Set(sandPos, element.NewSand())
	f.Set(geom.Point{X: 5, Y: 6}, element.NewBlock())
	// Block both sides so sand can't disperse laterally either.
	f.Set(geom.Point{X: 4, Y: 6}, element.NewBlock())
	f.Set(geom.Point{X: 6, Y: 6}, element.NewBlock())
	f.Set(geom.Point{X: 4, Y: 5}, element.NewBlock())
	f.Set(geom.Point{X: 6, Y: 5}, element.NewBlock())

	if _, err := f.Update(context.Background(), 1); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	el, ok := f.Get(sandPos)
	if !ok || el.Kind() != element.KindSand {
		t.Errorf("sand resting on a block should remain in place, got %+v, %v", el, ok)
	}
}

func TestFieldUpdateConservesElementCount(t *testing.T) {
	f := New(bigBounds(), 3)
	positions := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1},
	}
	for _, p := range positions {
		f.Set(p, element.NewSand())
	}

	before := len(positions)
	for tick := int64(0); tick < 5; tick++ {
		if _, err := f.Update(context.Background(), tick); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}

	after := 0
	for k := range f.CountByKind() {
		after += f.CountByKind()[k]
	}
	if after != before {
		t.Errorf("element count changed across ticks: before=%d after=%d", before, after)
	}
}

func TestFieldEmptyChunkIsEvictedAfterElementLeaves(t *testing.T) {
	f := New(bigBounds(), 1)
	pos := geom.Point{X: 5, Y: ChunkSize - 1} // bottom row of chunk (0,0)
	f.Set(pos, element.NewSand())

	if n := len(f.Chunks()); n != 1 {
		t.Fatalf("expected exactly 1 live chunk after seeding, got %d", n)
	}

	// Straight gravity fall is unconditional into an empty cell, so one tick
	// drops the grain into chunk (0,1), leaving chunk (0,0) empty. The same
	// Update that empties a chunk must also evict it.
	if _, err := f.Update(context.Background(), 3); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if _, ok := f.Get(geom.Point{X: 5, Y: ChunkSize}); !ok {
		t.Fatalf("sand should have fallen into chunk (0,1)")
	}

	rects := f.Chunks()
	for _, rect := range rects {
		if rect.Contains(pos) {
			t.Errorf("chunk (0,0) holds no elements and should have been evicted; live chunks: %v", rects)
		}
	}
	if len(rects) != 1 {
		t.Errorf("expected only chunk (0,1) to remain live, got %d chunks: %v", len(rects), rects)
	}
}

func TestFieldDeferredActionReconciliationAcrossChunkBoundary(t *testing.T) {
	// A single chunk (0,0) exists, holding Sand on its bottom row. Straight
	// gravity fall is unconditional (ReachableEmptyOrFitting short-circuits
	// to true on an empty destination, regardless of RNG draws), so the
	// grain deterministically falls into chunk (0,1), which does not exist
	// yet. After one Update, chunk (0,1) must exist, created by deferred
	// reconciliation, holding the sand at local (31, 0).
	f := New(bigBounds(), 1)
	origin := geom.Point{X: ChunkSize - 1, Y: ChunkSize - 1}
	f.Set(origin, element.NewSand())

	if len(f.Chunks()) != 1 {
		t.Fatalf("expected only chunk (0,0) to exist before the update")
	}

	n, err := f.Update(context.Background(), 7)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if n != 1 {
		t.Errorf("expected exactly 1 deferred action reconciled, got %d", n)
	}

	if _, ok := f.Get(origin); ok {
		t.Errorf("sand should have left its origin cell")
	}
	dest := geom.Point{X: ChunkSize - 1, Y: ChunkSize}
	el, ok := f.Get(dest)
	if !ok || el.Kind() != element.KindSand {
		t.Fatalf("sand did not land at %+v across the chunk boundary; got %+v, %v", dest, el, ok)
	}

	found := false
	for _, rect := range f.Chunks() {
		if rect.Left == 0 && rect.Top == ChunkSize {
			found = true
		}
	}
	if !found {
		t.Errorf("chunk (0,1) should have been created by deferred reconciliation")
	}
}

func TestFieldParityTogglesEveryTick(t *testing.T) {
	f := New(bigBounds(), 1)
	f.Set(geom.Point{X: 0, Y: 0}, element.NewBlock())

	before := f.parity
	if _, err := f.Update(context.Background(), 1); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if f.parity == before {
		t.Errorf("global parity should flip after every Update call")
	}
}
