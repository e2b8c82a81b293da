package field

import (
	"testing"

	"github.com/hevezolly/fallingsand/element"
)

func TestChunkSetTracksElementCountAndDirtyArea(t *testing.T) {
	c := NewChunk(false)
	if c.ElementCount() != 0 {
		t.Fatalf("fresh chunk should have 0 elements")
	}

	c.Set(Local{X: 5, Y: 7}, element.NewBlock(), true)
	if c.ElementCount() != 1 {
		t.Errorf("ElementCount() = %d, want 1", c.ElementCount())
	}

	c.CommitTick()
	rect := c.UpdateRect()
	if !rect.Contains(Local{X: 5, Y: 7}) {
		t.Errorf("committed update area %+v should contain the written cell", rect)
	}
}

func TestChunkSetOverwriteDoesNotDoubleCount(t *testing.T) {
	c := NewChunk(false)
	c.Set(Local{X: 1, Y: 1}, element.NewBlock(), true)
	c.Set(Local{X: 1, Y: 1}, element.NewSand(), true)

	if c.ElementCount() != 1 {
		t.Errorf("overwriting an occupied cell should not increase ElementCount, got %d", c.ElementCount())
	}
	el, ok := c.Get(Local{X: 1, Y: 1})
	if !ok || el.Kind() != element.KindSand {
		t.Errorf("expected Sand after overwrite, got %+v", el)
	}
}

func TestChunkClearDecrementsCount(t *testing.T) {
	c := NewChunk(false)
	c.Set(Local{X: 2, Y: 2}, element.NewBlock(), true)
	c.Clear(Local{X: 2, Y: 2})

	if c.ElementCount() != 0 {
		t.Errorf("ElementCount() = %d, want 0 after clear", c.ElementCount())
	}
	if _, ok := c.Get(Local{X: 2, Y: 2}); ok {
		t.Errorf("cleared cell should read as empty")
	}
}

func TestChunkMarkDirtyWithNeighbourhoodClampsToBounds(t *testing.T) {
	c := NewChunk(false)
	c.MarkDirtyWithNeighbourhood(Local{X: 0, Y: 0})
	c.CommitTick()
	rect := c.UpdateRect()

	// The neighbourhood of (0,0) includes (-1,0) and (0,-1), which must be
	// clamped out of the tracked area.
	if rect.Left < 0 || rect.Top < 0 {
		t.Errorf("dirty area %+v should be clamped to non-negative chunk bounds", rect)
	}
}

func TestChunkCommitTickMovesNextToCurrentAndResets(t *testing.T) {
	c := NewChunk(false)
	c.MarkDirty(Local{X: 10, Y: 10})
	c.CommitTick()

	if !c.UpdateRect().HasValue() {
		t.Fatalf("CommitTick should move the accumulated area into UpdateRect")
	}
	if c.NeedsUpdate() != true {
		t.Errorf("NeedsUpdate() should be true right after CommitTick with pending writes")
	}

	c.CommitTick() // nothing accumulated since the last commit
	if c.NeedsUpdate() {
		t.Errorf("NeedsUpdate() should be false once the accumulator has drained")
	}
}

func TestChunkForEachVisitsOnlyOccupiedCells(t *testing.T) {
	c := NewChunk(false)
	c.Set(Local{X: 0, Y: 0}, element.NewSand(), true)
	c.Set(Local{X: 3, Y: 3}, element.NewBlock(), true)

	visited := 0
	c.ForEach(func(local Local, el element.Element) {
		visited++
	})
	if visited != 2 {
		t.Errorf("ForEach visited %d cells, want 2", visited)
	}
}
