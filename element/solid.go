package element

import "github.com/hevezolly/fallingsand/geom"

// Block is a StaticSolid: it never moves and never yields to a neighbour's
// move attempt. It re-affirms its own position every tick purely to keep
// the chunk's dirty-rect bookkeeping consistent with a live cell.
type Block struct {
	density float64
}

// NewBlock constructs a Block with its default density.
func NewBlock() Block { return Block{density: 50} }

// NewBlockWithDensity constructs a Block with a caller-supplied density,
// letting config overrides pick a custom resistance to density swaps.
func NewBlockWithDensity(density float64) Block { return Block{density: density} }

func (b Block) Kind() Kind       { return KindBlock }
func (b Block) Color() Color     { return Color{0xb3, 0xb3, 0xb3, 0xff} }
func (b Block) Density() float64 { return b.density }

func (b Block) Update(pos geom.Point, ctx Context) {
	ctx.SetStatic(pos, b)
}

func (b Block) Refresh() Element { return b }
