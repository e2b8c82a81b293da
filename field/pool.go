package field

// sweepOrder computes the parity-interleaved traversal order for one axis
// of length L: the first half walks backwards through odd/even offsets
// starting at 1-p, then the second half walks forward through offsets
// starting at p. p is 1 when parity is true, 0 otherwise. The phase
// alternates every tick (as parity flips), preventing persistent
// scan-direction bias without needing a second RNG draw.
func sweepOrder(length int, parity bool) []int {
	if length <= 0 {
		return nil
	}
	p := 0
	if parity {
		p = 1
	}
	n1 := length/2 + (length*p)%2
	n2 := length/2 + (length*(1-p))%2

	order := make([]int, 0, n1+n2)
	for k := n1 - 1; k >= 0; k-- {
		order = append(order, (1-p)+2*k)
	}
	for k := 0; k < n2; k++ {
		order = append(order, p+2*k)
	}
	return order
}

// updateChunkSweep walks ctx's chunk's current sweep area in
// parity-interleaved order, running each eligible cell's element rule
// through ctx and deferring already-touched cells to the next tick.
func updateChunkSweep(ctx *ChunkContext) {
	chunk := ctx.CurrentChunk()
	rect := chunk.UpdateRect()
	ys := sweepOrder(rect.Height(), ctx.Parity())
	xs := sweepOrder(rect.Width(), ctx.Parity())

	for _, dy := range ys {
		y := rect.Top + dy
		for _, dx := range xs {
			x := rect.Left + dx
			local := Local{X: x, Y: y}

			el, ok := chunk.Get(local)
			if !ok {
				continue
			}

			if chunk.Parity(local) == ctx.Parity() {
				el.Update(localToGlobal(local, ctx.CurrentChunkCoord()), ctx)
			} else {
				ctx.KeepAliveLocal(local)
			}
		}
	}
}
