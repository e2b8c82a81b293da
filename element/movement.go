package element

import "github.com/hevezolly/fallingsand/geom"

// availablePoint rasterizes the straight line from from to to and returns
// the furthest point reachable along it for which fit accepts the cell's
// content (empty cells pass fit(nil, false)); the line's own start is
// skipped. The scan stops at the first point that either fails fit or is
// unreachable (out of range), returning the point just before it.
func availablePoint(from, to geom.Point, ctx Context, fit func(el Element, ok bool) bool) geom.Point {
	line := geom.Line(from, to)
	prev := from
	for _, p := range line[1:] {
		el, ok, err := ctx.Get(p)
		if err != nil || !fit(el, ok) {
			return prev
		}
		prev = p
	}
	return prev
}

// below returns the cell directly beneath pos.
func below(pos geom.Point) geom.Point {
	return geom.Point{X: pos.X, Y: pos.Y + 1}
}
