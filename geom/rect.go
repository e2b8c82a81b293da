// Package geom provides the axis-aligned geometric primitives the
// simulation core is built on: points, rectangles, neighbour
// enumeration and line rasterization.
package geom

import "math"

// Point is an integer world or chunk-local coordinate.
type Point struct {
	X, Y int
}

// Add returns p shifted by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Rect is a half-open axis-aligned rectangle: [Left, Right) x [Top, Bottom).
// A zero-value Rect (TopLeft == BottomRight) is empty.
type Rect struct {
	Left, Top     int
	Right, Bottom int
}

// RectFrom builds a Rect from its top-left (inclusive) and bottom-right
// (exclusive) corners.
func RectFrom(topLeft, bottomRight Point) Rect {
	return Rect{Left: topLeft.X, Top: topLeft.Y, Right: bottomRight.X, Bottom: bottomRight.Y}
}

// RectFromCenter builds a rectangle of the given size centered on center,
// biasing the extra cell (for odd sizes) to the bottom-right.
func RectFromCenter(center Point, size Point) Rect {
	top := center.Y - size.Y/2
	left := center.X - size.X/2
	bottom := center.Y + size.Y/2 + size.Y%2
	right := center.X + size.X/2 + size.X%2
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// HasValue reports whether the rectangle covers at least one point.
func (r Rect) HasValue() bool {
	return r.Right != r.Left || r.Bottom != r.Top
}

// Width returns the rectangle's width; zero for an empty rectangle.
func (r Rect) Width() int {
	if !r.HasValue() {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the rectangle's height; zero for an empty rectangle.
func (r Rect) Height() int {
	if !r.HasValue() {
		return 0
	}
	return r.Bottom - r.Top
}

// Contains reports whether point lies within the half-open rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.Y >= r.Top && p.X < r.Right && p.Y < r.Bottom
}

// ContainsInclusive reports whether point lies within the rectangle treating
// the bottom-right corner as inclusive. Used for chunk-coordinate bounds
// checks.
func (r Rect) ContainsInclusive(p Point) bool {
	return p.X >= r.Left && p.Y >= r.Top && p.X <= r.Right && p.Y <= r.Bottom
}

// Expand grows the rectangle (creating it, if empty) to also cover point.
func (r Rect) Expand(p Point) Rect {
	if !r.HasValue() {
		return Rect{Left: p.X, Top: p.Y, Right: p.X + 1, Bottom: p.Y + 1}
	}
	return Rect{
		Left:   min(p.X, r.Left),
		Top:    min(p.Y, r.Top),
		Right:  max(p.X+1, r.Right),
		Bottom: max(p.Y+1, r.Bottom),
	}
}

// Points iterates every point in the rectangle in row-major order.
func (r Rect) Points(yield func(Point) bool) {
	if !r.HasValue() {
		return
	}
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			if !yield(Point{x, y}) {
				return
			}
		}
	}
}

// FloorDiv performs Euclidean (floor) division: the result always rounds
// toward negative infinity, unlike Go's native truncating integer division.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod performs Euclidean (floor) modulo: the result is always in
// [0, |b|).
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += int(math.Abs(float64(b)))
	}
	return m
}
