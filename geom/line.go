package geom

// Line rasterizes the straight line from a to b using Bresenham's
// algorithm, inclusive of both endpoints.
func Line(a, b Point) []Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx := 1
	if a.X >= b.X {
		sx = -1
	}
	sy := 1
	if a.Y >= b.Y {
		sy = -1
	}
	err := dx + dy

	points := make([]Point, 0, max(abs(dx), abs(dy))+1)
	x, y := a.X, a.Y
	for {
		points = append(points, Point{x, y})
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
