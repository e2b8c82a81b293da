package geom

// Neighbours8 returns the 8 surrounding points of p, rows top to bottom.
func Neighbours8(p Point) []Point {
	return []Point{
		{p.X - 1, p.Y - 1},
		{p.X, p.Y - 1},
		{p.X + 1, p.Y - 1},
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
		{p.X - 1, p.Y + 1},
		{p.X, p.Y + 1},
		{p.X + 1, p.Y + 1},
	}
}

// Neighbours4 returns the 4 axis-aligned (von Neumann) neighbours of p:
// up, left, right, down.
func Neighbours4(p Point) []Point {
	return []Point{
		{p.X, p.Y - 1},
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
		{p.X, p.Y + 1},
	}
}
