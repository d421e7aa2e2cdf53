// Package geom provides small integer grid helpers.
package geom

import "math"

// Point2 is a point on a two-dimensional integer grid. The y axis grows
// downward, matching text grid row order.
type Point2 struct {
	X, Y int
}

// Shift moves the point by the given deltas.
func (p *Point2) Shift(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Manhattan returns the Manhattan distance to other.
func (p Point2) Manhattan(other Point2) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Adjacent returns the four orthogonally adjacent points.
func (p Point2) Adjacent() [4]Point2 {
	return [4]Point2{
		{p.X, p.Y - 1},
		{p.X + 1, p.Y},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y},
	}
}

// Surrounding returns the eight surrounding points.
func (p Point2) Surrounding() [8]Point2 {
	return [8]Point2{
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

// Point3 is a point in three-dimensional integer space.
type Point3 struct {
	X, Y, Z int
}

// Shift moves the point by the given deltas.
func (p *Point3) Shift(dx, dy, dz int) {
	p.X += dx
	p.Y += dy
	p.Z += dz
}

// Manhattan returns the Manhattan distance to other.
func (p Point3) Manhattan(other Point3) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y) + abs(p.Z-other.Z)
}

// Norm returns the Euclidean magnitude of the point.
func (p Point3) Norm() float64 {
	return math.Sqrt(float64(p.X*p.X + p.Y*p.Y + p.Z*p.Z))
}

// Direction is a cardinal compass direction.
type Direction int

const (
	NORTH = Direction(0)
	EAST  = Direction(1)
	SOUTH = Direction(2)
	WEST  = Direction(3)
)

// Left returns the direction rotated a quarter turn counterclockwise.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns the direction rotated a quarter turn clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Unit returns the unit vector of the direction, with y growing downward.
func (d Direction) Unit() (dx, dy int) {
	switch d {
	case NORTH:
		dy = -1
	case EAST:
		dx = 1
	case SOUTH:
		dy = 1
	case WEST:
		dx = -1
	}
	return
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
