package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint2(t *testing.T) {
	assert := assert.New(t)

	p := Point2{1, -2}
	p.Shift(2, 3)
	assert.Equal(Point2{3, 1}, p)
	assert.Equal(7, p.Manhattan(Point2{0, -3}))

	assert.Contains(p.Adjacent(), Point2{3, 0})
	assert.NotContains(p.Adjacent(), Point2{4, 2})
	assert.Contains(p.Surrounding(), Point2{4, 2})
	assert.NotContains(p.Surrounding(), p)
}

func TestPoint3(t *testing.T) {
	assert := assert.New(t)

	p := Point3{1, 2, 2}
	assert.Equal(3.0, p.Norm())
	assert.Equal(5, p.Manhattan(Point3{}))

	p.Shift(-1, -2, -2)
	assert.Equal(Point3{}, p)
}

func TestDirection(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(WEST, NORTH.Left())
	assert.Equal(EAST, NORTH.Right())
	assert.Equal(SOUTH, NORTH.Reverse())
	assert.Equal(NORTH, WEST.Right())

	dx, dy := NORTH.Unit()
	assert.Equal(0, dx)
	assert.Equal(-1, dy)

	for _, d := range []Direction{NORTH, EAST, SOUTH, WEST} {
		dx, dy := d.Unit()
		rx, ry := d.Reverse().Unit()
		assert.Equal(-dx, rx)
		assert.Equal(-dy, ry)
	}
}
