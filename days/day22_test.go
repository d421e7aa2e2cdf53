package days

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/aoc2017/geom"
)

var day22Example = `..#
#..
...
`

func TestDay22Parse(t *testing.T) {
	assert := assert.New(t)

	grid, start := day22Parse(day22Example)
	assert.Equal(geom.Point2{X: 1, Y: 1}, start)
	assert.Equal(day22Infected, grid[geom.Point2{X: 2, Y: 0}])
	assert.Equal(day22Infected, grid[geom.Point2{X: 0, Y: 1}])
	assert.Len(grid, 2)
}

func TestDay22Part1(t *testing.T) {
	assert := assert.New(t)

	grid, start := day22Parse(day22Example)
	assert.Equal(5, day22Bursts(grid, start, 7, false))

	grid, start = day22Parse(day22Example)
	assert.Equal(41, day22Bursts(grid, start, 70, false))

	got, err := day22Part1(day22Example)
	assert.NoError(err)
	assert.Equal("5587", got)
}

func TestDay22Part2(t *testing.T) {
	assert := assert.New(t)

	grid, start := day22Parse(day22Example)
	assert.Equal(26, day22Bursts(grid, start, 100, true))

	if testing.Short() {
		t.Skip("10 million bursts")
	}

	got, err := day22Part2(day22Example)
	assert.NoError(err)
	assert.Equal("2511944", got)
}
