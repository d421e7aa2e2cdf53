package knot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert := assert.New(t)

	strand := []int{0, 1, 2, 3, 4}
	cursor, skip := Round(strand, []int{3, 4, 1, 5}, 0, 0)

	assert.Equal([]int{3, 4, 2, 1, 0}, strand)
	assert.Equal(12, strand[0]*strand[1])
	assert.Equal(4, cursor)
	assert.Equal(4, skip)
}

func TestRoundResumes(t *testing.T) {
	assert := assert.New(t)

	// Two single-length rounds match one two-length round.
	once := []int{0, 1, 2, 3, 4}
	cursor, skip := Round(once, []int{3, 4}, 0, 0)

	twice := []int{0, 1, 2, 3, 4}
	c, s := Round(twice, []int{3}, 0, 0)
	c, s = Round(twice, []int{4}, c, s)

	assert.Equal(once, twice)
	assert.Equal(cursor, c)
	assert.Equal(skip, s)
}

func TestSum(t *testing.T) {
	assert := assert.New(t)

	for input, want := range map[string]string{
		"":         "a2582a3a0e66e6e86e3812dcb672a272",
		"AoC 2017": "33efeb34ea91902bb2f59c9920caa6cd",
		"1,2,3":    "3efbe78a8d82f29979031a4aa0b16a9d",
		"1,2,4":    "63960835bcdc130f0b66d7ff4f6a5a8e",
	} {
		assert.Equal(want, Sum(input), input)
	}
}
