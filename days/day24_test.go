package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var day24Example = `0/2
2/2
2/3
3/4
3/5
0/1
10/1
9/10
`

func TestDay24(t *testing.T) {
	assert := assert.New(t)

	got, err := day24Part1(day24Example)
	assert.NoError(err)
	assert.Equal("31", got)

	got, err = day24Part2(day24Example)
	assert.NoError(err)
	assert.Equal("19", got)
}

func TestDay24BadInput(t *testing.T) {
	assert := assert.New(t)

	_, err := day24Part1("0-2\n")
	assert.ErrorIs(err, ErrMalformedInput)
}
