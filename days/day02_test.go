package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay02Part1(t *testing.T) {
	assert := assert.New(t)

	got, err := day02Part1("5 1 9 5\n7 5 3\n2 4 6 8\n")
	assert.NoError(err)
	assert.Equal("18", got)
}

func TestDay02Part2(t *testing.T) {
	assert := assert.New(t)

	got, err := day02Part2("5 9 2 8\n9 4 7 3\n3 8 6 5\n")
	assert.NoError(err)
	assert.Equal("9", got)
}
