package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay03Part1(t *testing.T) {
	assert := assert.New(t)

	for input, want := range map[string]string{
		"1":    "0",
		"12":   "3",
		"23":   "2",
		"1024": "31",
	} {
		got, err := day03Part1(input)
		assert.NoError(err, input)
		assert.Equal(want, got, input)
	}
}

func TestDay03Part2(t *testing.T) {
	assert := assert.New(t)

	// The stress sequence runs 1, 1, 2, 4, 5, 10, 11, 23, 25, ...
	got, err := day03Part2("6")
	assert.NoError(err)
	assert.Equal("10", got)

	got, err = day03Part2("748")
	assert.NoError(err)
	assert.Equal("806", got)
}
