package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay04Part1(t *testing.T) {
	assert := assert.New(t)

	got, err := day04Part1("aa bb cc dd ee\naa bb cc dd aa\naa bb cc dd aaa\n")
	assert.NoError(err)
	assert.Equal("2", got)
}

func TestDay04Part2(t *testing.T) {
	assert := assert.New(t)

	input := "abcde fghij\n" +
		"abcde xyz ecdab\n" +
		"a ab abc abd abf abj\n" +
		"iiii oiii ooii oooi oooo\n" +
		"oiii ioii iioi iiio\n"

	got, err := day04Part2(input)
	assert.NoError(err)
	assert.Equal("3", got)
}
