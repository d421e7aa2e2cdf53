package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay01Part1(t *testing.T) {
	assert := assert.New(t)

	for input, want := range map[string]string{
		"1122":     "3",
		"1111":     "4",
		"1234":     "0",
		"91212129": "9",
	} {
		got, err := day01Part1(input)
		assert.NoError(err, input)
		assert.Equal(want, got, input)
	}
}

func TestDay01Part2(t *testing.T) {
	assert := assert.New(t)

	for input, want := range map[string]string{
		"1212":     "6",
		"1221":     "0",
		"123425":   "4",
		"123123":   "12",
		"12131415": "4",
	} {
		got, err := day01Part2(input)
		assert.NoError(err, input)
		assert.Equal(want, got, input)
	}
}

func TestDay01BadInput(t *testing.T) {
	assert := assert.New(t)

	_, err := day01Part1("12a4")
	assert.ErrorIs(err, ErrMalformedInput)
}
