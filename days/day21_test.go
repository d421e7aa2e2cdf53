package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay21Enhance(t *testing.T) {
	assert := assert.New(t)

	rules, err := day21Parse(`../.# => ##./#../...
.#./..#/### => #..#/..../..../#..#
`)
	assert.NoError(err)

	lit, err := day21Lit(rules, 2)
	assert.NoError(err)
	assert.Equal(12, lit)
}

func TestDay21Variants(t *testing.T) {
	assert := assert.New(t)

	keys := day21Variants([]string{".#.", "..#", "###"})
	assert.Len(keys, 8)
	assert.Contains(keys, ".#./..#/###")
	assert.Contains(keys, ".#./#../###") // flipped
	assert.Contains(keys, "#../#.#/##.") // rotated
}

func TestDay21NoRule(t *testing.T) {
	assert := assert.New(t)

	rules, err := day21Parse("../.# => ##./#../...\n")
	assert.NoError(err)

	_, err = day21Lit(rules, 1)
	assert.ErrorIs(err, ErrNoSolution)
}
