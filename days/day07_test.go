package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var day07Example = `pbga (66)
xhth (57)
ebii (61)
havc (66)
ktlj (57)
fwft (72) -> ktlj, cntj, xhth
qoyq (66)
padx (45) -> pbga, havc, qoyq
tknk (41) -> ugml, padx, fwft
jptl (61)
ugml (68) -> gyxo, ebii, jptl
gyxo (61)
cntj (57)
`

func TestDay07Part1(t *testing.T) {
	assert := assert.New(t)

	got, err := day07Part1(day07Example)
	assert.NoError(err)
	assert.Equal("tknk", got)
}

func TestDay07Part2(t *testing.T) {
	assert := assert.New(t)

	got, err := day07Part2(day07Example)
	assert.NoError(err)
	assert.Equal("60", got)
}

func TestDay07BadInput(t *testing.T) {
	assert := assert.New(t)

	_, err := day07Part1("pbga 66\n")
	assert.ErrorIs(err, ErrMalformedInput)
}
