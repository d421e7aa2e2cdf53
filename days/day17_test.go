package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay17Part1(t *testing.T) {
	assert := assert.New(t)

	got, err := day17Part1("3")
	assert.NoError(err)
	assert.Equal("638", got)
}

func TestDay17After0(t *testing.T) {
	assert := assert.New(t)

	// With step 3 the buffer runs 0 9 5 7 2 4 3 8 6 1 after nine
	// insertions; the value after 0 is 9.
	assert.Equal(9, day17After0(3, 9))
}

func TestDay17Part2(t *testing.T) {
	if testing.Short() {
		t.Skip("50 million insertions")
	}

	assert := assert.New(t)

	got, err := day17Part2("3")
	assert.NoError(err)
	assert.NotEqual("0", got)
}
