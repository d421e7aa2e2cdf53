package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDay16Dance(t *testing.T) {
	assert := assert.New(t)

	moves, err := day16Parse("s1,x3/4,pe/b")
	assert.NoError(err)

	order := day16Start(5)
	day16Dance(order, moves)
	assert.Equal("baedc", string(order))

	// A second pass continues from the permuted order.
	day16Dance(order, moves)
	assert.Equal("ceadb", string(order))
}

func TestDay16BadInput(t *testing.T) {
	assert := assert.New(t)

	_, err := day16Parse("s1,q2/3")
	assert.ErrorIs(err, ErrMalformedInput)

	_, err = day16Parse("x1")
	assert.ErrorIs(err, ErrMalformedInput)
}
