package days

import (
	"errors"

	"github.com/ezrec/aoc2017/translate"
)

var f = translate.From

var (
	ErrMalformedInput = errors.New(f("malformed input"))
	ErrNoSolution     = errors.New(f("no solution found"))
)

type ErrBadLine string

func (err ErrBadLine) Error() string {
	return f("bad input line '%v'", string(err))
}
