package input

import (
	"errors"
	"net/http"

	"github.com/ezrec/aoc2017/translate"
)

var f = translate.From

var (
	ErrNoSession = errors.New(f("no session cookie (set AOC_SESSION)"))
)

type ErrFetchStatus int

func (err ErrFetchStatus) Error() string {
	return f("input fetch failed: %v %v", int(err), http.StatusText(int(err)))
}
