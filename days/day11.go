package days

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/aoc2017/geom"
)

func init() {
	register(Puzzle{Day: 11, Title: "Hex Ed", Part1: day11Part1, Part2: day11Part2})
}

// day11Moves maps hex grid steps to cube coordinate deltas.
var day11Moves = map[string]geom.Point3{
	"n":  {X: 0, Y: 1, Z: -1},
	"s":  {X: 0, Y: -1, Z: 1},
	"ne": {X: 1, Y: 0, Z: -1},
	"sw": {X: -1, Y: 0, Z: 1},
	"nw": {X: -1, Y: 1, Z: 0},
	"se": {X: 1, Y: -1, Z: 0},
}

// day11Distance is the hex step count from the origin in cube coordinates.
func day11Distance(p geom.Point3) int {
	return p.Manhattan(geom.Point3{}) / 2
}

// day11Walk follows the path, returning the final distance from the start
// and the farthest distance reached along the way.
func day11Walk(input string) (final, farthest int, err error) {
	var loc geom.Point3

	for _, step := range strings.Split(strings.TrimSpace(input), ",") {
		move, ok := day11Moves[strings.TrimSpace(step)]
		if !ok {
			err = errors.Join(ErrMalformedInput, ErrBadLine(step))
			return
		}
		loc.Shift(move.X, move.Y, move.Z)
		farthest = max(farthest, day11Distance(loc))
	}
	final = day11Distance(loc)

	return
}

func day11Part1(input string) (string, error) {
	final, _, err := day11Walk(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(final), nil
}

func day11Part2(input string) (string, error) {
	_, farthest, err := day11Walk(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(farthest), nil
}
