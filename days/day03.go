package days

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/aoc2017/geom"
)

func init() {
	register(Puzzle{Day: 3, Title: "Spiral Memory", Part1: day03Part1, Part2: day03Part2})
}

// day03Walk returns the grid location of a value on the square spiral.
func day03Walk(target int) geom.Point2 {
	value := 1
	ring := 0
	var loc geom.Point2
	dx, dy := 1, 0

	for value < target {
		corner := (2*ring + 1) * (2*ring + 1)
		switch value {
		case corner:
			// Bottom right: step out to the next ring.
			ring++
			loc.Shift(dx, dy)
			dx, dy = 0, -1
			value++
			continue
		case corner - ring*6:
			dx, dy = -1, 0
		case corner - ring*4:
			dx, dy = 0, 1
		case corner - ring*2:
			dx, dy = 1, 0
		}
		loc.Shift(dx, dy)
		value++
	}

	return loc
}

// day03StressSum walks the spiral writing neighbor sums, returning the
// first value written that reaches target.
func day03StressSum(target int) int {
	value := 1
	ring := 0
	var loc geom.Point2
	dx, dy := 1, 0
	spiral := map[geom.Point2]int{}

	for value < target {
		spiral[loc] = value

		switch {
		case loc.X == ring && loc.Y == ring:
			// Bottom right: step out to the next ring.
			ring++
			loc.Shift(dx, dy)
			dx, dy = 0, -1
		case loc.X == ring && loc.Y == -ring:
			dx, dy = -1, 0
			loc.Shift(dx, dy)
		case loc.X == -ring && loc.Y == -ring:
			dx, dy = 0, 1
			loc.Shift(dx, dy)
		case loc.X == -ring && loc.Y == ring:
			dx, dy = 1, 0
			loc.Shift(dx, dy)
		default:
			loc.Shift(dx, dy)
		}

		value = 0
		for _, n := range loc.Surrounding() {
			value += spiral[n]
		}
	}

	return value
}

func day03Parse(input string) (target int, err error) {
	target, err = strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		err = errors.Join(ErrMalformedInput, err)
	}
	return
}

func day03Part1(input string) (string, error) {
	target, err := day03Parse(input)
	if err != nil {
		return "", err
	}
	loc := day03Walk(target)
	return strconv.Itoa(loc.Manhattan(geom.Point2{})), nil
}

func day03Part2(input string) (string, error) {
	target, err := day03Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(day03StressSum(target)), nil
}
