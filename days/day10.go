package days

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/aoc2017/knot"
)

func init() {
	register(Puzzle{Day: 10, Title: "Knot Hash", Part1: day10Part1, Part2: day10Part2})
}

// day10Pinch runs one sparse round over a fresh strand and returns the
// product of its first two marks.
func day10Pinch(lengths []int, size int) int {
	strand := make([]int, size)
	for i := range strand {
		strand[i] = i
	}
	knot.Round(strand, lengths, 0, 0)
	return strand[0] * strand[1]
}

func day10Part1(input string) (string, error) {
	var lengths []int
	for _, word := range strings.Split(strings.TrimSpace(input), ",") {
		v, err := strconv.Atoi(strings.TrimSpace(word))
		if err != nil {
			return "", errors.Join(ErrMalformedInput, ErrBadLine(word))
		}
		lengths = append(lengths, v)
	}
	return strconv.Itoa(day10Pinch(lengths, knot.STRAND_SIZE)), nil
}

func day10Part2(input string) (string, error) {
	return knot.Sum(strings.TrimSpace(input)), nil
}
