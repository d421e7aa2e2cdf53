package days

import (
	"errors"
	"slices"
	"strconv"
)

func init() {
	register(Puzzle{Day: 5, Title: "A Maze of Twisty Trampolines, All Alike", Part1: day05Part1, Part2: day05Part2})
}

func day05Parse(input string) (jumps []int, err error) {
	for _, line := range lines(input) {
		var v int
		v, err = strconv.Atoi(line)
		if err != nil {
			err = errors.Join(ErrMalformedInput, ErrBadLine(line))
			return
		}
		jumps = append(jumps, v)
	}
	return
}

// day05Steps counts the jumps taken before the cursor escapes the list.
// In strange mode, offsets of three or more decrement instead of
// incrementing.
func day05Steps(jumps []int, strange bool) (steps int) {
	jumps = slices.Clone(jumps)
	cursor := 0

	for cursor >= 0 && cursor < len(jumps) {
		offset := jumps[cursor]
		if strange && offset >= 3 {
			jumps[cursor]--
		} else {
			jumps[cursor]++
		}
		cursor += offset
		steps++
	}

	return
}

func day05Part1(input string) (string, error) {
	jumps, err := day05Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(day05Steps(jumps, false)), nil
}

func day05Part2(input string) (string, error) {
	jumps, err := day05Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(day05Steps(jumps, true)), nil
}
