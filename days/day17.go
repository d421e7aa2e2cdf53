package days

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{Day: 17, Title: "Spinlock", Part1: day17Part1, Part2: day17Part2})
}

func day17Parse(input string) (step int, err error) {
	step, err = strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		err = errors.Join(ErrMalformedInput, err)
	}
	return
}

// day17Spin builds the full buffer and returns the value after the final
// insertion.
func day17Spin(step, insertions int) int {
	buffer := make([]int, 1, insertions+1)
	pos := 0

	for value := 1; value <= insertions; value++ {
		pos = (pos+step)%len(buffer) + 1
		buffer = slices.Insert(buffer, pos, value)
	}

	return buffer[(pos+1)%len(buffer)]
}

// day17After0 tracks only the insertion position, returning the last value
// placed directly after the zero anchor.
func day17After0(step, insertions int) (after int) {
	pos := 0
	for value := 1; value <= insertions; value++ {
		pos = (pos+step)%value + 1
		if pos == 1 {
			after = value
		}
	}
	return
}

func day17Part1(input string) (string, error) {
	step, err := day17Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(day17Spin(step, 2017)), nil
}

func day17Part2(input string) (string, error) {
	step, err := day17Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(day17After0(step, 50_000_000)), nil
}
