// Package days registers a solver pair for each puzzle day.
package days

import (
	"slices"
	"strings"
)

// Puzzle is a single day's pair of solvers. Each part receives the raw
// input text and returns its answer rendered as a string.
type Puzzle struct {
	Day   int
	Title string
	Part1 func(input string) (string, error)
	Part2 func(input string) (string, error)
}

var puzzles = map[int]Puzzle{}

// register adds a puzzle to the registry at init time.
func register(p Puzzle) {
	if _, ok := puzzles[p.Day]; ok {
		panic(f("day %d registered twice", p.Day))
	}
	puzzles[p.Day] = p
}

// Get returns the puzzle for a day.
func Get(day int) (p Puzzle, ok bool) {
	p, ok = puzzles[day]
	return
}

// All returns every registered puzzle in day order.
func All() (all []Puzzle) {
	for _, p := range puzzles {
		all = append(all, p)
	}
	slices.SortFunc(all, func(a, b Puzzle) int { return a.Day - b.Day })
	return
}

// lines splits input into trimmed, non-empty lines.
func lines(input string) (out []string) {
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return
}
