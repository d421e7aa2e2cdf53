package days

import (
	"strconv"

	"github.com/ezrec/aoc2017/geom"
)

func init() {
	register(Puzzle{Day: 22, Title: "Sporifica Virus", Part1: day22Part1, Part2: day22Part2})
}

// Node states for the evolved virus. The basic virus only uses clean and
// infected.
const (
	day22Clean = iota
	day22Weakened
	day22Infected
	day22Flagged
)

// day22Parse reads the infected map and the carrier's starting position at
// its center.
func day22Parse(input string) (grid map[geom.Point2]int, start geom.Point2) {
	grid = map[geom.Point2]int{}

	rows := lines(input)
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				grid[geom.Point2{X: x, Y: y}] = day22Infected
			}
		}
	}

	if len(rows) > 0 {
		maxY := len(rows) - 1
		maxX := len(rows[0]) - 1
		start = geom.Point2{X: maxX/2 + maxX%2, Y: maxY/2 + maxY%2}
	}

	return
}

// day22Bursts runs the carrier and counts the bursts that newly infect a
// node.
func day22Bursts(grid map[geom.Point2]int, start geom.Point2, bursts int, evolved bool) (infections int) {
	loc := start
	dir := geom.NORTH

	for n4 := 0; n4 < bursts; n4++ {
		state := grid[loc]

		if !evolved {
			// The basic virus toggles between clean and infected.
			if state == day22Infected {
				dir = dir.Right()
				delete(grid, loc)
			} else {
				dir = dir.Left()
				grid[loc] = day22Infected
				infections++
			}
		} else {
			switch state {
			case day22Clean:
				dir = dir.Left()
				grid[loc] = day22Weakened
			case day22Weakened:
				grid[loc] = day22Infected
				infections++
			case day22Infected:
				dir = dir.Right()
				grid[loc] = day22Flagged
			case day22Flagged:
				dir = dir.Reverse()
				delete(grid, loc)
			}
		}

		dx, dy := dir.Unit()
		loc.Shift(dx, dy)
	}

	return
}

func day22Part1(input string) (string, error) {
	grid, start := day22Parse(input)
	return strconv.Itoa(day22Bursts(grid, start, 10_000, false)), nil
}

func day22Part2(input string) (string, error) {
	grid, start := day22Parse(input)
	return strconv.Itoa(day22Bursts(grid, start, 10_000_000, true)), nil
}
