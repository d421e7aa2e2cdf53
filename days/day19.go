package days

import (
	"strconv"
	"strings"

	"github.com/ezrec/aoc2017/geom"
)

func init() {
	register(Puzzle{Day: 19, Title: "A Series of Tubes", Part1: day19Part1, Part2: day19Part2})
}

// day19Parse maps every non-blank character of the routing diagram to its
// location. Leading whitespace is significant, so the raw lines are kept.
func day19Parse(input string) (track map[geom.Point2]byte, start geom.Point2, err error) {
	track = map[geom.Point2]byte{}
	for y, line := range strings.Split(input, "\n") {
		for x := 0; x < len(line); x++ {
			if line[x] != ' ' {
				track[geom.Point2{X: x, Y: y}] = line[x]
			}
		}
	}

	for p := range track {
		if p.Y == 0 {
			start = p
			return
		}
	}
	err = ErrNoSolution

	return
}

// day19Walk follows the track from the entry point, collecting letters and
// counting every tile stepped on, the entry tile included.
func day19Walk(track map[geom.Point2]byte, start geom.Point2) (letters string, steps int) {
	loc := start
	dir := geom.SOUTH
	steps = 1

	for {
		c := track[loc]
		if c >= 'A' && c <= 'Z' {
			letters += string(c)
		}

		if c == '+' {
			// Corners turn toward whichever side continues the track.
			for _, turn := range []geom.Direction{dir.Left(), dir.Right()} {
				dx, dy := turn.Unit()
				next := loc
				next.Shift(dx, dy)
				if _, ok := track[next]; ok {
					dir = turn
					break
				}
			}
		}

		dx, dy := dir.Unit()
		next := loc
		next.Shift(dx, dy)
		if _, ok := track[next]; !ok {
			return
		}
		loc = next
		steps++
	}
}

func day19Part1(input string) (string, error) {
	track, start, err := day19Parse(input)
	if err != nil {
		return "", err
	}
	letters, _ := day19Walk(track, start)
	return letters, nil
}

func day19Part2(input string) (string, error) {
	track, start, err := day19Parse(input)
	if err != nil {
		return "", err
	}
	_, steps := day19Walk(track, start)
	return strconv.Itoa(steps), nil
}
