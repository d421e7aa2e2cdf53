package days

import (
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{Day: 9, Title: "Stream Processing", Part1: day09Part1, Part2: day09Part2})
}

// day09Scan walks the character stream once, scoring groups by nesting
// depth and counting non-canceled garbage characters.
func day09Scan(stream string) (score, garbage int) {
	depth := 0
	inGarbage := false

	for i := 0; i < len(stream); i++ {
		c := stream[i]
		switch {
		case inGarbage && c == '!':
			i++
		case inGarbage && c == '>':
			inGarbage = false
		case inGarbage:
			garbage++
		case c == '<':
			inGarbage = true
		case c == '{':
			depth++
			score += depth
		case c == '}':
			depth--
		}
	}

	return
}

func day09Part1(input string) (string, error) {
	score, _ := day09Scan(strings.TrimSpace(input))
	return strconv.Itoa(score), nil
}

func day09Part2(input string) (string, error) {
	_, garbage := day09Scan(strings.TrimSpace(input))
	return strconv.Itoa(garbage), nil
}
