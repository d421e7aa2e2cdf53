package days

import (
	"errors"
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{Day: 24, Title: "Electromagnetic Moat", Part1: day24Part1, Part2: day24Part2})
}

type day24Component struct {
	a, b int
}

func day24Parse(input string) (components []day24Component, err error) {
	for _, line := range lines(input) {
		lhs, rhs, ok := strings.Cut(line, "/")
		if !ok {
			err = errors.Join(ErrMalformedInput, ErrBadLine(line))
			return
		}
		var c day24Component
		c.a, err = strconv.Atoi(lhs)
		if err == nil {
			c.b, err = strconv.Atoi(rhs)
		}
		if err != nil {
			err = errors.Join(ErrMalformedInput, ErrBadLine(line))
			return
		}
		components = append(components, c)
	}
	return
}

// day24Search tries every bridge extension from the open port count,
// returning the strongest strength and the longest bridge's length and
// strength.
func day24Search(components []day24Component, used []bool, port int) (strongest, longest, longStrength int) {
	for i, c := range components {
		if used[i] || (c.a != port && c.b != port) {
			continue
		}

		next := c.a
		if c.a == port {
			next = c.b
		}

		used[i] = true
		s, l, ls := day24Search(components, used, next)
		used[i] = false

		s += c.a + c.b
		l++
		ls += c.a + c.b

		strongest = max(strongest, s)
		if l > longest || (l == longest && ls > longStrength) {
			longest, longStrength = l, ls
		}
	}

	return
}

func day24Part1(input string) (string, error) {
	components, err := day24Parse(input)
	if err != nil {
		return "", err
	}
	strongest, _, _ := day24Search(components, make([]bool, len(components)), 0)
	return strconv.Itoa(strongest), nil
}

func day24Part2(input string) (string, error) {
	components, err := day24Parse(input)
	if err != nil {
		return "", err
	}
	_, _, strength := day24Search(components, make([]bool, len(components)), 0)
	return strconv.Itoa(strength), nil
}
