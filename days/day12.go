package days

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{Day: 12, Title: "Digital Plumber", Part1: day12Part1, Part2: day12Part2})
}

var day12LineRe = regexp.MustCompile(`^(\d+) <-> (.+)$`)

func day12Parse(input string) (pipes map[int][]int, err error) {
	pipes = map[int][]int{}
	for _, line := range lines(input) {
		m := day12LineRe.FindStringSubmatch(line)
		if m == nil {
			err = errors.Join(ErrMalformedInput, ErrBadLine(line))
			return
		}
		from, _ := strconv.Atoi(m[1])
		for _, word := range strings.Split(m[2], ", ") {
			to, aerr := strconv.Atoi(word)
			if aerr != nil {
				err = errors.Join(ErrMalformedInput, ErrBadLine(line))
				return
			}
			pipes[from] = append(pipes[from], to)
		}
	}
	return
}

// day12Group floods outward from start, marking every reachable program in
// seen, and returns the size of the group.
func day12Group(pipes map[int][]int, start int, seen map[int]bool) (size int) {
	queue := []int{start}
	seen[start] = true

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		size++

		for _, to := range pipes[id] {
			if !seen[to] {
				seen[to] = true
				queue = append(queue, to)
			}
		}
	}

	return
}

func day12Part1(input string) (string, error) {
	pipes, err := day12Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(day12Group(pipes, 0, map[int]bool{})), nil
}

func day12Part2(input string) (string, error) {
	pipes, err := day12Parse(input)
	if err != nil {
		return "", err
	}

	seen := map[int]bool{}
	groups := 0
	for id := range pipes {
		if !seen[id] {
			day12Group(pipes, id, seen)
			groups++
		}
	}

	return strconv.Itoa(groups), nil
}
