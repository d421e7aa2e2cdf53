package days

import (
	"errors"
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{Day: 16, Title: "Permutation Promenade", Part1: day16Part1, Part2: day16Part2})
}

const day16Programs = 16

type day16Move struct {
	kind   byte // 's', 'x', or 'p'
	a, b   int
	pa, pb byte
}

func day16Parse(input string) (moves []day16Move, err error) {
	for _, word := range strings.Split(strings.TrimSpace(input), ",") {
		if word == "" {
			continue
		}

		move := day16Move{kind: word[0]}
		rest := word[1:]
		switch move.kind {
		case 's':
			move.a, err = strconv.Atoi(rest)
		case 'x':
			lhs, rhs, ok := strings.Cut(rest, "/")
			if !ok {
				err = ErrBadLine(word)
				break
			}
			move.a, err = strconv.Atoi(lhs)
			if err == nil {
				move.b, err = strconv.Atoi(rhs)
			}
		case 'p':
			if len(rest) != 3 || rest[1] != '/' {
				err = ErrBadLine(word)
				break
			}
			move.pa, move.pb = rest[0], rest[2]
		default:
			err = ErrBadLine(word)
		}
		if err != nil {
			err = errors.Join(ErrMalformedInput, err)
			return
		}

		moves = append(moves, move)
	}
	return
}

// day16Dance applies one full pass of moves to the program order in place.
func day16Dance(order []byte, moves []day16Move) {
	for _, move := range moves {
		switch move.kind {
		case 's':
			n := move.a % len(order)
			rotated := append([]byte{}, order[len(order)-n:]...)
			rotated = append(rotated, order[:len(order)-n]...)
			copy(order, rotated)
		case 'x':
			order[move.a], order[move.b] = order[move.b], order[move.a]
		case 'p':
			a := strings.IndexByte(string(order), move.pa)
			b := strings.IndexByte(string(order), move.pb)
			order[a], order[b] = order[b], order[a]
		}
	}
}

func day16Start(count int) []byte {
	order := make([]byte, count)
	for i := range order {
		order[i] = byte('a' + i)
	}
	return order
}

func day16Part1(input string) (string, error) {
	moves, err := day16Parse(input)
	if err != nil {
		return "", err
	}

	order := day16Start(day16Programs)
	day16Dance(order, moves)

	return string(order), nil
}

func day16Part2(input string) (string, error) {
	moves, err := day16Parse(input)
	if err != nil {
		return "", err
	}

	// The dance is a bijection on orderings, so iterating from the start
	// must cycle back to it. One billion passes reduce to the remainder.
	const total = 1_000_000_000
	start := string(day16Start(day16Programs))
	order := day16Start(day16Programs)

	var states []string
	for {
		states = append(states, string(order))
		day16Dance(order, moves)
		if string(order) == start {
			break
		}
		if len(states) == total {
			// No cycle within the budget; the last state is the answer.
			return string(order), nil
		}
	}

	return states[total%len(states)], nil
}
