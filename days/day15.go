package days

import (
	"errors"
	"regexp"
	"strconv"
)

func init() {
	register(Puzzle{Day: 15, Title: "Dueling Generators", Part1: day15Part1, Part2: day15Part2})
}

const (
	day15FactorA = 16807
	day15FactorB = 48271
	day15Modulus = 2147483647
)

var day15Re = regexp.MustCompile(`Generator A starts with (\d+)[\s\S]*Generator B starts with (\d+)`)

func day15Parse(input string) (a, b int64, err error) {
	m := day15Re.FindStringSubmatch(input)
	if m == nil {
		err = errors.Join(ErrMalformedInput, ErrBadLine(input))
		return
	}
	a, _ = strconv.ParseInt(m[1], 10, 64)
	b, _ = strconv.ParseInt(m[2], 10, 64)
	return
}

func day15Part1(input string) (string, error) {
	a, b, err := day15Parse(input)
	if err != nil {
		return "", err
	}

	matches := 0
	for n2 := 0; n2 < 40_000_000; n2++ {
		a = a * day15FactorA % day15Modulus
		b = b * day15FactorB % day15Modulus
		if a&0xffff == b&0xffff {
			matches++
		}
	}

	return strconv.Itoa(matches), nil
}

func day15Part2(input string) (string, error) {
	a, b, err := day15Parse(input)
	if err != nil {
		return "", err
	}

	nextA := func() int64 {
		for {
			a = a * day15FactorA % day15Modulus
			if a%4 == 0 {
				return a
			}
		}
	}
	nextB := func() int64 {
		for {
			b = b * day15FactorB % day15Modulus
			if b%8 == 0 {
				return b
			}
		}
	}

	matches := 0
	for n3 := 0; n3 < 5_000_000; n3++ {
		if nextA()&0xffff == nextB()&0xffff {
			matches++
		}
	}

	return strconv.Itoa(matches), nil
}
