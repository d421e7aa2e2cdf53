package days

import (
	"errors"
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{Day: 1, Title: "Inverse Captcha", Part1: day01Part1, Part2: day01Part2})
}

func day01Parse(input string) (digits []int, err error) {
	for _, c := range strings.TrimSpace(input) {
		if c < '0' || c > '9' {
			err = errors.Join(ErrMalformedInput, ErrBadLine(string(c)))
			return
		}
		digits = append(digits, int(c-'0'))
	}
	return
}

// day01Sum totals the digits that match the digit offset places around the
// circular sequence.
func day01Sum(digits []int, offset int) (sum int) {
	for i, d := range digits {
		if d == digits[(i+offset)%len(digits)] {
			sum += d
		}
	}
	return
}

func day01Part1(input string) (string, error) {
	digits, err := day01Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(day01Sum(digits, 1)), nil
}

func day01Part2(input string) (string, error) {
	digits, err := day01Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(day01Sum(digits, len(digits)/2)), nil
}
