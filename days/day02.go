package days

import (
	"errors"
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{Day: 2, Title: "Corruption Checksum", Part1: day02Part1, Part2: day02Part2})
}

func day02Parse(input string) (rows [][]int, err error) {
	for _, line := range lines(input) {
		var row []int
		for _, word := range strings.Fields(line) {
			var v int
			v, err = strconv.Atoi(word)
			if err != nil {
				err = errors.Join(ErrMalformedInput, ErrBadLine(line))
				return
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return
}

func day02Part1(input string) (string, error) {
	rows, err := day02Parse(input)
	if err != nil {
		return "", err
	}

	checksum := 0
	for _, row := range rows {
		lo, hi := row[0], row[0]
		for _, v := range row {
			lo = min(lo, v)
			hi = max(hi, v)
		}
		checksum += hi - lo
	}

	return strconv.Itoa(checksum), nil
}

func day02Part2(input string) (string, error) {
	rows, err := day02Parse(input)
	if err != nil {
		return "", err
	}

	sum := 0
	for _, row := range rows {
		for i, a := range row {
			for j, b := range row {
				if i != j && b != 0 && a%b == 0 {
					sum += a / b
				}
			}
		}
	}

	return strconv.Itoa(sum), nil
}
