package days

import (
	"strconv"
	"strings"

	"github.com/ezrec/aoc2017/duet"
	"github.com/ezrec/aoc2017/machine"
)

func init() {
	register(Puzzle{Day: 18, Title: "Duet", Part1: day18Part1, Part2: day18Part2})
}

func day18Assemble(input string) (*machine.Program, error) {
	asm := &machine.Assembler{}
	return asm.Parse(strings.NewReader(input))
}

func day18Part1(input string) (string, error) {
	prog, err := day18Assemble(input)
	if err != nil {
		return "", err
	}

	m := machine.New(prog, false)
	m.Run()

	value, ok := m.LastSent()
	if !ok {
		return "", ErrNoSolution
	}

	return strconv.FormatInt(value, 10), nil
}

func day18Part2(input string) (string, error) {
	prog, err := day18Assemble(input)
	if err != nil {
		return "", err
	}

	d := duet.New(prog)
	d.Run()

	return strconv.FormatInt(d.One.TotalSentCount(), 10), nil
}
