package days

import (
	"strconv"
	"strings"

	"github.com/ezrec/aoc2017/machine"
)

func init() {
	register(Puzzle{Day: 23, Title: "Coprocessor Conflagration", Part1: day23Part1, Part2: day23Part2})
}

func day23Assemble(input string) (*machine.Program, error) {
	asm := &machine.Assembler{}
	return asm.Parse(strings.NewReader(input))
}

// day23Composite reports whether n has a divisor other than 1 and itself.
func day23Composite(n int64) bool {
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return true
		}
	}
	return false
}

func day23Part1(input string) (string, error) {
	prog, err := day23Assemble(input)
	if err != nil {
		return "", err
	}

	m := machine.New(prog, false)
	m.Run()

	return strconv.Itoa(m.MulCount()), nil
}

// day23Part2 skips the coprocessor's trillion-step busy loop. The program
// counts composites over a 17000 wide range seeded from its first
// instruction, stepping by the final jump distance.
func day23Part2(input string) (string, error) {
	prog, err := day23Assemble(input)
	if err != nil {
		return "", err
	}
	if prog.Len() < 2 {
		return "", ErrNoSolution
	}

	m := machine.New(prog, false)
	seed, ok := m.ArgumentValue(0)
	if !ok {
		return "", ErrNoSolution
	}
	step, ok := m.ArgumentValue(prog.Len() - 2)
	if !ok {
		return "", ErrNoSolution
	}
	if step < 0 {
		step = -step
	}
	if step == 0 {
		return "", ErrNoSolution
	}

	lower := seed*100 + 100_000
	upper := lower + 17_000

	count := 0
	for n := lower; n <= upper; n += step {
		if day23Composite(n) {
			count++
		}
	}

	return strconv.Itoa(count), nil
}
