package days

import (
	"errors"
	"regexp"
	"strconv"
)

func init() {
	register(Puzzle{Day: 8, Title: "I Heard You Like Registers", Part1: day08Part1, Part2: day08Part2})
}

var day08LineRe = regexp.MustCompile(`^([a-z]+) (inc|dec) (-?\d+) if ([a-z]+) (<|<=|>|>=|==|!=) (-?\d+)$`)

type day08Instruction struct {
	target string
	delta  int
	check  string
	cmp    string
	value  int
}

func day08Parse(input string) (insns []day08Instruction, err error) {
	for _, line := range lines(input) {
		m := day08LineRe.FindStringSubmatch(line)
		if m == nil {
			err = errors.Join(ErrMalformedInput, ErrBadLine(line))
			return
		}

		delta, _ := strconv.Atoi(m[3])
		if m[2] == "dec" {
			delta = -delta
		}
		value, _ := strconv.Atoi(m[6])

		insns = append(insns, day08Instruction{
			target: m[1],
			delta:  delta,
			check:  m[4],
			cmp:    m[5],
			value:  value,
		})
	}
	return
}

// day08Run executes the instructions, returning the largest register value
// at the end and the largest ever held.
func day08Run(insns []day08Instruction) (final, peak int) {
	regs := map[string]int{}

	for _, insn := range insns {
		check := regs[insn.check]
		hit := false
		switch insn.cmp {
		case "<":
			hit = check < insn.value
		case "<=":
			hit = check <= insn.value
		case ">":
			hit = check > insn.value
		case ">=":
			hit = check >= insn.value
		case "==":
			hit = check == insn.value
		case "!=":
			hit = check != insn.value
		}
		if hit {
			regs[insn.target] += insn.delta
			peak = max(peak, regs[insn.target])
		}
	}

	for _, v := range regs {
		final = max(final, v)
	}

	return
}

func day08Part1(input string) (string, error) {
	insns, err := day08Parse(input)
	if err != nil {
		return "", err
	}
	final, _ := day08Run(insns)
	return strconv.Itoa(final), nil
}

func day08Part2(input string) (string, error) {
	insns, err := day08Parse(input)
	if err != nil {
		return "", err
	}
	_, peak := day08Run(insns)
	return strconv.Itoa(peak), nil
}
