package days

import (
	"encoding/binary"
	"errors"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

func init() {
	register(Puzzle{Day: 6, Title: "Memory Reallocation", Part1: day06Part1, Part2: day06Part2})
}

func day06Parse(input string) (banks []int, err error) {
	for _, word := range strings.Fields(input) {
		var v int
		v, err = strconv.Atoi(word)
		if err != nil {
			err = errors.Join(ErrMalformedInput, ErrBadLine(word))
			return
		}
		banks = append(banks, v)
	}
	return
}

// day06Fingerprint condenses a bank configuration to a hash key.
func day06Fingerprint(banks []int) uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, b := range banks {
		binary.LittleEndian.PutUint64(buf[:], uint64(b))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// day06Redistribute empties the fullest bank, lowest index first, dealing
// its blocks around the circle.
func day06Redistribute(banks []int) {
	fullest := 0
	for i, v := range banks {
		if v > banks[fullest] {
			fullest = i
		}
	}

	blocks := banks[fullest]
	banks[fullest] = 0
	for i := fullest; blocks > 0; blocks-- {
		i = (i + 1) % len(banks)
		banks[i]++
	}
}

// day06Cycles redistributes until a configuration repeats, returning the
// total steps and the length of the repeating loop.
func day06Cycles(banks []int) (steps, loop int) {
	seen := map[uint64]int{day06Fingerprint(banks): 0}

	for {
		steps++
		day06Redistribute(banks)

		fp := day06Fingerprint(banks)
		if first, ok := seen[fp]; ok {
			loop = steps - first
			return
		}
		seen[fp] = steps
	}
}

func day06Part1(input string) (string, error) {
	banks, err := day06Parse(input)
	if err != nil {
		return "", err
	}
	steps, _ := day06Cycles(banks)
	return strconv.Itoa(steps), nil
}

func day06Part2(input string) (string, error) {
	banks, err := day06Parse(input)
	if err != nil {
		return "", err
	}
	_, loop := day06Cycles(banks)
	return strconv.Itoa(loop), nil
}
