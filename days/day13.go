package days

import (
	"errors"
	"regexp"
	"strconv"
)

func init() {
	register(Puzzle{Day: 13, Title: "Packet Scanners", Part1: day13Part1, Part2: day13Part2})
}

var day13LineRe = regexp.MustCompile(`^(\d+): (\d+)$`)

type day13Layer struct {
	depth int
	size  int
}

func day13Parse(input string) (layers []day13Layer, err error) {
	for _, line := range lines(input) {
		m := day13LineRe.FindStringSubmatch(line)
		if m == nil {
			err = errors.Join(ErrMalformedInput, ErrBadLine(line))
			return
		}
		depth, _ := strconv.Atoi(m[1])
		size, _ := strconv.Atoi(m[2])
		layers = append(layers, day13Layer{depth: depth, size: size})
	}
	return
}

// caught reports whether a packet entering at the given delay meets the
// scanner at the top of this layer. The scanner sweep has period
// 2*(size-1).
func (layer day13Layer) caught(delay int) bool {
	return (delay+layer.depth)%(2*(layer.size-1)) == 0
}

func day13Part1(input string) (string, error) {
	layers, err := day13Parse(input)
	if err != nil {
		return "", err
	}

	severity := 0
	for _, layer := range layers {
		if layer.caught(0) {
			severity += layer.depth * layer.size
		}
	}

	return strconv.Itoa(severity), nil
}

func day13Part2(input string) (string, error) {
	layers, err := day13Parse(input)
	if err != nil {
		return "", err
	}

	for delay := 0; ; delay++ {
		safe := true
		for _, layer := range layers {
			if layer.caught(delay) {
				safe = false
				break
			}
		}
		if safe {
			return strconv.Itoa(delay), nil
		}
	}
}
