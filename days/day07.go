package days

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{Day: 7, Title: "Recursive Circus", Part1: day07Part1, Part2: day07Part2})
}

var day07LineRe = regexp.MustCompile(`^([a-z]+) \((\d+)\)(?: -> (.+))?$`)

type day07Tower struct {
	weight   map[string]int
	children map[string][]string
}

func day07Parse(input string) (tower *day07Tower, err error) {
	tower = &day07Tower{
		weight:   map[string]int{},
		children: map[string][]string{},
	}

	for _, line := range lines(input) {
		m := day07LineRe.FindStringSubmatch(line)
		if m == nil {
			err = errors.Join(ErrMalformedInput, ErrBadLine(line))
			return
		}
		name := m[1]
		tower.weight[name], _ = strconv.Atoi(m[2])
		if m[3] != "" {
			tower.children[name] = strings.Split(m[3], ", ")
		}
	}

	return
}

// bottom returns the one program that is not held by any other.
func (tower *day07Tower) bottom() (string, error) {
	held := map[string]bool{}
	for _, kids := range tower.children {
		for _, kid := range kids {
			held[kid] = true
		}
	}
	for name := range tower.weight {
		if !held[name] {
			return name, nil
		}
	}
	return "", ErrNoSolution
}

// towerWeight returns the weight of a program plus everything above it.
func (tower *day07Tower) towerWeight(name string, memo map[string]int) int {
	if w, ok := memo[name]; ok {
		return w
	}
	w := tower.weight[name]
	for _, kid := range tower.children[name] {
		w += tower.towerWeight(kid, memo)
	}
	memo[name] = w
	return w
}

// balance finds the one mis-weighted program above name and returns the
// weight it should have.
func (tower *day07Tower) balance(name string, memo map[string]int) (corrected int, ok bool) {
	byWeight := map[int][]string{}
	for _, kid := range tower.children[name] {
		w := tower.towerWeight(kid, memo)
		byWeight[w] = append(byWeight[w], kid)
	}
	if len(byWeight) < 2 {
		return
	}

	var odd string
	var oddWeight, goodWeight int
	for w, names := range byWeight {
		if len(names) == 1 {
			odd, oddWeight = names[0], w
		} else {
			goodWeight = w
		}
	}

	// The culprit may be deeper in the odd subtree.
	if corrected, ok = tower.balance(odd, memo); ok {
		return
	}

	corrected = tower.weight[odd] + goodWeight - oddWeight
	ok = true

	return
}

func day07Part1(input string) (string, error) {
	tower, err := day07Parse(input)
	if err != nil {
		return "", err
	}
	return tower.bottom()
}

func day07Part2(input string) (string, error) {
	tower, err := day07Parse(input)
	if err != nil {
		return "", err
	}
	bottom, err := tower.bottom()
	if err != nil {
		return "", err
	}

	corrected, ok := tower.balance(bottom, map[string]int{})
	if !ok {
		return "", ErrNoSolution
	}

	return strconv.Itoa(corrected), nil
}
