package days

import (
	"errors"
	"strconv"
	"strings"
)

func init() {
	register(Puzzle{Day: 21, Title: "Fractal Art", Part1: day21Part1, Part2: day21Part2})
}

// day21Start is the seed pattern every enhancement begins from.
var day21Start = []string{".#.", "..#", "###"}

func day21Parse(input string) (rules map[string]string, err error) {
	rules = map[string]string{}
	for _, line := range lines(input) {
		from, to, ok := strings.Cut(line, " => ")
		if !ok {
			err = errors.Join(ErrMalformedInput, ErrBadLine(line))
			return
		}
		rules[from] = to
	}
	return
}

// day21Rotate returns the pattern rotated a quarter turn.
func day21Rotate(rows []string) []string {
	size := len(rows)
	out := make([]string, size)
	for y := 0; y < size; y++ {
		row := make([]byte, size)
		for x := 0; x < size; x++ {
			row[x] = rows[size-1-x][y]
		}
		out[y] = string(row)
	}
	return out
}

// day21Flip returns the pattern mirrored left to right.
func day21Flip(rows []string) []string {
	out := make([]string, len(rows))
	for y, row := range rows {
		flipped := []byte(row)
		for i, j := 0, len(flipped)-1; i < j; i, j = i+1, j-1 {
			flipped[i], flipped[j] = flipped[j], flipped[i]
		}
		out[y] = string(flipped)
	}
	return out
}

// day21Variants returns the rule keys for all eight orientations of a
// pattern.
func day21Variants(rows []string) (keys []string) {
	for n1 := 0; n1 < 4; n1++ {
		keys = append(keys, strings.Join(rows, "/"))
		keys = append(keys, strings.Join(day21Flip(rows), "/"))
		rows = day21Rotate(rows)
	}
	return
}

// day21Enhance splits the grid into 2x2 or 3x3 tiles and replaces each via
// the rulebook.
func day21Enhance(rules map[string]string, grid []string) ([]string, error) {
	unit := 3
	if len(grid)%2 == 0 {
		unit = 2
	}
	tiles := len(grid) / unit
	next := unit + 1

	out := make([][]byte, tiles*next)
	for i := range out {
		out[i] = make([]byte, tiles*next)
	}

	for ty := 0; ty < tiles; ty++ {
		for tx := 0; tx < tiles; tx++ {
			tile := make([]string, unit)
			for y := 0; y < unit; y++ {
				tile[y] = grid[ty*unit+y][tx*unit : (tx+1)*unit]
			}

			replacement := ""
			for _, key := range day21Variants(tile) {
				if r, ok := rules[key]; ok {
					replacement = r
					break
				}
			}
			if replacement == "" {
				return nil, errors.Join(ErrNoSolution, ErrBadLine(strings.Join(tile, "/")))
			}

			for y, row := range strings.Split(replacement, "/") {
				copy(out[ty*next+y][tx*next:], row)
			}
		}
	}

	result := make([]string, len(out))
	for i, row := range out {
		result[i] = string(row)
	}
	return result, nil
}

// day21Lit enhances the seed pattern and counts lit pixels.
func day21Lit(rules map[string]string, iterations int) (lit int, err error) {
	grid := day21Start
	for n5 := 0; n5 < iterations; n5++ {
		grid, err = day21Enhance(rules, grid)
		if err != nil {
			return
		}
	}

	for _, row := range grid {
		lit += strings.Count(row, "#")
	}
	return
}

func day21Part1(input string) (string, error) {
	rules, err := day21Parse(input)
	if err != nil {
		return "", err
	}
	lit, err := day21Lit(rules, 5)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(lit), nil
}

func day21Part2(input string) (string, error) {
	rules, err := day21Parse(input)
	if err != nil {
		return "", err
	}
	lit, err := day21Lit(rules, 18)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(lit), nil
}
