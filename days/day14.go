package days

import (
	"encoding/hex"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/ezrec/aoc2017/geom"
	"github.com/ezrec/aoc2017/knot"
)

func init() {
	register(Puzzle{Day: 14, Title: "Disk Defragmentation", Part1: day14Part1, Part2: day14Part2})
}

const day14Size = 128

// day14Grid expands a key into the 128x128 used-square bitmap, one knot
// hash per row.
func day14Grid(key string) (grid [day14Size][day14Size]bool, err error) {
	for row := 0; row < day14Size; row++ {
		var digest []byte
		digest, err = hex.DecodeString(knot.Sum(fmt.Sprintf("%s-%d", key, row)))
		if err != nil {
			return
		}
		for i, b := range digest {
			for bit := 0; bit < 8; bit++ {
				grid[row][i*8+bit] = b&(0x80>>bit) != 0
			}
		}
	}
	return
}

// day14Regions counts groups of orthogonally connected used squares.
func day14Regions(grid *[day14Size][day14Size]bool) (regions int) {
	seen := map[geom.Point2]bool{}

	for y := 0; y < day14Size; y++ {
		for x := 0; x < day14Size; x++ {
			start := geom.Point2{X: x, Y: y}
			if !grid[y][x] || seen[start] {
				continue
			}
			regions++

			queue := []geom.Point2{start}
			seen[start] = true
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				for _, n := range p.Adjacent() {
					if n.X < 0 || n.X >= day14Size || n.Y < 0 || n.Y >= day14Size {
						continue
					}
					if grid[n.Y][n.X] && !seen[n] {
						seen[n] = true
						queue = append(queue, n)
					}
				}
			}
		}
	}

	return
}

func day14Part1(input string) (string, error) {
	key := strings.TrimSpace(input)

	used := 0
	for row := 0; row < day14Size; row++ {
		digest, err := hex.DecodeString(knot.Sum(fmt.Sprintf("%s-%d", key, row)))
		if err != nil {
			return "", err
		}
		for _, b := range digest {
			used += bits.OnesCount8(b)
		}
	}

	return strconv.Itoa(used), nil
}

func day14Part2(input string) (string, error) {
	grid, err := day14Grid(strings.TrimSpace(input))
	if err != nil {
		return "", err
	}
	return strconv.Itoa(day14Regions(&grid)), nil
}
