package days

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/ezrec/aoc2017/geom"
)

func init() {
	register(Puzzle{Day: 20, Title: "Particle Swarm", Part1: day20Part1, Part2: day20Part2})
}

var day20LineRe = regexp.MustCompile(`^p=<(-?\d+),(-?\d+),(-?\d+)>, v=<(-?\d+),(-?\d+),(-?\d+)>, a=<(-?\d+),(-?\d+),(-?\d+)>$`)

type day20Particle struct {
	pos, vel, acc geom.Point3
}

// tick advances the particle one time step.
func (p *day20Particle) tick() {
	p.vel.Shift(p.acc.X, p.acc.Y, p.acc.Z)
	p.pos.Shift(p.vel.X, p.vel.Y, p.vel.Z)
}

func day20Parse(input string) (particles []day20Particle, err error) {
	for _, line := range lines(input) {
		m := day20LineRe.FindStringSubmatch(line)
		if m == nil {
			err = errors.Join(ErrMalformedInput, ErrBadLine(line))
			return
		}

		var v [9]int
		for i := range v {
			v[i], _ = strconv.Atoi(m[i+1])
		}
		particles = append(particles, day20Particle{
			pos: geom.Point3{X: v[0], Y: v[1], Z: v[2]},
			vel: geom.Point3{X: v[3], Y: v[4], Z: v[5]},
			acc: geom.Point3{X: v[6], Y: v[7], Z: v[8]},
		})
	}
	return
}

func day20Part1(input string) (string, error) {
	particles, err := day20Parse(input)
	if err != nil {
		return "", err
	}
	if len(particles) == 0 {
		return "", ErrNoSolution
	}

	// In the long run the smallest acceleration wins, with velocity and
	// then position breaking ties.
	closest := 0
	for i, p := range particles {
		c := particles[closest]
		switch {
		case p.acc.Norm() != c.acc.Norm():
			if p.acc.Norm() < c.acc.Norm() {
				closest = i
			}
		case p.vel.Norm() != c.vel.Norm():
			if p.vel.Norm() < c.vel.Norm() {
				closest = i
			}
		case p.pos.Norm() < c.pos.Norm():
			closest = i
		}
	}

	return strconv.Itoa(closest), nil
}

func day20Part2(input string) (string, error) {
	particles, err := day20Parse(input)
	if err != nil {
		return "", err
	}

	alive := map[int]*day20Particle{}
	for i := range particles {
		alive[i] = &particles[i]
	}

	distance := map[[2]int]int{}
	for {
		// Remove every particle that shares a position with another.
		byPos := map[geom.Point3][]int{}
		for i, p := range alive {
			byPos[p.pos] = append(byPos[p.pos], i)
		}
		for _, ids := range byPos {
			if len(ids) > 1 {
				for _, id := range ids {
					delete(alive, id)
				}
			}
		}

		// Once every pair is separating, no further collisions happen.
		separating := true
		compared := false
		for i, p := range alive {
			for j, q := range alive {
				if i >= j {
					continue
				}
				d := p.pos.Manhattan(q.pos)
				if prev, ok := distance[[2]int{i, j}]; ok {
					compared = true
					if d < prev {
						separating = false
					}
				}
				distance[[2]int{i, j}] = d
			}
		}
		if len(alive) < 2 || (compared && separating) {
			return strconv.Itoa(len(alive)), nil
		}

		for _, p := range alive {
			p.tick()
		}
	}
}
