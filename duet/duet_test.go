package duet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/aoc2017/machine"
)

func parseText(t *testing.T, text string) *machine.Program {
	t.Helper()

	asm := &machine.Assembler{}
	prog, err := asm.Parse(strings.NewReader(text))
	assert.NoError(t, err)

	return prog
}

func TestDuetExchange(t *testing.T) {
	assert := assert.New(t)

	prog := parseText(t, strings.Join([]string{
		"snd 1",
		"snd 2",
		"snd p",
		"rcv a",
		"rcv b",
		"rcv c",
		"rcv d",
	}, "\n"))

	d := New(prog)
	d.Run()

	// Each machine receives 1, 2, and the other's program ID, then
	// deadlocks on its fourth rcv.
	assert.True(d.Zero.IsAwaitingInput())
	assert.True(d.One.IsAwaitingInput())
	assert.Equal(int64(3), d.Zero.TotalSentCount())
	assert.Equal(int64(3), d.One.TotalSentCount())

	c0, err := d.Zero.ReadRegister('c')
	assert.NoError(err)
	assert.Equal(int64(1), c0)

	c1, err := d.One.ReadRegister('c')
	assert.NoError(err)
	assert.Equal(int64(0), c1)
}

func TestDuetImmediateDeadlock(t *testing.T) {
	assert := assert.New(t)

	prog := parseText(t, strings.Join([]string{
		"rcv a",
		"snd a",
		"jgz 1 -2",
	}, "\n"))

	d := New(prog)
	d.Run()

	// Pure echo programs never send first, so both starve at once.
	assert.True(d.Zero.IsAwaitingInput())
	assert.True(d.One.IsAwaitingInput())
	assert.Equal(int64(0), d.Zero.TotalSentCount())
	assert.Equal(int64(0), d.One.TotalSentCount())
}

func TestDuetBothHalt(t *testing.T) {
	assert := assert.New(t)

	prog := parseText(t, strings.Join([]string{
		"snd p",
		"rcv a",
		"add a p",
	}, "\n"))

	d := New(prog)
	d.Run()

	assert.True(d.Zero.IsHalted())
	assert.True(d.One.IsHalted())

	a0, err := d.Zero.ReadRegister('a')
	assert.NoError(err)
	assert.Equal(int64(1), a0)

	a1, err := d.One.ReadRegister('a')
	assert.NoError(err)
	assert.Equal(int64(1), a1)
}
