// Package duet drives two paired machines over a shared program.
//
// Each machine is seeded with its program ID in register 'p', and values
// sent by one machine are delivered to the other's receive queue. The
// driver stops on completion or deadlock.
package duet

import (
	"github.com/ezrec/aoc2017/machine"
)

// Duet is a pair of machines wired back to back.
type Duet struct {
	Zero *machine.Machine // Machine with register p = 0.
	One  *machine.Machine // Machine with register p = 1.
}

// New creates a pair of paired-mode machines over prog, each with its
// program ID in register 'p'.
func New(prog *machine.Program) (d *Duet) {
	d = &Duet{
		Zero: machine.New(prog, true),
		One:  machine.New(prog, true),
	}
	_ = d.One.WriteRegister('p', 1)

	return
}

// Run alternates bursts of execution, shuttling sent values between the
// machines, until both machines halt, one halts while the other is
// starved, or both await input with nothing left to deliver.
func (d *Duet) Run() {
	for {
		d.Zero.Run()
		d.One.Run()

		// Both machines are now halted or awaiting input.
		moved := false
		if d.Zero.IsAwaitingInput() {
			if values := d.One.DrainOutbound(); len(values) > 0 {
				d.Zero.DeliverInbound(values)
				moved = true
			}
		}
		if d.One.IsAwaitingInput() {
			if values := d.Zero.DrainOutbound(); len(values) > 0 {
				d.One.DeliverInbound(values)
				moved = true
			}
		}

		if !moved {
			return
		}
	}
}
