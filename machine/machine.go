// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import "errors"

// Machine executes a Program against a bank of 26 registers.
//
// A paired machine treats rcv as a queue read, going into the awaiting
// input state when the inbound queue is empty. A standalone machine treats
// rcv as a recover: when the named register is non-zero it stops without
// halting, leaving the last sent value retrievable via LastSent.
type Machine struct {
	prog   *Program
	pc     int
	reg    [26]int64
	paired bool

	inbound  []int64
	outbound []int64

	halted   bool
	awaiting bool

	totalSent int64
	lastSent  int64
	sentAny   bool
	mulCount  int
}

// New creates a machine over prog with all registers zero, the program
// counter at zero, and empty queues.
func New(prog *Program, paired bool) (m *Machine) {
	m = &Machine{prog: prog, paired: paired}
	return
}

// regIndex converts a register name to a bank index.
func regIndex(name byte) (n int, err error) {
	if name < 'a' || name > 'z' {
		err = errors.Join(ErrRegisterInvalid, ErrRegisterName(name))
		return
	}
	n = int(name - 'a')
	return
}

// value resolves an operand against the current register bank.
func (m *Machine) value(arg Operand) int64 {
	if arg.IsReg {
		return m.reg[arg.Reg-'a']
	}
	return arg.Value
}

// Run resumes execution from the current program counter, executing
// instructions until the machine halts, stops on a standalone recover, or
// goes awaiting input on an empty-queue rcv. Run is a no-op on a halted or
// awaiting machine.
func (m *Machine) Run() {
	if m.halted || m.awaiting {
		return
	}

	for m.pc >= 0 && m.pc < m.prog.Len() {
		code := m.prog.Code(m.pc)

		switch code.Op {
		case OP_SND:
			m.SendValue(m.value(code.X))
		case OP_SET:
			m.reg[code.Reg-'a'] = m.value(code.X)
		case OP_ADD:
			m.reg[code.Reg-'a'] += m.value(code.X)
		case OP_SUB:
			m.reg[code.Reg-'a'] -= m.value(code.X)
		case OP_MUL:
			m.reg[code.Reg-'a'] *= m.value(code.X)
			m.mulCount++
		case OP_MOD:
			// A zero modulus panics, as Go integer division does.
			m.reg[code.Reg-'a'] %= m.value(code.X)
		case OP_RCV:
			if !m.paired && m.reg[code.Reg-'a'] != 0 {
				// Recover: stop, not halted, counter still on the rcv.
				return
			}
			if len(m.inbound) == 0 {
				m.awaiting = true
				return
			}
			m.reg[code.Reg-'a'] = m.inbound[0]
			m.inbound = m.inbound[1:]
		case OP_JGZ:
			if m.value(code.X) > 0 {
				m.pc += int(m.value(code.Y))
				continue
			}
		case OP_JNZ:
			if m.value(code.X) != 0 {
				m.pc += int(m.value(code.Y))
				continue
			}
		}

		m.pc++
	}

	m.halted = true
}

// SendValue appends a value to the outbound queue and records it as the
// last value sent.
func (m *Machine) SendValue(value int64) {
	m.outbound = append(m.outbound, value)
	m.totalSent++
	m.lastSent = value
	m.sentAny = true
}

// DrainOutbound returns and clears all values queued for sending, in the
// order they were sent.
func (m *Machine) DrainOutbound() (values []int64) {
	values = m.outbound
	m.outbound = nil
	return
}

// DeliverInbound appends a batch of values to the inbound queue. The
// awaiting input state is cleared when the queue becomes non-empty.
func (m *Machine) DeliverInbound(values []int64) {
	m.inbound = append(m.inbound, values...)
	if len(m.inbound) != 0 {
		m.awaiting = false
	}
}

// ReadRegister returns the current value of a register.
func (m *Machine) ReadRegister(name byte) (value int64, err error) {
	n, err := regIndex(name)
	if err != nil {
		return
	}
	value = m.reg[n]
	return
}

// WriteRegister sets the value of a register.
func (m *Machine) WriteRegister(name byte, value int64) (err error) {
	n, err := regIndex(name)
	if err != nil {
		return
	}
	m.reg[n] = value
	return
}

// IsHalted reports whether the program counter has left the program.
func (m *Machine) IsHalted() bool {
	return m.halted
}

// IsAwaitingInput reports whether the machine is stopped on a rcv with an
// empty inbound queue.
func (m *Machine) IsAwaitingInput() bool {
	return m.awaiting
}

// LastSent returns the most recently sent value, if any value has been
// sent.
func (m *Machine) LastSent() (value int64, ok bool) {
	value, ok = m.lastSent, m.sentAny
	return
}

// TotalSentCount returns the number of values sent over the machine's
// lifetime.
func (m *Machine) TotalSentCount() int64 {
	return m.totalSent
}

// MulCount returns the number of mul instructions executed.
func (m *Machine) MulCount() int {
	return m.mulCount
}

// ArgumentValue resolves the final operand of the instruction at index n
// against the current register bank. There is no final operand for rcv.
func (m *Machine) ArgumentValue(n int) (value int64, ok bool) {
	if n < 0 || n >= m.prog.Len() {
		return
	}

	code := m.prog.Code(n)
	switch code.Op {
	case OP_RCV:
		return
	case OP_JGZ, OP_JNZ:
		value = m.value(code.Y)
	default:
		value = m.value(code.X)
	}
	ok = true

	return
}
