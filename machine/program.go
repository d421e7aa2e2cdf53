package machine

// Opcode pairs an assembled instruction with its source location.
type Opcode struct {
	LineNo int      // Line number of the source line.
	Words  []string // Source words, after equate and $() expansion.
	Code   Instruction
}

// Program is an ordered, immutable sequence of instructions. A single
// Program may be shared, read-only, by any number of machines.
type Program struct {
	Opcodes []Opcode
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.Opcodes)
}

// Code returns the instruction at index n.
func (prog *Program) Code(n int) Instruction {
	return prog.Opcodes[n].Code
}
