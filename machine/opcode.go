package machine

// Op is an instruction operation type.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_SND = Op(0) // snd
	OP_SET = Op(1) // set
	OP_ADD = Op(2) // add
	OP_MUL = Op(3) // mul
	OP_MOD = Op(4) // mod
	OP_RCV = Op(5) // rcv
	OP_JGZ = Op(6) // jgz
	OP_SUB = Op(7) // sub
	OP_JNZ = Op(8) // jnz
)

// opMap maps opcode keywords to operations.
var opMap = map[string]Op{
	"snd": OP_SND,
	"set": OP_SET,
	"add": OP_ADD,
	"mul": OP_MUL,
	"mod": OP_MOD,
	"rcv": OP_RCV,
	"jgz": OP_JGZ,
	"sub": OP_SUB,
	"jnz": OP_JNZ,
}

// Operand is a value-or-register instruction argument. A register operand
// resolves to the register's current value at execution time; a literal
// operand resolves to itself.
type Operand struct {
	Reg   byte  // Register name, 'a'..'z', when IsReg is set.
	Value int64 // Literal value otherwise.
	IsReg bool
}

// Instruction is a single decoded instruction. Instructions are created by
// the Assembler and never mutated.
type Instruction struct {
	Op  Op
	Reg byte    // Target register for set/add/mul/mod/sub/rcv.
	X   Operand // Value operand, or the jump check for jgz/jnz.
	Y   Operand // Jump offset for jgz/jnz.
}
