package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseText(t *testing.T, text string) *Program {
	t.Helper()

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(text))
	assert.NoError(t, err)
	assert.NotNil(t, prog)

	return prog
}

func TestAssemblerBasic(t *testing.T) {
	assert := assert.New(t)

	prog := parseText(t, strings.Join([]string{
		"set a 1",
		"add a 2",
		"mul a a",
		"mod a 5",
		"snd a",
		"set a 0",
		"rcv a",
		"jgz a -1",
	}, "\n"))

	assert.Equal(8, prog.Len())

	code := prog.Code(0)
	assert.Equal(OP_SET, code.Op)
	assert.Equal(byte('a'), code.Reg)
	assert.Equal(Operand{Value: 1}, code.X)

	code = prog.Code(2)
	assert.Equal(OP_MUL, code.Op)
	assert.Equal(Operand{Reg: 'a', IsReg: true}, code.X)

	code = prog.Code(4)
	assert.Equal(OP_SND, code.Op)
	assert.Equal(Operand{Reg: 'a', IsReg: true}, code.X)

	code = prog.Code(7)
	assert.Equal(OP_JGZ, code.Op)
	assert.Equal(Operand{Reg: 'a', IsReg: true}, code.X)
	assert.Equal(Operand{Value: -1}, code.Y)
}

func TestAssemblerCommentsAndBlanks(t *testing.T) {
	assert := assert.New(t)

	prog := parseText(t, strings.Join([]string{
		"; a whole-line comment",
		"",
		"set b 17 ; a trailing comment",
		"   ",
		"sub b -3",
	}, "\n"))

	assert.Equal(2, prog.Len())
	assert.Equal(OP_SET, prog.Code(0).Op)
	assert.Equal(OP_SUB, prog.Code(1).Op)
	assert.Equal(Operand{Value: -3}, prog.Code(1).X)
}

func TestAssemblerEquate(t *testing.T) {
	assert := assert.New(t)

	prog := parseText(t, strings.Join([]string{
		".equ LIMIT 100",
		".equ COUNTER b",
		"set COUNTER LIMIT",
		"jnz COUNTER $(2 - 4)",
	}, "\n"))

	assert.Equal(2, prog.Len())
	assert.Equal(Operand{Value: 100}, prog.Code(0).X)
	assert.Equal(byte('b'), prog.Code(0).Reg)
	assert.Equal(Operand{Value: -2}, prog.Code(1).Y)
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("SEED", "7")

	prog, err := asm.Parse(strings.NewReader("set a $(SEED * 3)"))
	assert.NoError(err)
	assert.Equal(Operand{Value: 21}, prog.Code(0).X)

	// Predefines survive a re-parse.
	prog, err = asm.Parse(strings.NewReader("set a SEED"))
	assert.NoError(err)
	assert.Equal(Operand{Value: 7}, prog.Code(0).X)
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		text string
		want error
	}{
		{"bogus a 1", ErrOpcodeInvalid},
		{"set a", ErrValueMissing},
		{"set a 1 2", ErrExtraArgs},
		{"set 9 1", ErrParseValue("9")},
		{"set ab 1", ErrParseValue("ab")},
		{"snd x1", ErrParseValue("x1")},
		{".equ ONLY", ErrEquateSyntax},
		{".equ A 1\n.equ A 2", ErrEquateDuplicate},
	} {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(tc.text))
		assert.ErrorIs(err, tc.want, tc.text)

		var serr *ErrSyntax
		assert.ErrorAs(err, &serr, tc.text)
	}
}

func TestAssemblerSyntaxLineNo(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader("set a 1\nset a 2\noops"))

	var serr *ErrSyntax
	assert.ErrorAs(err, &serr)
	assert.Equal(3, serr.LineNo)
	assert.Equal("oops", serr.Line)
}

func TestOpString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("snd", OP_SND.String())
	assert.Equal("jnz", OP_JNZ.String())
	assert.Equal("Op(99)", Op(99).String())
}
