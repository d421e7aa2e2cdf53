package machine

import (
	"errors"

	"github.com/ezrec/aoc2017/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrRegisterInvalid = errors.New(f("register invalid"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOpcodeMissing   = errors.New(f("opcode missing"))
	ErrValueMissing    = errors.New(f("value missing"))
	ErrExtraArgs       = errors.New(f("excessive arguments"))
)

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrRegisterName byte

func (err ErrRegisterName) Error() string {
	return f("register '%c' unknown", byte(err))
}
