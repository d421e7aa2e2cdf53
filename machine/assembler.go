// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the duet instruction set.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate, visible to every subsequent Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the integer value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseValue(word)
	}
	return
}

// operandOf parses a word as a value-or-register operand.
func (asm *Assembler) operandOf(word string) (arg Operand, err error) {
	if len(word) == 1 && word[0] >= 'a' && word[0] <= 'z' {
		arg = Operand{Reg: word[0], IsReg: true}
		return
	}

	value, err := asm.valueOf(word)
	if err != nil {
		return
	}
	arg = Operand{Value: value}

	return
}

// registerOf parses a word as a register name.
func (asm *Assembler) registerOf(word string) (reg byte, err error) {
	if len(word) != 1 || word[0] < 'a' || word[0] > 'z' {
		err = ErrParseValue(word)
		return
	}
	reg = word[0]

	return
}

// parenEval does parse-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v64 int64
		v64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parenRe matches a single $(...) expression.
var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine expands equates and $() expressions on a single line.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// parseWords evaluates the words of a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]
	code := Instruction{Op: op}

	switch op {
	case OP_SND:
		if len(args) < 1 {
			err = ErrValueMissing
			return
		}
		if len(args) > 1 {
			err = ErrExtraArgs
			return
		}
		code.X, err = asm.operandOf(args[0])
	case OP_SET, OP_ADD, OP_MUL, OP_MOD, OP_SUB:
		if len(args) < 2 {
			err = ErrValueMissing
			return
		}
		if len(args) > 2 {
			err = ErrExtraArgs
			return
		}
		code.Reg, err = asm.registerOf(args[0])
		if err != nil {
			return
		}
		code.X, err = asm.operandOf(args[1])
	case OP_RCV:
		if len(args) < 1 {
			err = ErrValueMissing
			return
		}
		if len(args) > 1 {
			err = ErrExtraArgs
			return
		}
		code.Reg, err = asm.registerOf(args[0])
	case OP_JGZ, OP_JNZ:
		if len(args) < 2 {
			err = ErrValueMissing
			return
		}
		if len(args) > 2 {
			err = ErrExtraArgs
			return
		}
		code.X, err = asm.operandOf(args[0])
		if err != nil {
			return
		}
		code.Y, err = asm.operandOf(args[1])
	}
	if err != nil {
		return
	}

	asm.Opcode = append(asm.Opcode, Opcode{LineNo: lineno, Words: words, Code: code})

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}
