// Package machine implements the duet register machine and its assembler.
//
// A Machine executes a fixed instruction set (snd, set, add, mul, mod, rcv,
// jgz, sub, jnz) over a bank of 26 signed 64-bit registers named 'a' through
// 'z', all starting at zero. In standalone mode a rcv instruction recovers
// the last sent value; in paired mode two machines exchange values through
// send and receive queues, suspended and resumed by an external driver (see
// package duet).
//
// The assembler parses one instruction per line, with ';' comments, .equ
// substitutions, and parse-time $(...) expression evaluation.
package machine
