// Package knot implements the knot hash.
//
// The sparse hash repeatedly reverses segments of a circular strand of
// numbers; the full digest runs 64 rounds over a 256 element strand and
// condenses it into 16 XOR blocks, rendered as lowercase hex.
package knot

import "encoding/hex"

const (
	STRAND_SIZE = 256 // Strand length of a full digest.
	ROUNDS      = 64  // Sparse rounds in a full digest.
	BLOCK_SIZE  = 16  // Elements per dense hash block.
)

// suffix is appended to the lengths of every full digest input.
var suffix = []int{17, 31, 73, 47, 23}

// Round applies one round of the sparse hash to strand in place, reversing
// one segment per length, and returns the advanced cursor and skip values.
func Round(strand []int, lengths []int, cursor, skip int) (int, int) {
	for _, length := range lengths {
		for i, j := 0, length-1; i < j; i, j = i+1, j-1 {
			a := (cursor + i) % len(strand)
			b := (cursor + j) % len(strand)
			strand[a], strand[b] = strand[b], strand[a]
		}
		cursor = (cursor + length + skip) % len(strand)
		skip++
	}

	return cursor, skip
}

// Sum computes the full knot hash digest of input.
func Sum(input string) string {
	lengths := make([]int, 0, len(input)+len(suffix))
	for _, c := range []byte(input) {
		lengths = append(lengths, int(c))
	}
	lengths = append(lengths, suffix...)

	strand := make([]int, STRAND_SIZE)
	for i := range strand {
		strand[i] = i
	}

	cursor, skip := 0, 0
	for round := 0; round < ROUNDS; round++ {
		cursor, skip = Round(strand, lengths, cursor, skip)
	}

	var dense [STRAND_SIZE / BLOCK_SIZE]byte
	for i := range dense {
		block := 0
		for _, v := range strand[i*BLOCK_SIZE : (i+1)*BLOCK_SIZE] {
			block ^= v
		}
		dense[i] = byte(block)
	}

	return hex.EncodeToString(dense[:])
}
