package machine

import (
	"strings"
	"testing"
)

// FuzzAssembler verifies that arbitrary text either assembles or fails
// with an error, without panicking.
func FuzzAssembler(f *testing.F) {
	f.Add("set a 1\nadd a 2\nsnd a")
	f.Add("; comment only")
	f.Add(".equ X 10\njnz X $(X - 12)")
	f.Add("rcv")
	f.Add("mod a b extra")
	f.Add("$(")

	f.Fuzz(func(t *testing.T, text string) {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(text))
		if err == nil && prog == nil {
			t.Errorf("no program and no error for %q", text)
		}
	})
}
