package vm

import (
	"fmt"
	"io"
)

// Disassemble writes one line per instruction: its index, then its opcode
// and operand.
func Disassemble(w io.Writer, prog Program) error {
	for i, inst := range prog {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", i, inst); err != nil {
			return err
		}
	}
	return nil
}
