package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble(t *testing.T) {
	prog := Program{
		LoadConst(Int(2)),
		LoadConst(String("two")),
		Binary(Mult),
		Store("x"),
		Load("x"),
		BuildList(2),
		JumpIfFalse(9),
		Jump(0),
		Print(),
		{Op: Opcode(0x7f)},
	}
	want := "" +
		"   0  LoadConst int 2\n" +
		"   1  LoadConst string \"two\"\n" +
		"   2  Binary Mult\n" +
		"   3  Store \"x\"\n" +
		"   4  Load \"x\"\n" +
		"   5  BuildList 2\n" +
		"   6  JumpIfFalse 9\n" +
		"   7  Jump 0\n" +
		"   8  Print\n" +
		"   9  Opcode(0x7f)\n"

	buf := &bytes.Buffer{}
	assert.NoError(t, Disassemble(buf, prog))
	assert.Equal(t, want, buf.String())
}

func TestProgram_Clone(t *testing.T) {
	prog := Program{LoadConst(List{Int(1)}), Print()}
	cp := prog.Clone()
	cp[0].Const.(List)[0] = Int(2)

	assert.Equal(t, List{Int(1)}, prog[0].Const)
	assert.Equal(t, prog[1], cp[1])
}
