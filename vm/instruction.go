package vm

import (
	"fmt"
	"strconv"
)

type Opcode byte

const (
	OpJump        Opcode = 0x01
	OpJumpIfFalse Opcode = 0x02
	OpStore       Opcode = 0x03
	OpLoad        Opcode = 0x04
	OpBuildList   Opcode = 0x05
	OpBinary      Opcode = 0x06
	OpLoadConst   Opcode = 0x07
	OpPrint       Opcode = 0x08
)

func (op Opcode) String() string {
	switch op {
	case OpJump:
		return "Jump"
	case OpJumpIfFalse:
		return "JumpIfFalse"
	case OpStore:
		return "Store"
	case OpLoad:
		return "Load"
	case OpBuildList:
		return "BuildList"
	case OpBinary:
		return "Binary"
	case OpLoadConst:
		return "LoadConst"
	case OpPrint:
		return "Print"
	}
	return fmt.Sprintf("Opcode(0x%02x)", byte(op))
}

type BinaryOp byte

const (
	Add BinaryOp = iota
	Sub
	Mult
	Div
)

func (b BinaryOp) String() string {
	switch b {
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mult:
		return "Mult"
	case Div:
		return "Div"
	}
	return fmt.Sprintf("BinaryOp(%d)", byte(b))
}

// Instruction is one opcode with its operand. Only the field matching Op is
// meaningful:
//
//	Jump, JumpIfFalse  Target
//	Store, Load        Name
//	BuildList          Count
//	Binary             BinOp
//	LoadConst          Const
type Instruction struct {
	Op     Opcode
	Target int
	Name   string
	Count  int
	BinOp  BinaryOp
	Const  Value
}

func Jump(target int) Instruction {
	return Instruction{Op: OpJump, Target: target}
}

func JumpIfFalse(target int) Instruction {
	return Instruction{Op: OpJumpIfFalse, Target: target}
}

func Store(name string) Instruction {
	return Instruction{Op: OpStore, Name: name}
}

func Load(name string) Instruction {
	return Instruction{Op: OpLoad, Name: name}
}

func BuildList(n int) Instruction {
	return Instruction{Op: OpBuildList, Count: n}
}

func Binary(op BinaryOp) Instruction {
	return Instruction{Op: OpBinary, BinOp: op}
}

func LoadConst(v Value) Instruction {
	return Instruction{Op: OpLoadConst, Const: v}
}

func Print() Instruction {
	return Instruction{Op: OpPrint}
}

func (i Instruction) String() string {
	switch i.Op {
	case OpJump, OpJumpIfFalse:
		return fmt.Sprintf("%s %d", i.Op, i.Target)
	case OpStore, OpLoad:
		return fmt.Sprintf("%s %s", i.Op, strconv.Quote(i.Name))
	case OpBuildList:
		return fmt.Sprintf("%s %d", i.Op, i.Count)
	case OpBinary:
		return fmt.Sprintf("%s %s", i.Op, i.BinOp)
	case OpLoadConst:
		if i.Const == nil {
			return fmt.Sprintf("%s <nil>", i.Op)
		}
		return fmt.Sprintf("%s %s %s", i.Op, i.Const.Kind(), i.Const.Repr())
	}
	return i.Op.String()
}

// Program is an instruction sequence as handed to Run.
type Program []Instruction

// Clone copies the sequence and every constant it embeds.
func (p Program) Clone() Program {
	out := make(Program, len(p))
	for i, inst := range p {
		if inst.Const != nil {
			inst.Const = inst.Const.Clone()
		}
		out[i] = inst
	}
	return out
}
