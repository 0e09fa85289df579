package vm

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

type VM struct {
	// instruction pointer
	ip int

	// rebuilt at the start of every Run
	CallStack *CallStack

	out      io.Writer
	maxStack int
	logger   *zap.Logger
}

type VMOpt func(*VM) *VM

func LoggerOpt(l *zap.Logger) VMOpt {
	return func(vm *VM) *VM {
		vm.logger = l
		return vm
	}
}

// OutputOpt sets where Print writes. Defaults to os.Stdout.
func OutputOpt(w io.Writer) VMOpt {
	return func(vm *VM) *VM {
		vm.out = w
		return vm
	}
}

// MaxStackOpt bounds every operand stack. 0 leaves them unbounded.
func MaxStackOpt(max int) VMOpt {
	return func(vm *VM) *VM {
		vm.maxStack = max
		return vm
	}
}

func NewVM(opts ...VMOpt) *VM {
	vm := &VM{
		ip:     0,
		out:    os.Stdout,
		logger: zap.L(),
	}

	for _, opt := range opts {
		vm = opt(vm)
	}

	vm.logger = vm.logger.Named("vm")

	return vm
}

// Run executes prog from index 0 until the pointer runs past the end or an
// instruction fails. The first failure ends the run.
func (vm *VM) Run(prog Program) error {
	vm.ip = 0
	vm.CallStack = NewCallStack(len(prog), MaxStack(vm.maxStack))

	for vm.ip < len(prog) {
		inst := prog[vm.ip]

		vm.logger.Debug("exec",
			zap.Int("ip", vm.ip),
			zap.Stringer("instruction", inst))

		at := vm.ip
		vm.ip++
		if err := vm.Exec(inst); err != nil {
			top := vm.CallStack.Top()
			vm.logger.Debug("run failed",
				zap.Int("ip", at),
				zap.Int("stack", top.Stack.Len()),
				zap.Strings("locals", top.Locals.Names()),
				zap.Error(err))
			return fmt.Errorf("vm run: ip %d: %w", at, err)
		}
	}
	return nil
}

// IP returns the index of the next instruction to run.
func (vm *VM) IP() int {
	return vm.ip
}

func (vm *VM) Exec(inst Instruction) error {
	switch inst.Op {
	case OpJump:
		return vm.jump(inst.Target)
	case OpJumpIfFalse:
		return vm.jumpIfFalse(inst.Target)
	case OpStore:
		return vm.store(inst.Name)
	case OpLoad:
		return vm.load(inst.Name)
	case OpBuildList:
		return vm.buildList(inst.Count)
	case OpBinary:
		return vm.binary(inst.BinOp)
	case OpLoadConst:
		if !wellFormed(inst.Const) {
			return MismatchedType("constant")
		}
		return vm.CallStack.Push(inst.Const.Clone())
	case OpPrint:
		return vm.print()
	}
	return UnsupportedInstruction(inst.Op)
}

func (vm *VM) jumpIfFalse(target int) error {
	v, err := vm.CallStack.Pop()
	if err != nil {
		return err
	}
	b, ok := v.(Bool)
	if !ok {
		return MismatchedType(KindBool.String())
	}
	if !b {
		return vm.jump(target)
	}
	return nil
}

// jump accepts any target past the end, which halts the run.
func (vm *VM) jump(target int) error {
	if target < 0 {
		return InvalidTarget(target)
	}
	vm.ip = target
	return nil
}

func (vm *VM) store(name string) error {
	v, err := vm.CallStack.Pop()
	if err != nil {
		return err
	}
	vm.CallStack.StoreLocal(name, v)
	return nil
}

func (vm *VM) load(name string) error {
	v, ok := vm.CallStack.GetLocal(name)
	if !ok {
		return NotInScope(name)
	}
	return vm.CallStack.Push(v)
}

func (vm *VM) buildList(n int) error {
	elems, err := vm.CallStack.PopN(n)
	if err != nil {
		return err
	}
	return vm.CallStack.Push(List(elems))
}

func (vm *VM) binary(op BinaryOp) error {
	a, b, err := vm.CallStack.Pop2()
	if err != nil {
		return err
	}
	result, err := applyBinary(op, a, b)
	if err != nil {
		return err
	}
	vm.logger.Debug("binary",
		zap.Stringer("op", op),
		zap.Stringer("left", b),
		zap.Stringer("right", a),
		zap.Stringer("result", result))
	return vm.CallStack.Push(result)
}

func (vm *VM) print() error {
	v, err := vm.CallStack.Pop()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(vm.out, v.String())
	return err
}
