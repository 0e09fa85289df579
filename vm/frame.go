package vm

import (
	"github.com/Aiden01/vm/types"
)

// Frame is one activation record.
type Frame struct {
	ReturnAddr int
	Locals     *Locals
	Stack      *Stack
}

func NewFrame(returnAddr int, opts ...StackOpt) *Frame {
	return &Frame{
		ReturnAddr: returnAddr,
		Locals:     NewLocals(),
		Stack:      NewStack(opts...),
	}
}

// CallStack is the ordered sequence of frames. Every operand and local
// operation targets the last frame.
type CallStack struct {
	frames   *types.List[*Frame]
	stackOpt []StackOpt
}

// NewCallStack returns a call stack holding a single base frame whose return
// address is returnAddr. Frames pushed later share the same stack options.
func NewCallStack(returnAddr int, opts ...StackOpt) *CallStack {
	cs := &CallStack{
		frames:   types.NewList[*Frame](),
		stackOpt: opts,
	}
	cs.PushFrame(returnAddr)
	return cs
}

func (cs *CallStack) PushFrame(returnAddr int) {
	cs.frames.Append(NewFrame(returnAddr, cs.stackOpt...))
}

// Ret drops the active frame and returns its return address. The base frame
// can not be dropped.
func (cs *CallStack) Ret() (int, error) {
	if cs.frames.Len() <= 1 {
		return 0, ErrCallStackUnderflow
	}
	f, err := cs.frames.RemoveLast()
	if err != nil {
		return 0, ErrCallStackUnderflow
	}
	return f.ReturnAddr, nil
}

func (cs *CallStack) Depth() int {
	return cs.frames.Len()
}

// Top returns the active frame.
func (cs *CallStack) Top() *Frame {
	f, err := cs.frames.Last()
	if err != nil {
		// a call stack always holds its base frame
		panic("vm: call stack without frames")
	}
	return f
}

func (cs *CallStack) Push(v Value) error {
	return cs.Top().Stack.Push(v)
}

func (cs *CallStack) Pop() (Value, error) {
	return cs.Top().Stack.Pop()
}

func (cs *CallStack) Pop2() (Value, Value, error) {
	return cs.Top().Stack.Pop2()
}

func (cs *CallStack) PopN(n int) ([]Value, error) {
	return cs.Top().Stack.PopN(n)
}

func (cs *CallStack) StoreLocal(name string, v Value) {
	cs.Top().Locals.Put(name, v)
}

func (cs *CallStack) GetLocal(name string) (Value, bool) {
	return cs.Top().Locals.Get(name)
}
