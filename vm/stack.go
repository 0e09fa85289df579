package vm

// Stack is a LIFO operand stack. A depth of 0 means unbounded.
type Stack struct {
	data []Value

	depth int
}

type StackOpt func(*Stack) *Stack

func MaxStack(max int) StackOpt {
	return func(s *Stack) *Stack {
		s.depth = max
		return s
	}
}

func NewStack(opts ...StackOpt) *Stack {
	s := &Stack{
		data: make([]Value, 0),
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return s
}

func (s *Stack) Push(v Value) error {
	if s.depth > 0 && len(s.data) == s.depth {
		return ErrStackOverflow
	}
	s.data = append(s.data, v)
	return nil
}

func (s *Stack) Pop() (Value, error) {
	if s.Empty() {
		return nil, ErrEmptyStack
	}
	last := len(s.data) - 1
	v := s.data[last]
	s.data[last] = nil
	s.data = s.data[:last]
	return v, nil
}

// Pop2 returns the former top of stack first and the value beneath it second.
func (s *Stack) Pop2() (Value, Value, error) {
	if s.Len() < 2 {
		return nil, nil, ErrEmptyStack
	}
	a, _ := s.Pop()
	b, _ := s.Pop()
	return a, b, nil
}

// PopN removes the top n values and returns them oldest first. The stack is
// left untouched when it holds fewer than n values.
func (s *Stack) PopN(n int) ([]Value, error) {
	if n < 0 || n > s.Len() {
		return nil, ErrEmptyStack
	}
	start := len(s.data) - n
	out := make([]Value, n)
	copy(out, s.data[start:])
	for i := start; i < len(s.data); i++ {
		s.data[i] = nil
	}
	s.data = s.data[:start]
	return out, nil
}

func (s *Stack) Empty() bool {
	return len(s.data) == 0
}

func (s *Stack) Len() int {
	return len(s.data)
}

func (s *Stack) Peek() (Value, error) {
	return s.read(s.Len() - 1)
}

func (s *Stack) read(pos int) (Value, error) {
	if pos >= s.Len() || pos < 0 {
		return nil, ErrEmptyStack
	}
	return s.data[pos], nil
}
