package vm

// applyBinary applies op with b as the left operand and a as the right one,
// where a was the top of stack. Int with Float widens the Int.
func applyBinary(op BinaryOp, a, b Value) (Value, error) {
	switch x := b.(type) {
	case Int:
		switch y := a.(type) {
		case Int:
			return intOp(op, x, y)
		case Float:
			return floatOp(op, Float(x), y)
		}
	case Float:
		switch y := a.(type) {
		case Int:
			return floatOp(op, x, Float(y))
		case Float:
			return floatOp(op, x, y)
		}
	}
	return nil, MismatchedType("number")
}

func intOp(op BinaryOp, x, y Int) (Value, error) {
	switch op {
	case Add:
		return x + y, nil
	case Sub:
		return x - y, nil
	case Mult:
		return x * y, nil
	case Div:
		if y == 0 {
			return nil, ErrDivisionByZero
		}
		return x / y, nil
	}
	return nil, UnsupportedInstruction(OpBinary)
}

// float division by zero follows IEEE-754
func floatOp(op BinaryOp, x, y Float) (Value, error) {
	switch op {
	case Add:
		return x + y, nil
	case Sub:
		return x - y, nil
	case Mult:
		return x * y, nil
	case Div:
		return x / y, nil
	}
	return nil, UnsupportedInstruction(OpBinary)
}
