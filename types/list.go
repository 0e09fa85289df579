package types

import (
	"fmt"
)

// List is an ordered sequence that grows and shrinks at its tail.
type List[T any] struct {
	data []T
}

func NewList[T any]() *List[T] {
	return &List[T]{
		data: make([]T, 0),
	}
}

func (l *List[T]) Get(idx int) (T, error) {
	var empty T
	if idx > len(l.data)-1 || idx < 0 {
		return empty, fmt.Errorf("index out of range. idx %d len %d",
			idx,
			len(l.data))
	}

	return l.data[idx], nil
}

func (l *List[T]) Append(val T) {
	l.data = append(l.data, val)
}

func (l *List[T]) Last() (T, error) {
	return l.Get(len(l.data) - 1)
}

// RemoveLast drops the tail element and returns it.
func (l *List[T]) RemoveLast() (T, error) {
	last, err := l.Last()
	if err != nil {
		return last, err
	}
	var empty T
	l.data[len(l.data)-1] = empty
	l.data = l.data[:len(l.data)-1]
	return last, nil
}

func (l *List[T]) Len() int {
	return len(l.data)
}
