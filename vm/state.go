package vm

import "sort"

// Locals maps variable names to values for one frame.
type Locals struct {
	data map[string]Value
}

func NewLocals() *Locals {
	return &Locals{
		data: make(map[string]Value),
	}
}

func (l *Locals) Put(name string, v Value) {
	l.data[name] = v
}

// Get returns a copy of the bound value.
func (l *Locals) Get(name string) (Value, bool) {
	val, exists := l.data[name]
	if !exists {
		return nil, false
	}
	return val.Clone(), true
}

// Names returns the bound names in sorted order.
func (l *Locals) Names() []string {
	names := make([]string, 0, len(l.data))
	for k := range l.data {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
