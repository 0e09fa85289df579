// Package programs holds hand-built instruction sequences that can be run by
// name from the command line or the HTTP api.
package programs

import (
	"sort"

	"github.com/Aiden01/vm/vm"
)

var registry = map[string]vm.Program{
	// 2 + 3
	"add": {
		vm.LoadConst(vm.Int(2)),
		vm.LoadConst(vm.Int(3)),
		vm.Binary(vm.Add),
		vm.Print(),
	},
	"mixed-add": {
		vm.LoadConst(vm.Int(2)),
		vm.LoadConst(vm.Float(3.5)),
		vm.Binary(vm.Add),
		vm.Print(),
	},
	"locals": {
		vm.LoadConst(vm.String("hello")),
		vm.Store("greeting"),
		vm.LoadConst(vm.Bool(true)),
		vm.Store("x"),
		vm.Load("greeting"),
		vm.Print(),
		vm.Load("x"),
		vm.Print(),
	},
	"list": {
		vm.LoadConst(vm.Int(1)),
		vm.LoadConst(vm.Int(2)),
		vm.LoadConst(vm.Int(3)),
		vm.BuildList(3),
		vm.LoadConst(vm.String("tail")),
		vm.BuildList(2),
		vm.Print(),
	},
	// prints 2 only
	"branch": {
		vm.LoadConst(vm.Bool(false)),
		vm.JumpIfFalse(4),
		vm.LoadConst(vm.Int(1)),
		vm.Print(),
		vm.LoadConst(vm.Int(2)),
		vm.Print(),
	},
	// (10 - 4) * 3 / 4
	"arith": {
		vm.LoadConst(vm.Int(10)),
		vm.LoadConst(vm.Int(4)),
		vm.Binary(vm.Sub),
		vm.LoadConst(vm.Int(3)),
		vm.Binary(vm.Mult),
		vm.LoadConst(vm.Float(4)),
		vm.Binary(vm.Div),
		vm.Print(),
	},
	"error-unbound": {
		vm.LoadConst(vm.String("before")),
		vm.Print(),
		vm.Load("missing"),
		vm.Print(),
	},
}

// Names returns the registered program names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Get returns a copy of the named program, so callers may not alter the
// registered one.
func Get(name string) (vm.Program, bool) {
	prog, ok := registry[name]
	if !ok {
		return nil, false
	}
	return prog.Clone(), true
}
