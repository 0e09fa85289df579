package vm

import (
	"math"
	"strconv"
	"strings"
)

type Kind byte

const (
	KindFloat Kind = iota
	KindInt
	KindString
	KindBool
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindList:
		return "list"
	}
	return "unknown"
}

// Value is a runtime datum. The set of implementations is closed:
// Float, Int, String, Bool and List.
type Value interface {
	Kind() Kind
	// String is the rendering written by Print.
	String() string
	// Repr is the debug form used for list elements.
	Repr() string
	Clone() Value
}

type Float float64

type Int int64

type String string

type Bool bool

// List owns its elements. Elements may be lists themselves.
type List []Value

func (Float) Kind() Kind { return KindFloat }
func (Int) Kind() Kind { return KindInt }
func (String) Kind() Kind { return KindString }
func (Bool) Kind() Kind { return KindBool }
func (List) Kind() Kind { return KindList }

// wellFormed reports whether v and every element nested in it are non-nil.
func wellFormed(v Value) bool {
	if v == nil {
		return false
	}
	if l, ok := v.(List); ok {
		for _, elem := range l {
			if !wellFormed(elem) {
				return false
			}
		}
	}
	return true
}

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (s String) String() string { return string(s) }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elem := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		if elem == nil {
			sb.WriteString("<nil>")
			continue
		}
		sb.WriteString(elem.Repr())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (f Float) Repr() string { return f.String() }
func (i Int) Repr() string { return i.String() }
func (s String) Repr() string { return strconv.Quote(string(s)) }
func (b Bool) Repr() string { return b.String() }
func (l List) Repr() string { return l.String() }

// String always keeps a fractional part so a Float never reads as an Int.
// Very large and very small magnitudes use exponent form.
func (f Float) String() string {
	x := float64(f)
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	if abs := math.Abs(x); abs != 0 && (abs < 1e-5 || abs >= 1e21) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func (f Float) Clone() Value { return f }
func (i Int) Clone() Value { return i }
func (s String) Clone() Value { return s }
func (b Bool) Clone() Value { return b }

// Clone deep copies the list so the copy shares no backing array with l.
func (l List) Clone() Value {
	if l == nil {
		return List(nil)
	}
	out := make(List, len(l))
	for i, elem := range l {
		if elem != nil {
			out[i] = elem.Clone()
		}
	}
	return out
}
