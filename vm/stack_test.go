package vm

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStack(t *testing.T) {
	type args struct {
		opts []StackOpt
	}
	tests := []struct {
		name string
		args args
		want *Stack
	}{
		{
			name: "default",
			want: &Stack{
				depth: 0,
				data:  make([]Value, 0),
			},
		},
		{
			name: "depth opt",
			args: args{
				[]StackOpt{MaxStack(2)},
			},
			want: &Stack{
				depth: 2,
				data:  make([]Value, 0),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewStack(tt.args.opts...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewStack() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStack_Pop(t *testing.T) {
	type fields struct {
		data []Value
	}
	tests := []struct {
		name    string
		fields  fields
		want    Value
		wantErr bool
	}{
		{
			name:    "empty",
			wantErr: true,
		},
		{
			name: "single",
			fields: fields{
				data: []Value{Int(1)},
			},
			want: Int(1),
		},
		{
			name: "top of many",
			fields: fields{
				data: []Value{Int(2), String("x"), Bool(true)},
			},
			want: Bool(true),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stack{
				data: tt.fields.data,
			}
			got, err := s.Pop()
			if (err != nil) != tt.wantErr {
				t.Errorf("Stack.Pop() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyStack)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Stack.Pop() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStack_Pop2(t *testing.T) {
	s := NewStack()
	require.NoError(t, s.Push(Int(10)))
	require.NoError(t, s.Push(Int(3)))

	a, b, err := s.Pop2()
	require.NoError(t, err)
	// former top first, the value beneath it second
	assert.Equal(t, Int(3), a)
	assert.Equal(t, Int(10), b)
	assert.True(t, s.Empty())

	require.NoError(t, s.Push(Int(1)))
	_, _, err = s.Pop2()
	assert.ErrorIs(t, err, ErrEmptyStack)
}

func TestStack_PopN(t *testing.T) {
	tests := []struct {
		name     string
		data     []Value
		n        int
		want     []Value
		wantLeft []Value
		wantErr  bool
	}{
		{
			name:     "keeps push order",
			data:     []Value{Int(1), Int(2), Int(3)},
			n:        3,
			want:     []Value{Int(1), Int(2), Int(3)},
			wantLeft: []Value{},
		},
		{
			name:     "leaves bottom",
			data:     []Value{String("a"), Int(2), Int(3)},
			n:        2,
			want:     []Value{Int(2), Int(3)},
			wantLeft: []Value{String("a")},
		},
		{
			name:     "zero",
			data:     []Value{Int(1)},
			n:        0,
			want:     []Value{},
			wantLeft: []Value{Int(1)},
		},
		{
			name:     "too many",
			data:     []Value{Int(1)},
			n:        2,
			wantErr:  true,
			wantLeft: []Value{Int(1)},
		},
		{
			name:     "negative",
			data:     []Value{Int(1)},
			n:        -1,
			wantErr:  true,
			wantLeft: []Value{Int(1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack()
			for _, v := range tt.data {
				require.NoError(t, s.Push(v))
			}
			got, err := s.PopN(tt.n)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrEmptyStack))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			left := make([]Value, s.Len())
			for i := len(left) - 1; i >= 0; i-- {
				left[i], err = s.Pop()
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantLeft, left)
		})
	}
}

func TestStackFunctional(t *testing.T) {
	max := 3
	vals := []Value{Int(0), Int(2), Int(4)}
	s := NewStack(MaxStack(max))
	for i := 0; i < max; i += 1 {
		assert.NoError(t, s.Push(vals[i]))
		assert.Equal(t, i+1, s.Len())
	}

	// overflow
	assert.ErrorIs(t, s.Push(String("bad")), ErrStackOverflow)

	top, err := s.Peek()
	assert.NoError(t, err)
	assert.Equal(t, Int(4), top)

	// pop all
	for i := 0; i < max; i += 1 {
		l := s.Len()
		assert.Equal(t, l, max-i)
		want := vals[l-1]
		got, err := s.Pop()
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// underflow
	_, err = s.Pop()
	assert.Error(t, err)
	_, err = s.Peek()
	assert.Error(t, err)

	// reuse
	assert.NoError(t, s.Push(String("hi")))
	assert.Equal(t, 1, s.Len())
	// mixed type
	assert.NoError(t, s.Push(List{Int(1)}))
	assert.Equal(t, 2, s.Len())

	listVal, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, List{Int(1)}, listVal)

	strVal, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, String("hi"), strVal)
}
