package container

import (
	"errors"
	"fmt"
	"strings"

	"github.com/karupanerura/infixcalc/internal/types"
)

// DefaultCapacity is the capacity of a new or reset Array.
const DefaultCapacity = 2

var (
	errEmpty      = errors.New("container is empty")
	errOutOfRange = errors.New("index is out of bounds")
)

// Array is a contiguous, growable sequence of values.
// Elements [0, Len()) are live; the rest of the buffer is zeroed storage.
// The zero value is an empty Array ready to use.
type Array[V any] struct {
	buf  []V
	size int
}

func New[V any]() *Array[V] {
	return NewWithCapacity[V](DefaultCapacity)
}

func NewWithCapacity[V any](capacity int) *Array[V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[V]{buf: make([]V, capacity)}
}

func (a *Array[V]) Len() int {
	return a.size
}

func (a *Array[V]) Cap() int {
	return len(a.buf)
}

func (a *Array[V]) IsEmpty() bool {
	return a.size == 0
}

func (a *Array[V]) PushBack(v V) {
	if a.size == len(a.buf) {
		a.grow()
	}
	a.buf[a.size] = v
	a.size++
}

func (a *Array[V]) grow() {
	capacity := len(a.buf) * 2
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	buf := make([]V, capacity)
	copy(buf, a.buf[:a.size])
	a.buf = buf
}

func (a *Array[V]) PopBack() (V, error) {
	var zero V
	if a.size == 0 {
		return zero, &types.Error{Tag: types.EmptyContainerErrorTag, Err: errEmpty}
	}

	a.size--
	v := a.buf[a.size]
	a.buf[a.size] = zero
	return v, nil
}

func (a *Array[V]) Back() (*V, error) {
	if a.size == 0 {
		return nil, &types.Error{Tag: types.EmptyContainerErrorTag, Err: errEmpty}
	}
	return &a.buf[a.size-1], nil
}

func (a *Array[V]) Front() (*V, error) {
	if a.size == 0 {
		return nil, &types.Error{Tag: types.EmptyContainerErrorTag, Err: errEmpty}
	}
	return &a.buf[0], nil
}

func (a *Array[V]) At(i int) (*V, error) {
	if i < 0 || i >= a.size {
		return nil, &types.Error{
			Tag: types.IndexErrorTag,
			Err: fmt.Errorf("at(%d) with size %d: %w", i, a.size, errOutOfRange),
		}
	}
	return &a.buf[i], nil
}

// Index returns the slot at i without checking it against Len.
// Use only where i is known to be live.
func (a *Array[V]) Index(i int) *V {
	return &a.buf[i]
}

// Reset drops every element and returns a to the DefaultCapacity state.
func (a *Array[V]) Reset() {
	a.buf = make([]V, DefaultCapacity)
	a.size = 0
}

// Clone returns an independent copy with the same capacity.
func (a *Array[V]) Clone() *Array[V] {
	buf := make([]V, len(a.buf))
	copy(buf, a.buf[:a.size])
	return &Array[V]{buf: buf, size: a.size}
}

// Move transfers the buffer to a new Array and resets a.
func (a *Array[V]) Move() *Array[V] {
	moved := &Array[V]{buf: a.buf, size: a.size}
	a.Reset()
	return moved
}

// Values returns a copy of the live elements, bottom first.
func (a *Array[V]) Values() []V {
	values := make([]V, a.size)
	copy(values, a.buf[:a.size])
	return values
}

func (a *Array[V]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < a.size; i++ {
		if i != 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, a.buf[i])
	}
	b.WriteByte(']')
	return b.String()
}
