// Package dstack provides a growable LIFO stack of float64 values.
package dstack

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// MaxCapacity is the default growth ceiling: the largest element count whose
// byte size fits an int. The runtime may refuse much smaller buffers, in
// which case New and Push return ErrOutOfMemory.
const MaxCapacity = math.MaxInt / 8

var (
	// ErrEmpty is returned by Pop and Peek on an empty stack.
	ErrEmpty = errors.New("stack is empty")

	// ErrNegativeCapacity is returned by New for a capacity below zero.
	ErrNegativeCapacity = errors.New("negative capacity")

	// ErrCapacityExceeded is returned when a stack would pass its ceiling.
	ErrCapacityExceeded = errors.New("stack capacity exceeded")

	// ErrOutOfMemory is returned when the runtime cannot allocate a buffer.
	ErrOutOfMemory = errors.New("out of memory")
)

// DynamicStack is a stack of float64 values backed by a buffer that doubles
// when full. The zero value is an empty stack ready to use.
// A DynamicStack is not safe for concurrent use.
type DynamicStack struct {
	// buf holds len(buf) slots, only buf[:n] is valid.
	buf []float64

	n int

	maxCapacity int
}

// New returns an empty stack with exactly capacity slots. It fails with
// ErrNegativeCapacity, ErrCapacityExceeded if capacity is above the
// configured ceiling, or ErrOutOfMemory if the buffer cannot be allocated.
func New(capacity int, opts ...Option) (*DynamicStack, error) {
	s := &DynamicStack{}
	for _, opt := range opts {
		opt(s)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("new stack with capacity %d: %w", capacity, ErrNegativeCapacity)
	}
	if capacity > s.limit() {
		return nil, fmt.Errorf("new stack with capacity %d: %w", capacity, ErrCapacityExceeded)
	}
	buf, err := alloc(capacity)
	if err != nil {
		return nil, fmt.Errorf("new stack with capacity %d: %w", capacity, err)
	}
	s.buf = buf
	return s, nil
}

// Release drops the buffer. The stack stays usable and grows from zero on
// the next push.
func (s *DynamicStack) Release() {
	s.buf = nil
	s.n = 0
}

// Reset empties the stack and keeps its capacity.
func (s *DynamicStack) Reset() {
	s.n = 0
}

func (s *DynamicStack) IsEmpty() bool {
	return s.n == 0
}

func (s *DynamicStack) IsFull() bool {
	return s.n == len(s.buf)
}

func (s *DynamicStack) Len() int {
	return s.n
}

func (s *DynamicStack) Cap() int {
	return len(s.buf)
}

// Push places v on top of the stack, doubling the buffer first if it is
// full. On error the stack is left unchanged.
func (s *DynamicStack) Push(v float64) error {
	if s.n == len(s.buf) {
		if err := s.grow(); err != nil {
			return err
		}
	}
	s.buf[s.n] = v
	s.n++
	return nil
}

func (s *DynamicStack) Pop() (float64, error) {
	v, err := s.Peek()
	if err != nil {
		return v, err
	}
	s.n--
	return v, nil
}

func (s *DynamicStack) Peek() (float64, error) {
	if s.n == 0 {
		return 0, ErrEmpty
	}
	return s.buf[s.n-1], nil
}

// Values returns a copy of the elements from bottom to top.
func (s *DynamicStack) Values() []float64 {
	v := make([]float64, s.n)
	copy(v, s.buf[:s.n])
	return v
}

func (s *DynamicStack) String() string {
	return fmt.Sprint(s.buf[:s.n])
}

func (s *DynamicStack) grow() error {
	size := len(s.buf)
	limit := s.limit()
	if size >= limit {
		return fmt.Errorf("grow from %d: %w", size, ErrCapacityExceeded)
	}

	// size < limit <= MaxCapacity, so doubling cannot overflow.
	newSize := max(1, size*2)
	if newSize > limit {
		newSize = limit
	}

	buf, err := alloc(newSize)
	if err != nil {
		return fmt.Errorf("grow from %d to %d: %w", size, newSize, err)
	}
	copy(buf, s.buf[:s.n])
	s.buf = buf
	return nil
}

func (s *DynamicStack) limit() int {
	if s.maxCapacity <= 0 {
		return MaxCapacity
	}
	return s.maxCapacity
}

// alloc turns the runtime's makeslice panic into ErrOutOfMemory.
func alloc(n int) (buf []float64, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		re, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}
		buf, err = nil, fmt.Errorf("allocate %d elements: %w: %v", n, ErrOutOfMemory, re)
	}()
	return make([]float64, n), nil
}
