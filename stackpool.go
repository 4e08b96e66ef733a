package dstack

import (
	"github.com/WhiCu/dstack/pool"
)

// StackPool hands out stacks for exclusive use by one goroutine at a time.
// Stacks are reset when they are returned.
type StackPool struct {
	p *pool.Pool[*DynamicStack]
}

func NewPool(capacity int, opts ...Option) (*StackPool, error) {
	// Validate once so the pool constructor cannot fail later.
	if _, err := New(capacity, opts...); err != nil {
		return nil, err
	}
	return &StackPool{
		p: pool.New(func() *DynamicStack {
			s, _ := New(capacity, opts...)
			return s
		}),
	}, nil
}

func (sp *StackPool) Get() *DynamicStack {
	return sp.p.Get()
}

func (sp *StackPool) Put(s *DynamicStack) {
	if s == nil {
		return
	}
	s.Reset()
	sp.p.Put(s)
}
