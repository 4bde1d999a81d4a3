// Package nistack provides a LIFO stack of natural integers backed by
// linked.Stack.
package nistack

import "github.com/i5heu/GoNatContainers/pkg/linked"

// Stack is a single-owner LIFO of uint values. The zero value is
// uninitialized. Stack is not safe for concurrent use.
type Stack struct {
	store linked.Stack[uint]
}

// Init resets s to an empty stack.
func (s *Stack) Init(opts ...linked.Option) error {
	if s == nil {
		return ErrObjectIsNull
	}
	*s = Stack{}
	mustNotFail("init", s.store.Init(opts...))
	return nil
}

// Invalidate releases every element and returns s to its zero value.
func (s *Stack) Invalidate() error {
	if s == nil {
		return ErrObjectIsNull
	}
	mustNotFail("invalidate", s.store.Invalidate(nil))
	*s = Stack{}
	return nil
}

func (s *Stack) Count() (uint, error) {
	if s == nil {
		return 0, ErrObjectIsNull
	}
	n, err := s.store.Count()
	mustNotFail("count", err)
	return n, nil
}

func (s *Stack) Push(v uint) error {
	if s == nil {
		return ErrObjectIsNull
	}
	if err := s.store.Push(v); err != nil {
		return expect("push", err, linked.KindAllocationFailed, ErrMemoryAllocationFailed)
	}
	return nil
}

// Pop removes and returns the most recently pushed element.
func (s *Stack) Pop() (uint, error) {
	if s == nil {
		return 0, ErrObjectIsNull
	}
	v, err := s.store.Pop()
	if err != nil {
		return 0, expect("pop", err, linked.KindEmpty, ErrStackIsEmpty)
	}
	return v, nil
}

// Peek returns the most recently pushed element without removing it.
func (s *Stack) Peek() (uint, error) {
	if s == nil {
		return 0, ErrObjectIsNull
	}
	v, err := s.store.Peek()
	if err != nil {
		return 0, expect("peek", err, linked.KindEmpty, ErrStackIsEmpty)
	}
	return v, nil
}
