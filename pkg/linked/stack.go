package linked

// Stack is a LIFO container. Like Queue, its zero value must be initialized
// with Init before use.
type Stack[T any] struct {
	l list[T]
}

func NewStack[T any](opts ...Option) *Stack[T] {
	s := &Stack[T]{}
	s.l.init(opts)
	return s
}

func (s *Stack[T]) Init(opts ...Option) error {
	if s == nil {
		return fail("init", KindUninitialized)
	}
	s.l.init(opts)
	return nil
}

func (s *Stack[T]) Invalidate(release func(*T)) error {
	if s == nil || !s.l.ready {
		return fail("invalidate", KindUninitialized)
	}
	s.l.destroy(release)
	return nil
}

func (s *Stack[T]) Count() (uint, error) {
	if s == nil || !s.l.ready {
		return 0, fail("count", KindUninitialized)
	}
	return s.l.length, nil
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) error {
	if s == nil || !s.l.ready {
		return fail("push", KindUninitialized)
	}
	if !s.l.pushFront(v) {
		return fail("push", KindAllocationFailed)
	}
	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	if s == nil || !s.l.ready {
		var zero T
		return zero, fail("pop", KindUninitialized)
	}
	v, ok := s.l.popFront()
	if !ok {
		return v, fail("pop", KindEmpty)
	}
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s == nil || !s.l.ready {
		var zero T
		return zero, fail("peek", KindUninitialized)
	}
	v, ok := s.l.front()
	if !ok {
		return v, fail("peek", KindEmpty)
	}
	return v, nil
}
