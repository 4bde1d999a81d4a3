package linked

// Queue is a FIFO container. The zero value is not ready for use; call Init
// first. A Queue must not be copied after Init.
type Queue[T any] struct {
	l list[T]
}

// NewQueue returns an initialized Queue.
func NewQueue[T any](opts ...Option) *Queue[T] {
	q := &Queue[T]{}
	q.l.init(opts)
	return q
}

// Init discards any previous state and prepares the queue for use.
func (q *Queue[T]) Init(opts ...Option) error {
	if q == nil {
		return fail("init", KindUninitialized)
	}
	q.l.init(opts)
	return nil
}

// Invalidate drops every element, calling release on each one when release is
// not nil, and returns the queue to its zero value.
func (q *Queue[T]) Invalidate(release func(*T)) error {
	if q == nil || !q.l.ready {
		return fail("invalidate", KindUninitialized)
	}
	q.l.destroy(release)
	return nil
}

// Count returns the number of queued elements.
func (q *Queue[T]) Count() (uint, error) {
	if q == nil || !q.l.ready {
		return 0, fail("count", KindUninitialized)
	}
	return q.l.length, nil
}

// Add appends v at the tail.
func (q *Queue[T]) Add(v T) error {
	if q == nil || !q.l.ready {
		return fail("add", KindUninitialized)
	}
	if !q.l.pushBack(v) {
		return fail("add", KindAllocationFailed)
	}
	return nil
}

// Remove removes and returns the head element.
func (q *Queue[T]) Remove() (T, error) {
	if q == nil || !q.l.ready {
		var zero T
		return zero, fail("remove", KindUninitialized)
	}
	v, ok := q.l.popFront()
	if !ok {
		return v, fail("remove", KindEmpty)
	}
	return v, nil
}

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q == nil || !q.l.ready {
		var zero T
		return zero, fail("peek", KindUninitialized)
	}
	v, ok := q.l.front()
	if !ok {
		return v, fail("peek", KindEmpty)
	}
	return v, nil
}
