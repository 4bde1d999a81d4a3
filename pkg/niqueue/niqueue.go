// Package niqueue provides a FIFO queue of natural integers backed by
// linked.Queue.
package niqueue

import "github.com/i5heu/GoNatContainers/pkg/linked"

// Queue is a single-owner FIFO of uint values. The zero value is
// uninitialized; call Init before any other operation and Invalidate when done.
// A Queue is not safe for concurrent use.
type Queue struct {
	store linked.Queue[uint]
}

// Init resets q to an empty queue. Options are passed to the backing container.
func (q *Queue) Init(opts ...linked.Option) error {
	if q == nil {
		return ErrObjectIsNull
	}
	*q = Queue{}
	if err := q.store.Init(opts...); err != nil {
		violated("init", err)
	}
	return nil
}

// Invalidate releases every element and returns q to its zero value.
func (q *Queue) Invalidate() error {
	if q == nil {
		return ErrObjectIsNull
	}
	if err := q.store.Invalidate(nil); err != nil {
		violated("invalidate", err)
	}
	*q = Queue{}
	return nil
}

func (q *Queue) Count() (uint, error) {
	if q == nil {
		return 0, ErrObjectIsNull
	}
	n, err := q.store.Count()
	if err != nil {
		violated("count", err)
	}
	return n, nil
}

// Add appends v at the tail.
func (q *Queue) Add(v uint) error {
	if q == nil {
		return ErrObjectIsNull
	}
	if err := q.store.Add(v); err != nil {
		return translate("add", err, linked.KindAllocationFailed, ErrMemoryAllocationFailed)
	}
	return nil
}

// Remove removes and returns the oldest element.
func (q *Queue) Remove() (uint, error) {
	if q == nil {
		return 0, ErrObjectIsNull
	}
	v, err := q.store.Remove()
	if err != nil {
		return 0, translate("remove", err, linked.KindEmpty, ErrQueueIsEmpty)
	}
	return v, nil
}

// Peek returns the oldest element without removing it.
func (q *Queue) Peek() (uint, error) {
	if q == nil {
		return 0, ErrObjectIsNull
	}
	v, err := q.store.Peek()
	if err != nil {
		return 0, translate("peek", err, linked.KindEmpty, ErrQueueIsEmpty)
	}
	return v, nil
}
