package niqueue

import (
	"github.com/i5heu/GoNatContainers/pkg/errsignal"
	"github.com/i5heu/GoNatContainers/pkg/linked"
)

// The functions below mirror the Queue methods for callers that check a
// success flag and then read errsignal.Last for the cause. The handle is
// validated before the out pointer, and out is only written on success.

func Init(q *Queue, opts ...linked.Option) bool {
	return signal(q.Init(opts...))
}

func Invalidate(q *Queue) bool {
	return signal(q.Invalidate())
}

func Count(q *Queue, out *uint) bool {
	if q == nil {
		return signal(ErrObjectIsNull)
	}
	if out == nil {
		return signal(ErrOutIsNull)
	}
	n, err := q.Count()
	if !signal(err) {
		return false
	}
	*out = n
	return true
}

func Add(q *Queue, v uint) bool {
	return signal(q.Add(v))
}

func Remove(q *Queue, out *uint) bool {
	if q == nil {
		return signal(ErrObjectIsNull)
	}
	if out == nil {
		return signal(ErrOutIsNull)
	}
	v, err := q.Remove()
	if !signal(err) {
		return false
	}
	*out = v
	return true
}

func Peek(q *Queue, out *uint) bool {
	if q == nil {
		return signal(ErrObjectIsNull)
	}
	if out == nil {
		return signal(ErrOutIsNull)
	}
	v, err := q.Peek()
	if !signal(err) {
		return false
	}
	*out = v
	return true
}

// signal records err in the process-wide slot and reports whether the call
// succeeded.
func signal(err error) bool {
	if err != nil {
		errsignal.Set(err)
		return false
	}
	return true
}
