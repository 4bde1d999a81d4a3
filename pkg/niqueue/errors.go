package niqueue

import (
	"fmt"

	"github.com/i5heu/GoNatContainers/pkg/linked"
	"go.uber.org/zap"
)

// Error is the failure cause reported by Queue operations.
type Error uint8

const (
	ErrObjectIsNull Error = iota + 1
	ErrOutIsNull
	ErrMemoryAllocationFailed
	ErrQueueIsEmpty
)

func (e Error) Error() string {
	switch e {
	case ErrObjectIsNull:
		return "niqueue: object is null"
	case ErrOutIsNull:
		return "niqueue: out is null"
	case ErrMemoryAllocationFailed:
		return "niqueue: memory allocation failed"
	case ErrQueueIsEmpty:
		return "niqueue: queue is empty"
	default:
		return fmt.Sprintf("niqueue: error %d", uint8(e))
	}
}

// InvariantError is the panic value raised when the backing container reports
// a failure that cannot happen for the operation that was called.
type InvariantError struct {
	Op  string
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("niqueue: %s: unexpected container failure: %v", e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// translate maps a container failure to the queue's own code. want is the
// only kind the operation may produce.
func translate(op string, err error, want linked.Kind, code Error) error {
	if linked.KindOf(err) == want {
		return code
	}
	violated(op, err)
	return nil
}

func violated(op string, err error) {
	zap.L().Error("queue invariant violated",
		zap.String("op", op),
		zap.Stringer("kind", linked.KindOf(err)),
		zap.Error(err))
	panic(&InvariantError{Op: op, Err: err})
}
