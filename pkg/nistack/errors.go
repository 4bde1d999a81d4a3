package nistack

import (
	"fmt"

	"github.com/i5heu/GoNatContainers/pkg/linked"
	"go.uber.org/zap"
)

// Error is the failure cause reported by Stack operations.
type Error uint8

const (
	ErrObjectIsNull Error = iota + 1
	ErrOutIsNull
	ErrMemoryAllocationFailed
	ErrStackIsEmpty
)

var errorText = map[Error]string{
	ErrObjectIsNull:           "object is null",
	ErrOutIsNull:              "out is null",
	ErrMemoryAllocationFailed: "memory allocation failed",
	ErrStackIsEmpty:           "stack is empty",
}

func (e Error) Error() string {
	if text, ok := errorText[e]; ok {
		return "nistack: " + text
	}
	return fmt.Sprintf("nistack: error %d", uint8(e))
}

// InvariantError is the panic value raised when linked.Stack fails in a way
// the calling operation does not allow.
type InvariantError struct {
	Op  string
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("nistack: %s: unexpected container failure: %v", e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }

func expect(op string, err error, want linked.Kind, code Error) error {
	if kind := linked.KindOf(err); kind != want {
		mustNotFail(op, err)
	}
	return code
}

func mustNotFail(op string, err error) {
	if err == nil {
		return
	}
	zap.L().Error("stack invariant violated",
		zap.String("op", op),
		zap.Stringer("kind", linked.KindOf(err)),
		zap.Error(err))
	panic(&InvariantError{Op: op, Err: err})
}
