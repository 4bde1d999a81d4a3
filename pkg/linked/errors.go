package linked

import (
	"errors"
	"fmt"
)

// Kind classifies why a container operation failed.
type Kind uint8

const (
	KindNone Kind = iota
	KindUninitialized
	KindEmpty
	KindAllocationFailed
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUninitialized:
		return "uninitialized"
	case KindEmpty:
		return "empty"
	case KindAllocationFailed:
		return "allocation failed"
	default:
		return "unknown"
	}
}

// Error is returned by every failing container operation.
type Error struct {
	Op   string
	Kind Kind
}

func (e *Error) Error() string {
	if e.Op == "" {
		return "linked: " + e.Kind.String()
	}
	return fmt.Sprintf("linked: %s: %s", e.Op, e.Kind)
}

// Is matches any *Error with the same Kind, so the sentinels below work with errors.Is
// regardless of the operation that failed.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrUninitialized    = &Error{Kind: KindUninitialized}
	ErrEmpty            = &Error{Kind: KindEmpty}
	ErrAllocationFailed = &Error{Kind: KindAllocationFailed}
)

// KindOf reports the Kind carried by err. It returns KindNone for nil and
// KindUnknown for errors that did not originate in this package.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func fail(op string, kind Kind) error {
	return &Error{Op: op, Kind: kind}
}
