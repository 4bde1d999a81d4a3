package nistack

import (
	"github.com/i5heu/GoNatContainers/pkg/errsignal"
	"github.com/i5heu/GoNatContainers/pkg/linked"
)

// Flag-returning variants of the Stack methods. On false, errsignal.Last
// holds the cause.

func Init(s *Stack, opts ...linked.Option) bool {
	return report(s.Init(opts...))
}

func Invalidate(s *Stack) bool {
	return report(s.Invalidate())
}

func Count(s *Stack, out *uint) bool {
	return into(s, out, (*Stack).Count)
}

func Push(s *Stack, v uint) bool {
	return report(s.Push(v))
}

func Pop(s *Stack, out *uint) bool {
	return into(s, out, (*Stack).Pop)
}

func Peek(s *Stack, out *uint) bool {
	return into(s, out, (*Stack).Peek)
}

// into runs a value-producing operation, checking the handle before out.
func into(s *Stack, out *uint, op func(*Stack) (uint, error)) bool {
	switch {
	case s == nil:
		return report(ErrObjectIsNull)
	case out == nil:
		return report(ErrOutIsNull)
	}
	v, err := op(s)
	if err != nil {
		return report(err)
	}
	*out = v
	return true
}

func report(err error) bool {
	if err == nil {
		return true
	}
	errsignal.Set(err)
	return false
}
