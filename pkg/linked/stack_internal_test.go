package linked

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestStackOrder(t *testing.T) {
	g := NewWithT(t)
	s := NewStack[uint]()

	for i := uint(0); i < 100; i++ {
		g.Expect(s.Push(i)).To(Succeed())
	}
	for i := uint(100); i > 0; i-- {
		top, err := s.Peek()
		g.Expect(err).To(BeNil())
		v, err := s.Pop()
		g.Expect(err).To(BeNil())
		g.Expect(v).To(Equal(i - 1))
		g.Expect(top).To(Equal(v))
	}

	_, err := s.Pop()
	g.Expect(KindOf(err)).To(Equal(KindEmpty))
	_, err = s.Peek()
	g.Expect(KindOf(err)).To(Equal(KindEmpty))
}

func TestStackNodeLimit(t *testing.T) {
	g := NewWithT(t)

	var s Stack[uint]
	g.Expect(s.Init(WithNodeLimit(1))).To(Succeed())
	g.Expect(s.Push(1)).To(Succeed())
	g.Expect(KindOf(s.Push(2))).To(Equal(KindAllocationFailed))

	n, err := s.Count()
	g.Expect(err).To(BeNil())
	g.Expect(n).To(Equal(uint(1)))
}

func TestStackInvalidate(t *testing.T) {
	g := NewWithT(t)
	s := NewStack[uint]()
	g.Expect(s.Push(1)).To(Succeed())
	g.Expect(s.Push(2)).To(Succeed())

	g.Expect(s.Invalidate(nil)).To(Succeed())
	_, err := s.Pop()
	g.Expect(KindOf(err)).To(Equal(KindUninitialized))

	g.Expect(s.Init()).To(Succeed())
	_, err = s.Pop()
	g.Expect(KindOf(err)).To(Equal(KindEmpty))
}
