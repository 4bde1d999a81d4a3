package linked

// node is one link of the list.
type node[T any] struct {
	next  *node[T]
	value T
}

// list is a singly linked list with head and tail pointers. Queue appends at
// the tail, Stack inserts at the head; both remove from the head.
type list[T any] struct {
	head   *node[T]
	tail   *node[T]
	length uint

	// free holds released nodes, linked through next.
	free     *node[T]
	freeLen  uint
	settings settings
	ready    bool
}

func (l *list[T]) init(opts []Option) {
	*l = list[T]{
		settings: newSettings(opts),
		ready:    true,
	}
}

// alloc hands out a node, preferring the free list. It returns nil when the
// node limit has been reached.
func (l *list[T]) alloc(v T) *node[T] {
	if l.settings.nodeLimit != 0 && l.length >= l.settings.nodeLimit {
		return nil
	}
	n := l.free
	if n != nil {
		l.free = n.next
		l.freeLen--
		n.next = nil
	} else {
		n = &node[T]{}
	}
	n.value = v
	return n
}

func (l *list[T]) release(n *node[T]) {
	var zero T
	n.value = zero
	if l.freeLen >= l.settings.nodeCache {
		n.next = nil
		return
	}
	n.next = l.free
	l.free = n
	l.freeLen++
}

func (l *list[T]) pushFront(v T) bool {
	n := l.alloc(v)
	if n == nil {
		return false
	}
	n.next = l.head
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
	return true
}

func (l *list[T]) pushBack(v T) bool {
	n := l.alloc(v)
	if n == nil {
		return false
	}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
	return true
}

func (l *list[T]) popFront() (T, bool) {
	n := l.head
	if n == nil {
		var zero T
		return zero, false
	}
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	v := n.value
	l.release(n)
	return v, true
}

func (l *list[T]) front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// destroy walks every live node, hands its value to fn when fn is not nil,
// and returns the list to its zero value.
func (l *list[T]) destroy(fn func(*T)) {
	for n := l.head; n != nil; {
		next := n.next
		if fn != nil {
			fn(&n.value)
		}
		n.next = nil
		n = next
	}
	*l = list[T]{}
}
