package container

// ValidationInterface is a *type constraint* that every benchmarked container
// must satisfy. It is only used at compile time by the testbench generics.
type ValidationInterface interface {
	// Insert stores one element. It fails when the container cannot allocate a node.
	Insert(uint) error

	// Extract removes the next element in the container's order.
	// It fails when the container is empty.
	Extract() (uint, error)

	// Peek returns the element Extract would return, without removing it.
	Peek() (uint, error)

	// Count returns how many elements are stored.
	Count() (uint, error)

	// Invalidate releases every element. The container must not be used afterwards.
	Invalidate() error
}

// Order is the extraction order a container promises.
type Order int

const (
	FIFO Order = iota
	LIFO
)

func (o Order) String() string {
	if o == LIFO {
		return "LIFO"
	}
	return "FIFO"
}

// Expected returns the i-th value Extract must yield after 0..n-1 were inserted
// in order.
func (o Order) Expected(i, n uint) uint {
	if o == LIFO {
		return n - 1 - i
	}
	return i
}
