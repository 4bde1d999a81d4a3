package linked

// defaultNodeCache is how many released nodes a container keeps for reuse
// unless WithNodeCache says otherwise.
const defaultNodeCache = 64

type settings struct {
	nodeLimit uint
	nodeCache uint
}

// Option configures a container at Init time.
type Option func(*settings)

// WithNodeLimit caps the number of live nodes. Once the cap is reached further
// insertions fail with KindAllocationFailed. Zero means no cap.
func WithNodeLimit(n uint) Option {
	return func(s *settings) {
		s.nodeLimit = n
	}
}

// WithNodeCache sets how many released nodes are kept for reuse.
func WithNodeCache(n uint) Option {
	return func(s *settings) {
		s.nodeCache = n
	}
}

func newSettings(opts []Option) settings {
	s := settings{nodeCache: defaultNodeCache}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
