package seqs

const (
	defaultBufferCapacity = 16
	defaultHighWater      = 1 << 16
)

type config struct {
	bufferCapacity int
	highWater      int
	groupLimit     int
}

// Option configures the buffering operators (Tee, TeeN, Cycle, Group).
type Option func(*config)

// WithBufferCapacity sets the initial capacity of tee buffers and of the
// cycle replay buffer.
func WithBufferCapacity(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.bufferCapacity = n
	}
}

// WithHighWater sets the tee buffer depth at which a warning is traced.
// n <= 0 disables the warning.
func WithHighWater(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.highWater = n
	}
}

// WithGroupLimit bounds the number of elements Group pulls before it fails
// with ErrLimitExceeded. 0 means unlimited.
func WithGroupLimit(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.groupLimit = n
	}
}

func newConfig(opts []Option) config {
	c := config{
		bufferCapacity: defaultBufferCapacity,
		highWater:      defaultHighWater,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
