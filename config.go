package bubble

import (
	"cmp"
	"fmt"
)

// Config configures a bubble.
type Config[K any] struct {
	// Capacity is the fixed number of buckets, at least 1.
	Capacity int
	// Compare imposes a total order on keys. It has to return a negative
	// number if a < b, zero if a == b and a positive number if a > b.
	Compare func(a, b K) int
}

// OrderedConfig returns a configuration for a key type with a natural order.
func OrderedConfig[K cmp.Ordered](capacity int) Config[K] {
	return Config[K]{
		Capacity: capacity,
		Compare:  cmp.Compare[K],
	}
}

func (cfg Config[K]) validate() error {
	if cfg.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1, is %d", ErrInvalidConfig, cfg.Capacity)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	return nil
}
