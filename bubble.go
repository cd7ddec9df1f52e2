package bubble

import (
	"cmp"
	"slices"

	"github.com/npillmayer/bubble/avl"
)

// Phase is the fill state of a bubble.
type Phase int8

const (
	// Filling: the bucket array is an unsorted append log, no overflow trees exist.
	Filling Phase = iota
	// Saturated: the bucket array has been sorted and holds exactly Capacity
	// buckets; further keys go to overflow trees.
	Saturated
)

func (p Phase) String() string {
	switch p {
	case Filling:
		return "filling"
	case Saturated:
		return "saturated"
	}
	return "unknown"
}

type bucket[K any] struct {
	key      K
	overflow *avl.Tree[K] // nil if bucket has no overflow keys
	vacant   bool         // primary key has been removed, but still routes
}

// Bubble is a bucketed index for keys of type K.
//
// Once saturated, the bubble keeps its buckets in ascending order of their
// primary keys. Overflow trees hold keys routed to their bucket by the binary
// search over primary keys; see package documentation.
//
// Bubbles have to be created by New or NewWithConfig.
type Bubble[K any] struct {
	cfg     Config[K]
	buckets []bucket[K]
	size    int // logical number of keys
	phase   Phase
}

// New creates an empty bubble of a given capacity, for a key type with a
// natural order.
func New[K cmp.Ordered](capacity int) (*Bubble[K], error) {
	return NewWithConfig(OrderedConfig[K](capacity))
}

// NewWithConfig creates an empty bubble with a validated configuration.
func NewWithConfig[K any](cfg Config[K]) (*Bubble[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Bubble[K]{
		cfg:     cfg,
		buckets: make([]bucket[K], 0, cfg.Capacity),
	}, nil
}

// Config returns the configuration of b.
func (b *Bubble[K]) Config() Config[K] {
	return b.cfg
}

// Phase returns the current fill phase of b.
func (b *Bubble[K]) Phase() Phase {
	return b.phase
}

// Len returns the number of keys in b.
func (b *Bubble[K]) Len() int {
	return b.size
}

// ArraySize returns the capacity of the bucket array.
func (b *Bubble[K]) ArraySize() int {
	return b.cfg.Capacity
}

// IsEmpty reports whether b holds no keys.
func (b *Bubble[K]) IsEmpty() bool {
	return b.size == 0
}

// Buckets returns the number of buckets currently in use. This is Len() while
// filling and ArraySize() once saturated.
func (b *Bubble[K]) Buckets() int {
	return len(b.buckets)
}

// saturate sorts the bucket array. It is called exactly once, when the first
// key arrives at a full bubble.
func (b *Bubble[K]) saturate() {
	assert(b.phase == Filling, "bubble saturated twice")
	slices.SortStableFunc(b.buckets, func(x, y bucket[K]) int {
		return b.cfg.Compare(x.key, y.key)
	})
	b.phase = Saturated
	T().Debugf("bubble: saturated with %d buckets", len(b.buckets))
}

// lowerBound returns the position of the first bucket with a primary key not
// less than key, and whether that primary key equals key.
func (b *Bubble[K]) lowerBound(key K) (int, bool) {
	return slices.BinarySearchFunc(b.buckets, key, func(bk bucket[K], k K) int {
		return b.cfg.Compare(bk.key, k)
	})
}

// target returns the bucket responsible for a non-primary key with insertion
// point idx: the preceding bucket, or the first bucket for keys smaller than
// every primary key.
func target(idx int) int {
	if idx == 0 {
		return 0
	}
	return idx - 1
}
