package bubble

// Clone returns a deep copy of b. The copy does not share any buckets or
// tree nodes with b.
func (b *Bubble[K]) Clone() *Bubble[K] {
	c := &Bubble[K]{cfg: b.cfg}
	c.copyBuckets(b)
	return c
}

// Assign replaces the contents of b by a deep copy of the contents of src.
//
// Bubbles of different capacity are incompatible. In this case b is reset to
// an empty bubble of its own capacity and ErrCapacityMismatch is returned.
func (b *Bubble[K]) Assign(src *Bubble[K]) error {
	if src == b {
		return nil
	}
	if src == nil || src.cfg.Capacity != b.cfg.Capacity {
		capacity := 0
		if src != nil {
			capacity = src.cfg.Capacity
		}
		T().Errorf("bubble: cannot copy bubble of capacity %d into capacity %d",
			capacity, b.cfg.Capacity)
		b.Reset()
		return ErrCapacityMismatch
	}
	b.copyBuckets(src)
	return nil
}

// Reset removes all keys and buckets from b. Afterwards b is in filling phase.
func (b *Bubble[K]) Reset() {
	b.buckets = make([]bucket[K], 0, b.cfg.Capacity)
	b.size = 0
	b.phase = Filling
}

func (b *Bubble[K]) copyBuckets(src *Bubble[K]) {
	b.buckets = make([]bucket[K], len(src.buckets), b.cfg.Capacity)
	for i, bk := range src.buckets {
		b.buckets[i] = bucket[K]{key: bk.key, overflow: bk.overflow.Clone(), vacant: bk.vacant}
	}
	b.size = src.size
	b.phase = src.phase
}
