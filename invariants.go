package bubble

import "fmt"

// Check validates structural invariants of b:
//
//   - while filling, there is one bucket per key and no overflow tree or
//     vacant bucket,
//   - once saturated, there are exactly ArraySize() buckets, ordered by
//     primary key, every overflow tree is a valid AVL tree, and the size is
//     the number of non-vacant primary keys plus all overflow keys.
//
// Overflow keys are not checked against the ranges of their buckets, as
// promoting a tree root to primary key may leave smaller keys behind.
func (b *Bubble[K]) Check() error {
	if b.size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvariant, b.size)
	}
	switch b.phase {
	case Filling:
		if len(b.buckets) != b.size {
			return fmt.Errorf("%w: %d buckets for %d keys while filling",
				ErrInvariant, len(b.buckets), b.size)
		}
		if b.size > b.cfg.Capacity {
			return fmt.Errorf("%w: %d keys exceed capacity %d while filling",
				ErrInvariant, b.size, b.cfg.Capacity)
		}
		for i, bk := range b.buckets {
			if bk.overflow != nil {
				return fmt.Errorf("%w: bucket %d has overflow while filling", ErrInvariant, i)
			}
			if bk.vacant {
				return fmt.Errorf("%w: bucket %d is vacant while filling", ErrInvariant, i)
			}
		}
	case Saturated:
		if len(b.buckets) != b.cfg.Capacity {
			return fmt.Errorf("%w: %d buckets for capacity %d", ErrInvariant,
				len(b.buckets), b.cfg.Capacity)
		}
		count := 0
		for i, bk := range b.buckets {
			if i > 0 && b.cfg.Compare(b.buckets[i-1].key, bk.key) > 0 {
				return fmt.Errorf("%w: buckets %d and %d out of order", ErrInvariant, i-1, i)
			}
			if !bk.vacant {
				count++
			}
			if bk.overflow == nil {
				continue
			}
			count += bk.overflow.Len()
			if bk.overflow.IsEmpty() {
				return fmt.Errorf("%w: bucket %d has empty overflow tree", ErrInvariant, i)
			}
			if err := bk.overflow.Check(); err != nil {
				return fmt.Errorf("%w: bucket %d: %w", ErrInvariant, i, err)
			}
		}
		if count != b.size {
			return fmt.Errorf("%w: size %d, but %d keys stored", ErrInvariant, b.size, count)
		}
	default:
		return fmt.Errorf("%w: unknown phase %d", ErrInvariant, b.phase)
	}
	return nil
}
