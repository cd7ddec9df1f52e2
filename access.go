package bubble

import (
	"iter"

	"github.com/npillmayer/bubble/avl"
)

func (b *Bubble[K]) checkIndex(i int) {
	if i < 0 || i >= len(b.buckets) {
		panic(ErrIndexOutOfRange)
	}
}

// At returns the keys of bucket i. For a bucket without overflow keys this is
// its primary key, or nothing if the bucket is vacant. Otherwise it is the
// in-order sequence of the bucket's overflow tree, without the primary key.
//
// At panics with ErrIndexOutOfRange if i is not a valid bucket position.
func (b *Bubble[K]) At(i int) []K {
	b.checkIndex(i)
	if b.buckets[i].overflow == nil {
		if b.buckets[i].vacant {
			return []K{}
		}
		return []K{b.buckets[i].key}
	}
	return b.buckets[i].overflow.InOrder()
}

// Key returns the primary key of bucket i. For a vacant bucket this is the
// removed key, which still delimits the bucket's range.
//
// Key panics with ErrIndexOutOfRange if i is not a valid bucket position.
func (b *Bubble[K]) Key(i int) K {
	b.checkIndex(i)
	return b.buckets[i].key
}

// Vacant reports whether the primary key of bucket i has been removed.
//
// Vacant panics with ErrIndexOutOfRange if i is not a valid bucket position.
func (b *Bubble[K]) Vacant(i int) bool {
	b.checkIndex(i)
	return b.buckets[i].vacant
}

// Tree returns a copy of the overflow tree of bucket i. For a bucket without
// overflow keys, an empty tree is returned.
//
// Tree panics with ErrIndexOutOfRange if i is not a valid bucket position.
func (b *Bubble[K]) Tree(i int) *avl.Tree[K] {
	b.checkIndex(i)
	if b.buckets[i].overflow == nil {
		return avl.NewWithCompare(b.cfg.Compare)
	}
	return b.buckets[i].overflow.Clone()
}

// All returns an iterator over every key stored in b, bucket by bucket: the
// primary key of a bucket (unless vacant), followed by its overflow keys in
// ascending order.
func (b *Bubble[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, bk := range b.buckets {
			if !bk.vacant && !yield(bk.key) {
				return
			}
			for k := range bk.overflow.All() {
				if !yield(k) {
					return
				}
			}
		}
	}
}
