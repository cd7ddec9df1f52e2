package bubble

import (
	"slices"

	"github.com/npillmayer/bubble/avl"
)

// Insert adds keys to b, one after the other.
//
// While filling, every key is appended as a new bucket, without checking for
// duplicates. Once saturated, a key equal to an existing primary key or
// already present in its overflow tree is ignored.
func (b *Bubble[K]) Insert(keys ...K) {
	for _, k := range keys {
		b.insert(k)
	}
}

func (b *Bubble[K]) insert(key K) {
	if b.phase == Filling {
		if b.size < b.cfg.Capacity {
			b.buckets = append(b.buckets, bucket[K]{key: key})
			b.size++
			return
		}
		b.saturate()
	}
	idx, found := b.lowerBound(key)
	if found {
		if b.occupied(idx, key) >= 0 {
			return
		}
		b.buckets[idx].vacant = false // first bucket of the run is vacant
		b.size++
		return
	}
	bk := &b.buckets[target(idx)]
	if bk.overflow == nil {
		bk.overflow = avl.NewWithCompare(b.cfg.Compare)
	}
	if bk.overflow.Insert(key) {
		b.size++
	}
}

// Remove deletes keys from b, one after the other. Keys not present are
// ignored.
//
// While filling, every bucket with a primary key equal to a key is erased.
// Once saturated, the bucket array never shrinks: removing a primary key
// promotes the root of the bucket's overflow tree to be the new primary key.
// A bucket without overflow keys keeps its primary key for routing, but the
// bucket is marked vacant and the key is no longer contained in b.
func (b *Bubble[K]) Remove(keys ...K) {
	for _, k := range keys {
		b.remove(k)
	}
}

func (b *Bubble[K]) remove(key K) {
	if b.phase == Filling {
		n := len(b.buckets)
		b.buckets = slices.DeleteFunc(b.buckets, func(bk bucket[K]) bool {
			return b.cfg.Compare(bk.key, key) == 0
		})
		b.size -= n - len(b.buckets)
		return
	}
	idx, found := b.lowerBound(key)
	if found {
		i := b.occupied(idx, key)
		if i < 0 { // already removed
			return
		}
		bk := &b.buckets[i]
		if bk.overflow.IsEmpty() {
			T().Debugf("bubble: bucket %d with primary key %v is vacant", i, key)
			bk.vacant = true
			b.size--
			return
		}
		root, err := bk.overflow.Root()
		assert(err == nil, "bubble.remove: overflow tree has no root")
		bk.overflow.Remove(root)
		bk.key = root
		b.dropIfEmpty(i)
		b.size--
		return
	}
	t := target(idx)
	if b.buckets[t].overflow.Remove(key) {
		b.dropIfEmpty(t)
		b.size--
	}
}

// occupied returns the position of the first non-vacant bucket in the run of
// buckets starting at idx whose primary keys equal key, or -1.
func (b *Bubble[K]) occupied(idx int, key K) int {
	for i := idx; i < len(b.buckets) && b.cfg.Compare(b.buckets[i].key, key) == 0; i++ {
		if !b.buckets[i].vacant {
			return i
		}
	}
	return -1
}

func (b *Bubble[K]) dropIfEmpty(i int) {
	if b.buckets[i].overflow.IsEmpty() {
		b.buckets[i].overflow = nil
	}
}

// Search reports whether key is contained in b.
func (b *Bubble[K]) Search(key K) bool {
	if len(b.buckets) == 0 {
		return false
	}
	if b.phase == Filling {
		return slices.ContainsFunc(b.buckets, func(bk bucket[K]) bool {
			return b.cfg.Compare(bk.key, key) == 0
		})
	}
	idx, found := b.lowerBound(key)
	if found {
		return b.occupied(idx, key) >= 0
	}
	return b.buckets[target(idx)].overflow.Search(key)
}
