package avl

import "iter"

// InOrder returns all keys of the tree in ascending order. For an empty tree
// the result is an empty (non-nil) slice.
func (t *Tree[K]) InOrder() []K {
	keys := make([]K, 0, t.Len())
	t.ForEachKey(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// All returns an iterator over all keys of the tree in ascending order.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEachKey(yield)
	}
}

// ForEachKey walks the keys in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K]) ForEachKey(fn func(key K) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	forEachKeyNode(t.root, fn)
}

func forEachKeyNode[K any](n *node[K], fn func(key K) bool) bool {
	if n == nil {
		return true
	}
	if !forEachKeyNode(n.left, fn) {
		return false
	}
	if !fn(n.key) {
		return false
	}
	return forEachKeyNode(n.right, fn)
}

// each visits all nodes in pre-order, together with their depth (root = 0).
func (t *Tree[K]) each(fn func(n *node[K], depth int) error) error {
	if t == nil || t.root == nil {
		return nil
	}
	return eachNode(t.root, 0, fn)
}

func eachNode[K any](n *node[K], depth int, fn func(*node[K], int) error) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	if n.left != nil {
		if err := eachNode(n.left, depth+1, fn); err != nil {
			return err
		}
	}
	if n.right != nil {
		return eachNode(n.right, depth+1, fn)
	}
	return nil
}
