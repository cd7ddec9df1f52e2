package avl

import (
	"cmp"
)

// Tree is an AVL tree over keys of type K.
//
// A tree has to be created by New or NewWithCompare, as it needs to know how
// to order its keys. A nil *Tree behaves like an empty tree for all read-only
// operations.
type Tree[K any] struct {
	compare func(a, b K) int
	root    *node[K]
	size    int
}

// New creates a tree for an ordered key type and inserts keys, if any.
func New[K cmp.Ordered](keys ...K) *Tree[K] {
	return NewWithCompare(cmp.Compare[K], keys...)
}

// NewWithCompare creates a tree ordered by compare and inserts keys, if any.
// compare has to return a negative number if a < b, zero if a == b and a positive
// number if a > b, and has to impose a total order on K.
func NewWithCompare[K any](compare func(a, b K) int, keys ...K) *Tree[K] {
	assert(compare != nil, "avl.NewWithCompare requires a comparison function")
	t := &Tree[K]{compare: compare}
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a single node.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

// Root returns the key stored at the root node. For an empty tree it returns
// ErrEmptyTree.
func (t *Tree[K]) Root() (K, error) {
	if t.IsEmpty() {
		var zero K
		return zero, ErrEmptyTree
	}
	return t.root.key, nil
}

// Search reports whether key is contained in the tree.
func (t *Tree[K]) Search(key K) bool {
	if t == nil {
		return false
	}
	n := t.root
	for n != nil {
		switch c := t.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Insert adds key to the tree, if it is not already present. It reports
// whether the tree has been changed.
func (t *Tree[K]) Insert(key K) bool {
	assert(t != nil, "Insert called on nil tree")
	var inserted bool
	t.root, inserted = t.insert(t.root, key)
	if inserted {
		t.size++
	}
	return inserted
}

func (t *Tree[K]) insert(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return newNode(key), true
	}
	var inserted bool
	switch c := t.compare(key, n.key); {
	case c < 0:
		n.left, inserted = t.insert(n.left, key)
	case c > 0:
		n.right, inserted = t.insert(n.right, key)
	default:
		return n, false
	}
	if !inserted {
		return n, false
	}
	return rebalance(n), true
}

// Remove deletes key from the tree, if present. It reports whether the tree
// has been changed.
//
// A node with two children takes over the key of its in-order successor, and
// the successor node is removed instead.
func (t *Tree[K]) Remove(key K) bool {
	if t.IsEmpty() {
		return false
	}
	var removed bool
	t.root, removed = t.remove(t.root, key)
	if removed {
		t.size--
	}
	return removed
}

func (t *Tree[K]) remove(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch c := t.compare(key, n.key); {
	case c < 0:
		n.left, removed = t.remove(n.left, key)
	case c > 0:
		n.right, removed = t.remove(n.right, key)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		succ := minNode(n.right)
		n.key = succ.key
		n.right, removed = t.remove(n.right, succ.key)
		assert(removed, "in-order successor vanished during removal")
	}
	if !removed {
		return n, false
	}
	return rebalance(n), true
}

// Clone returns a deep copy of the tree. The copy does not share any nodes
// with t.
func (t *Tree[K]) Clone() *Tree[K] {
	if t == nil {
		return nil
	}
	return &Tree[K]{
		compare: t.compare,
		root:    t.root.clone(),
		size:    t.size,
	}
}
