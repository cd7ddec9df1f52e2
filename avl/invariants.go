package avl

import "fmt"

// Check validates structural tree invariants: keys are strictly ascending
// in-order, every node stores its correct height, sibling subtrees differ in
// height by at most one, and the cached key count matches.
//
// This checker is intended for tests.
func (t *Tree[K]) Check() error {
	if t == nil {
		return nil
	}
	if t.compare == nil {
		return fmt.Errorf("%w: missing comparison function", ErrInvalidTree)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvalidTree, t.size)
		}
		return nil
	}
	count, _, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvalidTree, count, t.size)
	}
	return nil
}

// checkNode checks the subtree at n, whose keys have to lie strictly between
// lo and hi (nil means unbounded).
func (t *Tree[K]) checkNode(n *node[K], lo, hi *K) (count int, h int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && t.compare(n.key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrInvalidTree, n.key, *lo)
	}
	if hi != nil && t.compare(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrInvalidTree, n.key, *hi)
	}
	lcount, lh, err := t.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rcount, rh, err := t.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, 0, fmt.Errorf("%w: node %v out of balance (%d)", ErrInvalidTree, n.key, d)
	}
	h = 1 + max(lh, rh)
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: node %v has height %d, should be %d",
			ErrInvalidTree, n.key, n.height, h)
	}
	return lcount + rcount + 1, h, nil
}
