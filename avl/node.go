package avl

type node[K any] struct {
	key         K
	height      int // leaf has height 1
	left, right *node[K]
}

func newNode[K any](key K) *node[K] {
	return &node[K]{key: key, height: 1}
}

func height[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// balance is height(left) - height(right).
func balance[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func (n *node[K]) fixHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

//	    n              l
//	   / \            / \
//	  l   c   -->    a   n
//	 / \                / \
//	a   b              b   c
func rotateRight[K any](n *node[K]) *node[K] {
	l := n.left
	n.left = l.right
	l.right = n
	n.fixHeight()
	l.fixHeight()
	return l
}

func rotateLeft[K any](n *node[K]) *node[K] {
	r := n.right
	n.right = r.left
	r.left = n
	n.fixHeight()
	r.fixHeight()
	return r
}

// rebalance recomputes the height of n and restores the AVL property at n,
// assuming both subtrees of n are balanced. It returns the new subtree root.
func rebalance[K any](n *node[K]) *node[K] {
	n.fixHeight()
	switch bf := balance(n); {
	case bf > 1:
		if balance(n.left) < 0 { // left-right case
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if balance(n.right) > 0 { // right-left case
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

func minNode[K any](n *node[K]) *node[K] {
	assert(n != nil, "minNode called with nil node")
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K]) clone() *node[K] {
	if n == nil {
		return nil
	}
	return &node[K]{
		key:    n.key,
		height: n.height,
		left:   n.left.clone(),
		right:  n.right.clone(),
	}
}
