package avl

import "errors"

var (
	// ErrEmptyTree signals access to the root of a tree without nodes.
	ErrEmptyTree = errors.New("avl: empty tree")
	// ErrInvalidTree signals a violation of a structural tree invariant.
	ErrInvalidTree = errors.New("avl: invalid tree")
)
