/*
Package avl implements a height-balanced binary search tree (AVL tree).

Trees hold a set of keys of an arbitrary type K, ordered by a comparison
function. Duplicate keys are ignored. Every node exclusively owns its two
children; there are no parent pointers, and rebalancing happens on the way
back up from a recursive insert or delete.

	t := avl.New(35, 30, 38)
	t.Insert(36)
	t.Remove(35)
	fmt.Println(t.InOrder()) // [30 36 38]

Trees are not safe for concurrent use. Clients have to serialize access.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
