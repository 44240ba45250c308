/*
Package bst implements persistent (immutable) self-balancing binary search trees.

Trees are ordered sets of values. Every “modification” returns a new incarnation of
a tree, leaving the original untouched and fully usable:

    t1 := bst.Ordered[int]().With(5).With(3).With(8)
    t2 := t1.With(4)        // t2 contains 3, 4, 5, 8
    t1.Contains(4)          // still false

Nodes are never mutated. Inserting or deleting a value rebuilds the path from the
root down to the point of change; every subtree off that path is shared between
the old and the new tree. Trees are therefore inherently safe for concurrent
readers, including readers of historical versions.

Balancing

Three balancing strategies are available, selected at construction time:

    AVL          height-balanced, |height(left) - height(right)| ≤ 1 for every node
    RedBlack     color-balanced (Okasaki-style insertion, Kahrs-style deletion)
    Unbalanced   a plain binary search tree, for comparison and testing

All strategies share the same node model and query operations (Contains, Size,
ToList, …); they differ only in how a modified path is rebuilt.

Faults

Operations invoked under violated preconditions panic with an error wrapping
immutree.ErrInvariantViolation. These indicate programming errors and are not
meant to be recovered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"fmt"

	"github.com/npillmayer/immutree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutree.bst'.
func tracer() tracing.Trace {
	return tracing.Select("immutree.bst")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(fmt.Errorf("%s: %w", msg, immutree.ErrInvariantViolation))
	}
}

// assertNotEmpty faults with immutree.ErrEmptyCollection for empty subtrees.
func assertNotEmpty[T any](n *node[T], op string) {
	if n == nil {
		panic(fmt.Errorf("bst: cannot %s of empty subtree: %w", op, immutree.ErrEmptyCollection))
	}
}
