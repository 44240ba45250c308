/*
Package list implements an immutable persistent singly linked list.

Lists are built by prepending values. Prepend, Peek and Pop are O(1) and a new
version always shares the complete tail with the version it was derived from:

    l1 := list.Of(2, 3)
    l2 := l1.Prepend(1)    // l2 = (1 2 3), l1 still is (2 3)

Every cell caches the length of the list it heads, making Len an O(1) operation.

Lists are the export format of the binary search trees in package persistent/bst,
which produce their values in order by calling Prepend on a list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/immutree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutree.list'.
func tracer() tracing.Trace {
	return tracing.Select("immutree.list")
}

func assertNotEmpty[T any](l List[T], op string) {
	if l.head == nil {
		panic(fmt.Errorf("list: cannot %s: %w", op, immutree.ErrEmptyCollection))
	}
}
