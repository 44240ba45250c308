package bst

import "github.com/npillmayer/immutree"

// Unbalanced trees rebuild the modified path without any restructuring. Their
// height depends on the order of insertion and degenerates to a list for sorted
// input.

func plainInsert[T any](root *node[T], value T, cmp immutree.Comparator[T]) *node[T] {
	p, found := descend(root, value, cmp, nil)
	if found {
		return root
	}
	return p.foldR(step[T].attach, mknode(nil, value, nil, black))
}

func plainRemove[T any](root *node[T], value T, cmp immutree.Comparator[T]) *node[T] {
	p, found := descend(root, value, cmp, nil)
	if !found {
		return root
	}
	p, bottom := unlink(p)
	return p.foldR(step[T].attach, bottom)
}
