package bst

import (
	"github.com/npillmayer/immutree"
	"github.com/npillmayer/immutree/persistent/list"
)

// Query operations are identical for all balancing strategies.

// contains descends from n by comparator result, O(height).
func contains[T any](n *node[T], value T, cmp immutree.Comparator[T]) bool {
	for n != nil {
		c := cmp(value, n.value)
		switch {
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

// size counts the nodes of n, O(n).
func size[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + size(n.left) + size(n.right)
}

// toList exports the values of n in order. The list is built from the right,
// prepending each value in reverse in-order sequence onto the values already
// collected, which is equivalent to concatenating left list, value and right list.
func toList[T any](n *node[T], tail list.List[T]) list.List[T] {
	if n == nil {
		return tail
	}
	tail = toList(n.right, tail)
	tail = tail.Prepend(n.value)
	return toList(n.left, tail)
}

// minNode returns the leftmost node of n.
func minNode[T any](n *node[T]) *node[T] {
	assertNotEmpty(n, "find minimum")
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode returns the rightmost node of n.
func maxNode[T any](n *node[T]) *node[T] {
	assertNotEmpty(n, "find maximum")
	for n.right != nil {
		n = n.right
	}
	return n
}

// each visits the values of n in order until f returns false. It reports
// whether the traversal ran to completion.
func each[T any](n *node[T], f func(T) bool) bool {
	if n == nil {
		return true
	}
	return each(n.left, f) && f(n.value) && each(n.right, f)
}

// blackHeight follows the red-black convention: an empty subtree counts as 1,
// red nodes do not add to the height of their children.
func blackHeight[T any](n *node[T]) int {
	if n == nil {
		return 1
	}
	h := max(blackHeight(n.left), blackHeight(n.right))
	if n.color == black {
		h++
	}
	return h
}
