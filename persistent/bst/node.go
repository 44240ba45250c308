package bst

import "fmt"

type color uint8

const (
	red color = iota
	black
)

func (c color) String() string {
	if c == red {
		return "R"
	}
	return "B"
}

// node is the immutable building block of all trees. An empty subtree is
// represented by a nil node.
//
// Every node caches the height of the subtree it roots. The AVL strategy balances
// on it; all strategies use it to report a tree's height in O(1).
// The color is maintained by the red-black strategy only.
type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int
	color  color
}

// mknode creates a new node with a correct cached height.
func mknode[T any](left *node[T], value T, right *node[T], c color) *node[T] {
	return &node[T]{
		value:  value,
		left:   left,
		right:  right,
		height: 1 + max(left.h(), right.h()),
		color:  c,
	}
}

func (n *node[T]) String() string {
	if n == nil {
		return "⊥"
	}
	return fmt.Sprintf("%v", n.value)
}

// h returns the cached height of n; empty subtrees have height 0.
func (n *node[T]) h() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[T]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.h() - n.right.h()
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// isRed is false for empty subtrees.
func (n *node[T]) isRed() bool {
	return n != nil && n.color == red
}

// isBlack is false for empty subtrees.
func (n *node[T]) isBlack() bool {
	return n != nil && n.color == black
}

// --- Copy on write ---------------------------------------------------------

func (n *node[T]) withLeft(left *node[T]) *node[T] {
	return mknode(left, n.value, n.right, n.color)
}

func (n *node[T]) withRight(right *node[T]) *node[T] {
	return mknode(n.left, n.value, right, n.color)
}

func (n *node[T]) withValue(value T) *node[T] {
	return mknode(n.left, value, n.right, n.color)
}

// painted returns n in color c. If n already is of color c, n itself is returned.
// Painting an empty subtree yields an empty subtree.
func (n *node[T]) painted(c color) *node[T] {
	if n == nil || n.color == c {
		return n
	}
	return mknode(n.left, n.value, n.right, c)
}

// --- Helpers ---------------------------------------------------------------

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
