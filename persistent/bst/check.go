package bst

import (
	"fmt"

	"github.com/npillmayer/immutree"
)

// Check validates the invariants of tree: values are in strict order, every node
// caches its correct height, and the invariants of the tree's balancing strategy
// hold. It returns an error wrapping immutree.ErrInvariantViolation for the first
// violation found, or nil for a valid tree.
//
// Check visits every node and is meant for testing and diagnostics.
func (tree Tree[T]) Check() error {
	if tree.root == nil {
		return nil
	}
	if tree.cmp == nil {
		return violation("tree without comparator")
	}
	if _, err := checkOrder(tree.root, tree.cmp, nil, nil); err != nil {
		return err
	}
	if err := checkHeights(tree.root); err != nil {
		return err
	}
	switch tree.balancing {
	case AVL:
		return checkAVL(tree.root)
	case RedBlack:
		if tree.root.isRed() {
			return violation("red root %v", tree.root)
		}
		_, err := checkRedBlack(tree.root)
		return err
	}
	return nil
}

func violation(msg string, args ...interface{}) error {
	return fmt.Errorf("bst: %s: %w", fmt.Sprintf(msg, args...), immutree.ErrInvariantViolation)
}

// checkOrder makes sure every value of n lies strictly between lo and hi, if
// present. It returns the number of nodes checked.
func checkOrder[T any](n *node[T], cmp immutree.Comparator[T], lo, hi *node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && cmp(lo.value, n.value) >= 0 {
		return 0, violation("value %v not greater than ancestor %v", n.value, lo.value)
	}
	if hi != nil && cmp(n.value, hi.value) >= 0 {
		return 0, violation("value %v not less than ancestor %v", n.value, hi.value)
	}
	l, err := checkOrder(n.left, cmp, lo, n)
	if err != nil {
		return 0, err
	}
	r, err := checkOrder(n.right, cmp, n, hi)
	return 1 + l + r, err
}

func checkHeights[T any](n *node[T]) error {
	if n == nil {
		return nil
	}
	if n.height != 1+max(n.left.h(), n.right.h()) {
		return violation("node %v caches height %d, should be %d", n, n.height, 1+max(n.left.h(), n.right.h()))
	}
	if err := checkHeights(n.left); err != nil {
		return err
	}
	return checkHeights(n.right)
}

func checkAVL[T any](n *node[T]) error {
	if n == nil {
		return nil
	}
	if bf := n.balanceFactor(); bf < -1 || bf > 1 {
		return violation("node %v has balance factor %d", n, bf)
	}
	if err := checkAVL(n.left); err != nil {
		return err
	}
	return checkAVL(n.right)
}

// checkRedBlack returns the black-height of n if n has no double-red violation
// and all paths from n to empty subtrees have the same black-height.
func checkRedBlack[T any](n *node[T]) (int, error) {
	if n == nil {
		return 1, nil
	}
	if doubleRed(n, toLeft) || doubleRed(n, toRight) {
		return 0, violation("red node %v has a red child", n)
	}
	l, err := checkRedBlack(n.left)
	if err != nil {
		return 0, err
	}
	r, err := checkRedBlack(n.right)
	if err != nil {
		return 0, err
	}
	if l != r {
		return 0, violation("node %v has black-heights %d | %d", n, l, r)
	}
	if n.color == black {
		l++
	}
	return l, nil
}
