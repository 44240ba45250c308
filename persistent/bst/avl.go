package bst

import "github.com/npillmayer/immutree"

// --- AVL balancing ---------------------------------------------------------

// AVL nodes keep |balanceFactor| ≤ 1, with height cached in every node.
// Colors are not used and stay at their zero value.

func avlNode[T any](left *node[T], value T, right *node[T]) *node[T] {
	return mknode(left, value, right, red)
}

// rotateLeft makes the right child of n the new subtree root:
//
//        n                r
//       / \              / \
//      a   r     ⇒      n   c
//         / \          / \
//        b   c        a   b
//
func rotateLeft[T any](n *node[T]) *node[T] {
	assertThat(n != nil && n.right != nil, "cannot rotate left without right child: %v", n)
	r := n.right
	tracer().Debugf("avl: rotate left at %v", n)
	return avlNode(avlNode(n.left, n.value, r.left), r.value, r.right)
}

// rotateRight is the mirror image of rotateLeft.
func rotateRight[T any](n *node[T]) *node[T] {
	assertThat(n != nil && n.left != nil, "cannot rotate right without left child: %v", n)
	l := n.left
	tracer().Debugf("avl: rotate right at %v", n)
	return avlNode(l.left, l.value, avlNode(l.right, n.value, n.right))
}

func avlInsert[T any](root *node[T], value T, cmp immutree.Comparator[T]) *node[T] {
	p, found := descend(root, value, cmp, nil)
	if found {
		return root
	}
	tracer().Debugf("avl: insert %v below %s", value, p)
	return p.foldR(func(s step[T], child *node[T]) *node[T] {
		return avlBalanceInserted(s.attach(child), value, cmp)
	}, avlNode(nil, value, nil))
}

// avlBalanceInserted restores the AVL invariant at n after value has been inserted
// into one of its subtrees. The position of value relative to the heavy child
// decides between a single and a double rotation.
func avlBalanceInserted[T any](n *node[T], value T, cmp immutree.Comparator[T]) *node[T] {
	bf := n.balanceFactor()
	switch {
	case bf > 1 && cmp(value, n.left.value) < 0: // left-left
		return rotateRight(n)
	case bf > 1: // left-right
		return rotateRight(n.withLeft(rotateLeft(n.left)))
	case bf < -1 && cmp(value, n.right.value) > 0: // right-right
		return rotateLeft(n)
	case bf < -1: // right-left
		return rotateLeft(n.withRight(rotateRight(n.right)))
	}
	return n
}

func avlRemove[T any](root *node[T], value T, cmp immutree.Comparator[T]) *node[T] {
	p, found := descend(root, value, cmp, nil)
	if !found {
		return root
	}
	tracer().Debugf("avl: remove %v at %s", value, p)
	p, bottom := unlink(p)
	return p.foldR(func(s step[T], child *node[T]) *node[T] {
		return avlRebalance(s.attach(child))
	}, bottom)
}

// unlink prepares removing the node at the end of path p. It returns the path to
// fold and the subtree replacing the bottom-most node of the path:
//
//   - no children: the node vanishes
//   - one child: the child is promoted
//   - two children: the node takes over the minimum value of its right subtree,
//     and the path is extended down to that minimum, which in turn is replaced by
//     its right child.
//
// unlink is shared by all strategies which remove by value substitution.
func unlink[T any](p path[T]) (path[T], *node[T]) {
	target := p.last()
	assertThat(target.dir == here, "unlink requires a path ending at the node to remove")
	n := target.node
	p = p.dropLast()
	switch {
	case n.left == nil:
		return p, n.right
	case n.right == nil:
		return p, n.left
	}
	succ := minNode(n.right)
	p = append(p, step[T]{node: n.withValue(succ.value), dir: toRight})
	p = descendToMin(p, n.right)
	return p.dropLast(), succ.right
}

// avlRebalance restores the AVL invariant at n after a removal from one of its
// subtrees. There is no inserted value to look at; the balance factor of the
// heavy child decides between a single and a double rotation.
func avlRebalance[T any](n *node[T]) *node[T] {
	bf := n.balanceFactor()
	switch {
	case bf > 1 && n.left.balanceFactor() >= 0:
		return rotateRight(n)
	case bf > 1:
		return rotateRight(n.withLeft(rotateLeft(n.left)))
	case bf < -1 && n.right.balanceFactor() <= 0:
		return rotateLeft(n)
	case bf < -1:
		return rotateLeft(n.withRight(rotateRight(n.right)))
	}
	return n
}
