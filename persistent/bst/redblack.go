package bst

import "github.com/npillmayer/immutree"

/*
Red-black balancing
-------------------

Insertion follows C. Okasaki, “Red-black trees in a functional setting” (JFP 1999):
a new value enters as a red leaf, and on the way back up every black node with a
red child having a red child of its own is restructured into a red node with two
black children.

Deletion follows S. Kahrs, “Red-black trees with types” (JFP 2001), in the variant
formally verified for the Coq standard library (MSetRBT). Removing from a black
subtree decreases its black-height by one; lbalS/rbalS repair this “black deficit”
at the parent, possibly propagating it further up the path.

*/

// restructure builds the balanced shape of a local 4-node:
//
//          y
//        /   \
//       x     z        with x, z black and y red
//      / \   / \
//     a   b c   d
//
func restructure[T any](a *node[T], x T, b *node[T], y T, c *node[T], z T, d *node[T]) *node[T] {
	return mknode(mknode(a, x, b, black), y, mknode(c, z, d, black), red)
}

// doubleRed is a predicate: is n red and is its child at side red as well?
func doubleRed[T any](n *node[T], side direction) bool {
	if !n.isRed() {
		return false
	}
	if side == toLeft {
		return n.left.isRed()
	}
	return n.right.isRed()
}

// balance assembles a node of color c from the given subtrees. If the new node is
// black and one of the four double-red shapes is present, the shape is flattened.
func balance[T any](c color, l *node[T], v T, r *node[T]) *node[T] {
	if c == black {
		switch {
		case doubleRed(l, toLeft):
			return restructure(l.left.left, l.left.value, l.left.right, l.value, l.right, v, r)
		case doubleRed(l, toRight):
			return restructure(l.left, l.value, l.right.left, l.right.value, l.right.right, v, r)
		case doubleRed(r, toLeft):
			return restructure(l, v, r.left.left, r.left.value, r.left.right, r.value, r.right)
		case doubleRed(r, toRight):
			return restructure(l, v, r.left, r.value, r.right.left, r.right.value, r.right.right)
		}
	}
	return mknode(l, v, r, c)
}

func rbInsert[T any](root *node[T], value T, cmp immutree.Comparator[T]) *node[T] {
	p, found := descend(root, value, cmp, nil)
	if found {
		return root
	}
	tracer().Debugf("red-black: insert %v below %s", value, p)
	n := p.foldR(func(s step[T], child *node[T]) *node[T] {
		if s.dir == toLeft {
			return balance(s.node.color, child, s.node.value, s.node.right)
		}
		return balance(s.node.color, s.node.left, s.node.value, child)
	}, mknode(nil, value, nil, red))
	return n.painted(black)
}

// --- Deletion --------------------------------------------------------------

func rbRemove[T any](root *node[T], value T, cmp immutree.Comparator[T]) *node[T] {
	p, found := descend(root, value, cmp, nil)
	if !found {
		return root
	}
	tracer().Debugf("red-black: remove %v at %s", value, p)
	target := p.last().node
	n := p.dropLast().foldR(func(s step[T], child *node[T]) *node[T] {
		if s.dir == toLeft {
			if s.node.left.isBlack() { // child has a black deficit
				return lbalS(child, s.node.value, s.node.right)
			}
			return mknode(child, s.node.value, s.node.right, red)
		}
		if s.node.right.isBlack() {
			return rbalS(s.node.left, s.node.value, child)
		}
		return mknode(s.node.left, s.node.value, child, red)
	}, join(target.left, target.right))
	return n.painted(black)
}

// join merges two subtrees l and r, with every value of l less than every value
// of r and both of equal black-height, into a single tree. If both are black, the
// result has a black-height decreased by one.
func join[T any](l, r *node[T]) *node[T] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	switch {
	case l.isRed() && r.isRed():
		m := join(l.right, r.left)
		if m.isRed() {
			return mknode(mknode(l.left, l.value, m.left, red), m.value, mknode(m.right, r.value, r.right, red), red)
		}
		return mknode(l.left, l.value, mknode(m, r.value, r.right, red), red)
	case l.isBlack() && r.isBlack():
		m := join(l.right, r.left)
		if m.isRed() {
			return mknode(mknode(l.left, l.value, m.left, black), m.value, mknode(m.right, r.value, r.right, black), red)
		}
		return lbalS(l.left, l.value, mknode(m, r.value, r.right, black))
	case r.isRed(): // l is black
		return mknode(join(l, r.left), r.value, r.right, red)
	}
	// l is red, r is black
	return mknode(l.left, l.value, join(l.right, r), red)
}

// lbalS builds a node from a left subtree l having a black deficit of one
// relative to r.
func lbalS[T any](l *node[T], v T, r *node[T]) *node[T] {
	switch {
	case l.isRed():
		return mknode(l.painted(black), v, r, red)
	case r.isBlack():
		return rbalReverse(l, v, r.painted(red))
	case r.isRed() && r.left.isBlack():
		rl := r.left
		return mknode(mknode(l, v, rl.left, black), rl.value, rbalReverse(rl.right, r.value, r.right.painted(red)), red)
	}
	assertThat(false, "red-black: unbalanced right sibling %v for %v", r, v)
	return nil
}

// rbalS builds a node from a right subtree r having a black deficit of one
// relative to l.
func rbalS[T any](l *node[T], v T, r *node[T]) *node[T] {
	switch {
	case r.isRed():
		return mknode(l, v, r.painted(black), red)
	case l.isBlack():
		return lbal(l.painted(red), v, r)
	case l.isRed() && l.right.isBlack():
		lr := l.right
		return mknode(lbal(l.left.painted(red), l.value, lr.left), lr.value, mknode(lr.right, v, r, black), red)
	}
	assertThat(false, "red-black: unbalanced left sibling %v for %v", l, v)
	return nil
}

// lbal builds a black node, flattening a double-red shape in l.
func lbal[T any](l *node[T], v T, r *node[T]) *node[T] {
	switch {
	case doubleRed(l, toLeft):
		return restructure(l.left.left, l.left.value, l.left.right, l.value, l.right, v, r)
	case doubleRed(l, toRight):
		return restructure(l.left, l.value, l.right.left, l.right.value, l.right.right, v, r)
	}
	return mknode(l, v, r, black)
}

// rbalReverse builds a black node, flattening a double-red shape in r. The
// right-right shape is checked first.
func rbalReverse[T any](l *node[T], v T, r *node[T]) *node[T] {
	switch {
	case doubleRed(r, toRight):
		return restructure(l, v, r.left, r.value, r.right.left, r.right.value, r.right.right)
	case doubleRed(r, toLeft):
		return restructure(l, v, r.left.left, r.left.value, r.left.right, r.value, r.right)
	}
	return mknode(l, v, r, black)
}
