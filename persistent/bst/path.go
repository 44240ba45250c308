package bst

import (
	"fmt"
	"strings"

	"github.com/npillmayer/immutree"
)

/*
Remarks:
--------

Modifying operations do not recurse. They descend from the root to the point of
change, remembering each node visited together with the direction taken, and then
fold this path from the bottom up. Each fold step clones the parent with its new
child attached (copy-on-write) and lets the balancing strategy restore its
invariant at that level. The folding yields the new root.

*/

type direction int8

const (
	here    direction = 0 // value found at this node
	toLeft  direction = -1
	toRight direction = 1
)

func (d direction) String() string {
	switch d {
	case toLeft:
		return "↙"
	case toRight:
		return "↘"
	}
	return "•"
}

// --- Step ------------------------------------------------------------------

// step holds a node of a path, together with the direction to descend from it.
type step[T any] struct {
	node *node[T]
	dir  direction
}

func (s step[T]) String() string {
	return s.node.String() + s.dir.String()
}

// attach returns a copy of s.node with child linked in as the subtree s.dir
// points to.
func (s step[T]) attach(child *node[T]) *node[T] {
	assertThat(s.dir != here, "cannot attach a child to the end of a path")
	if s.dir == toLeft {
		return s.node.withLeft(child)
	}
	return s.node.withRight(child)
}

// sibling returns the subtree of s.node not on the path.
func (s step[T]) sibling() *node[T] {
	if s.dir == toLeft {
		return s.node.right
	}
	return s.node.left
}

// --- Path ------------------------------------------------------------------

type path[T any] []step[T]

func (p path[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range p {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (p path[T]) last() step[T] {
	if len(p) == 0 {
		return step[T]{}
	}
	return p[len(p)-1]
}

func (p path[T]) dropLast() path[T] {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}

// foldR applies f on pairs (parent, child), starting at the bottom-most step of
// the path. zero is passed as the child of the bottom-most call. The result of
// each call becomes the child of the call for the step above. If p is empty,
// zero is returned.
func (p path[T]) foldR(f func(step[T], *node[T]) *node[T], zero *node[T]) *node[T] {
	r := zero
	for i := len(p) - 1; i >= 0; i-- {
		r = f(p[i], r)
	}
	return r
}

// descend walks from root towards value. It returns the path of nodes visited.
// If value is present, found is true and the final step of the path holds the
// node containing value, with direction `here`. Otherwise the path ends with the
// parent of the empty subtree where value would have to be inserted.
func descend[T any](root *node[T], value T, cmp immutree.Comparator[T], buf path[T]) (p path[T], found bool) {
	p = buf[:0]
	for n := root; n != nil; {
		c := cmp(value, n.value)
		switch {
		case c < 0:
			p = append(p, step[T]{node: n, dir: toLeft})
			n = n.left
		case c > 0:
			p = append(p, step[T]{node: n, dir: toRight})
			n = n.right
		default:
			p = append(p, step[T]{node: n, dir: here})
			return p, true
		}
	}
	return p, false
}

// descendToMin extends p along the leftmost spine of n, ending at the node holding
// the minimum value of n. The final step of the result has direction `here`.
func descendToMin[T any](p path[T], n *node[T]) path[T] {
	assertNotEmpty(n, "descend to minimum")
	for ; n.left != nil; n = n.left {
		p = append(p, step[T]{node: n, dir: toLeft})
	}
	return append(p, step[T]{node: n, dir: here})
}
