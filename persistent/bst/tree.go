package bst

import (
	"fmt"

	"github.com/npillmayer/immutree"
	"github.com/npillmayer/immutree/maybe"
	"github.com/npillmayer/immutree/persistent/list"
	"golang.org/x/exp/constraints"
)

// Balancing selects the strategy a tree uses to keep itself balanced.
type Balancing uint8

const (
	AVL        Balancing = iota // height-balanced (default)
	RedBlack                    // color-balanced
	Unbalanced                  // no balancing at all
)

func (b Balancing) String() string {
	switch b {
	case AVL:
		return "avl"
	case RedBlack:
		return "redblack"
	case Unbalanced:
		return "unbalanced"
	}
	return fmt.Sprintf("Balancing(%d)", uint8(b))
}

// ParseBalancing returns the balancing strategy for one of the names
// "avl", "redblack" or "unbalanced".
func ParseBalancing(name string) (Balancing, error) {
	for _, b := range []Balancing{AVL, RedBlack, Unbalanced} {
		if b.String() == name {
			return b, nil
		}
	}
	return AVL, fmt.Errorf("unknown balancing strategy %q", name)
}

// Tree is a persistent binary search tree holding unique values of type T.
// Trees are values; copying a tree is cheap and creates another handle to the
// same immutable nodes.
//
// A comparator is mandatory, therefore trees have to be created with Immutable
// or Ordered. The zero value Tree[T]{} will fault on insertion.
type Tree[T any] struct {
	root *node[T]
	cmp  immutree.Comparator[T]
	props
}

type props struct {
	balancing Balancing
}

// Option is a type to help initializing trees at creation time.
type Option func(props) props

// WithBalancing is an option to select a balancing strategy. Default is AVL.
//
// Use it like this:
//
//     tree := bst.Immutable(cmp, bst.WithBalancing(bst.RedBlack))
//
func WithBalancing(b Balancing) Option {
	return func(p props) props {
		p.balancing = b
		return p
	}
}

// Immutable creates an empty tree ordered by cmp.
//
//     tree := bst.Immutable(immutree.Ordered[string]())
//     tree = tree.With("Galaxy")
//     found := tree.Contains("Galaxy")   // returns true
//
func Immutable[T any](cmp immutree.Comparator[T], opts ...Option) Tree[T] {
	assertThat(cmp != nil, "tree requires a comparator")
	tree := Tree[T]{cmp: cmp}
	for _, option := range opts {
		tree.props = option(tree.props)
	}
	return tree
}

// Ordered creates an empty tree using the natural ordering of T.
func Ordered[T constraints.Ordered](opts ...Option) Tree[T] {
	return Immutable(immutree.Ordered[T](), opts...)
}

// --- API -------------------------------------------------------------------

// Balancing returns the balancing strategy of tree.
func (tree Tree[T]) Balancing() Balancing {
	return tree.balancing
}

// Empty returns an empty tree with the same ordering and balancing as tree.
func (tree Tree[T]) Empty() Tree[T] {
	tree.root = nil
	return tree
}

// IsEmpty is a predicate: does tree contain no values?
func (tree Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Identical is a predicate: do tree and other share the same root? Identical
// trees are equal, but equal trees need not be identical.
func (tree Tree[T]) Identical(other Tree[T]) bool {
	return tree.root == other.root
}

// With returns a copy of tree with value inserted. If value is already present,
// tree itself is returned, sharing the identical root.
func (tree Tree[T]) With(value T) Tree[T] {
	assertThat(tree.cmp != nil, "tree without comparator; use Immutable(…) to create trees")
	switch tree.balancing {
	case AVL:
		tree.root = avlInsert(tree.root, value, tree.cmp)
	case RedBlack:
		tree.root = rbInsert(tree.root, value, tree.cmp)
	default:
		tree.root = plainInsert(tree.root, value, tree.cmp)
	}
	return tree
}

// WithDeleted returns a copy of tree with value removed. If value is not present,
// tree itself is returned, sharing the identical root.
func (tree Tree[T]) WithDeleted(value T) Tree[T] {
	if tree.root == nil {
		return tree
	}
	assertThat(tree.cmp != nil, "tree without comparator; use Immutable(…) to create trees")
	switch tree.balancing {
	case AVL:
		tree.root = avlRemove(tree.root, value, tree.cmp)
	case RedBlack:
		tree.root = rbRemove(tree.root, value, tree.cmp)
	default:
		tree.root = plainRemove(tree.root, value, tree.cmp)
	}
	return tree
}

// Contains is a predicate: is value present in tree? O(height).
func (tree Tree[T]) Contains(value T) bool {
	if tree.root == nil {
		return false
	}
	return contains(tree.root, value, tree.cmp)
}

// Size returns the number of values in tree. O(n).
func (tree Tree[T]) Size() int {
	return size(tree.root)
}

// Height returns the number of nodes on the longest path from the root to an
// empty subtree. The height of an empty tree is 0.
func (tree Tree[T]) Height() int {
	return tree.root.h()
}

// BlackHeight returns the number of black nodes on the longest path from the root
// to an empty subtree, counting the empty subtree itself. It is meaningful for
// red-black trees only, where all such paths have the same black-height.
func (tree Tree[T]) BlackHeight() int {
	return blackHeight(tree.root)
}

// ToList returns the values of tree as a list in strictly increasing order.
func (tree Tree[T]) ToList() list.List[T] {
	return toList(tree.root, list.Empty[T]())
}

// Min returns the least value of tree, or Nothing for an empty tree.
func (tree Tree[T]) Min() maybe.Maybe[T] {
	if tree.root == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(minNode(tree.root).value)
}

// Max returns the greatest value of tree, or Nothing for an empty tree.
func (tree Tree[T]) Max() maybe.Maybe[T] {
	if tree.root == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(maxNode(tree.root).value)
}

// Each calls f for the values of tree in increasing order, until f returns false.
func (tree Tree[T]) Each(f func(T) bool) {
	each(tree.root, f)
}
