package bst

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// String renders tree as an indented outline, one node per line.
// Empty subtrees of inner nodes are printed as ⊥. Red-black trees show node
// colors, AVL trees cached heights.
func (tree Tree[T]) String() string {
	header := fmt.Sprintf("Tree(%s, size=%d, height=%d)", tree.balancing, tree.Size(), tree.Height())
	printer := tp.NewWithRoot(header)
	ppt(printer, tree.root, tree.balancing)
	return printer.String()
}

func ppt[T any](p tp.Tree, n *node[T], b Balancing) {
	if n == nil {
		p.AddNode("⊥")
		return
	}
	label := n.String()
	switch b {
	case RedBlack:
		label = fmt.Sprintf("%s %v", label, n.color)
	case AVL:
		label = fmt.Sprintf("%s h=%d", label, n.height)
	}
	if n.isLeaf() {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	ppt(branch, n.left, b)
	ppt(branch, n.right, b)
}
