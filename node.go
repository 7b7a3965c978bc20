package huffman

import (
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is one node of a Huffman code tree.  A leaf carries a Symbol and no
// children; an internal node carries exactly two children and no Symbol.
type Node struct {
	// Symbol is meaningful only for leaves.
	Symbol Symbol

	// Weight is the occurrence count of a leaf, or the sum of the children's
	// weights for an internal node.  Trees rebuilt by DeserializeTree carry
	// UnknownWeight throughout.
	Weight int

	Left  *Node
	Right *Node

	// seq orders nodes of equal weight while the tree is being built.
	seq int
}

// NewLeaf constructs a leaf node.
func NewLeaf(sym Symbol, weight int) *Node {
	return &Node{Symbol: sym, Weight: weight}
}

// NewInternal constructs an internal node owning left and right.
func NewInternal(left, right *Node, weight int) *Node {
	assert.Assertf(left != nil && right != nil, "internal node requires two children: hasLeft=%t hasRight=%t", left != nil, right != nil)
	return &Node{Weight: weight, Left: left, Right: right}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// NumLeaves returns the number of leaves in the subtree rooted at n.
func (n *Node) NumLeaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.Left.NumLeaves() + n.Right.NumLeaves()
}

// Depth returns the length of the longest root-to-leaf path.  A lone leaf
// has depth 0.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if l < r {
		l = r
	}
	return l + 1
}

// String returns a compact representation of the tree shape, e.g.
// "(97 (98 99))".  Leaves are written as decimal symbol values.
func (n *Node) String() string {
	var buf strings.Builder
	n.writeTo(&buf)
	return buf.String()
}

func (n *Node) writeTo(buf *strings.Builder) {
	if n.IsLeaf() {
		buf.WriteString(strconv.FormatUint(uint64(n.Symbol), 10))
		return
	}
	buf.WriteByte('(')
	n.Left.writeTo(buf)
	buf.WriteByte(' ')
	n.Right.writeTo(buf)
	buf.WriteByte(')')
}
