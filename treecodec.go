package huffman

import (
	"fmt"
)

const (
	internalMarker = '0'
	leafMarker     = '1'
)

// maxTreeDepth bounds the depth of a deserialized tree.  A tree over at most
// NumSymbols leaves cannot be deeper than this.
const maxTreeDepth = NumSymbols - 1

// SerializeTree writes the shape of the tree rooted at root in prefix form:
// '1' plus eight bits of symbol for each leaf, '0' for each internal node
// followed by its left subtree and then its right subtree.
func SerializeTree(root *Node) string {
	return string(serializeNode(root))
}

func serializeNode(n *Node) []byte {
	if n.IsLeaf() {
		out := make([]byte, 0, 1+symbolBits)
		out = append(out, leafMarker)
		out = append(out, formatSymbol(n.Symbol)...)
		return out
	}
	left := serializeNode(n.Left)
	right := serializeNode(n.Right)
	out := make([]byte, 0, 1+len(left)+len(right))
	out = append(out, internalMarker)
	out = append(out, left...)
	out = append(out, right...)
	return out
}

// DeserializeTree rebuilds a tree from the front of s, which must begin with
// the output of SerializeTree.  It returns the root and the number of
// characters of s that belong to the tree.  All weights in the returned tree
// are UnknownWeight.
func DeserializeTree(s string) (*Node, int, error) {
	c := &cursor{input: s}
	root, err := readNode(c, 0)
	if err != nil {
		return nil, 0, err
	}
	return root, c.pos, nil
}

// readNode consumes exactly one subtree from c.  The left and right
// recursive calls share c, so the right subtree starts wherever the left
// one ended.
func readNode(c *cursor, depth int) (*Node, error) {
	offset := c.pos
	marker, ok := c.next()
	if !ok {
		return nil, fmt.Errorf("%w: expected node marker at offset %d, got end of input", ErrMalformedTree, offset)
	}

	switch marker {
	case leafMarker:
		var sym Symbol
		for i := 0; i < symbolBits; i++ {
			bitOffset := c.pos
			ch, ok := c.next()
			if !ok {
				return nil, fmt.Errorf("%w: leaf at offset %d ends after %d of %d symbol bits", ErrMalformedTree, offset, i, symbolBits)
			}
			if ch != '0' && ch != '1' {
				return nil, fmt.Errorf("%w: invalid symbol bit %q at offset %d", ErrMalformedTree, ch, bitOffset)
			}
			sym = (sym << 1) | Symbol(ch-'0')
		}
		return NewLeaf(sym, UnknownWeight), nil

	case internalMarker:
		if depth >= maxTreeDepth {
			return nil, fmt.Errorf("%w: internal node at offset %d exceeds maximum depth %d", ErrMalformedTree, offset, maxTreeDepth)
		}
		left, err := readNode(c, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := readNode(c, depth+1)
		if err != nil {
			return nil, err
		}
		return NewInternal(left, right, UnknownWeight), nil

	default:
		return nil, fmt.Errorf("%w: invalid node marker %q at offset %d", ErrMalformedTree, marker, offset)
	}
}

// type cursor {{{

// cursor is a read position within a transportable string.
type cursor struct {
	input string
	pos   int
}

func (c *cursor) next() (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	ch := c.input[c.pos]
	c.pos++
	return ch, true
}

func (c *cursor) peek() (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

func (c *cursor) remaining() int {
	return len(c.input) - c.pos
}

// }}}
