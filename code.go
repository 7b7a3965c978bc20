package huffman

import (
	"fmt"
	"strconv"
)

// Code is the bit-path from the root of a tree to one leaf, written as the
// characters '0' (left) and '1' (right).  The sole leaf of a one-symbol tree
// has the empty Code.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// String returns the quoted representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// CodeTable maps each Symbol present in a tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
}

// BuildCodeTable walks the tree rooted at root and records the Code of
// every leaf.
func BuildCodeTable(root *Node) CodeTable {
	var table CodeTable
	table.walk(root, make([]byte, 0, 16))
	return table
}

func (table *CodeTable) walk(n *Node, path []byte) {
	if n.IsLeaf() {
		table.codes[n.Symbol] = Code(path)
		table.present[n.Symbol] = true
		return
	}
	table.walk(n.Left, append(path, '0'))
	table.walk(n.Right, append(path, '1'))
}

// Lookup returns the Code for symbol, and false if symbol is not in the
// table.
func (table *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	return table.codes[symbol], table.present[symbol]
}

// Len returns the number of symbols in the table.
func (table *CodeTable) Len() int {
	var n int
	for _, ok := range table.present {
		if ok {
			n++
		}
	}
	return n
}

// MinSize is the bit length of the shortest Code in the table.
func (table *CodeTable) MinSize() int {
	min := -1
	for symbol, ok := range table.present {
		if size := table.codes[symbol].Size(); ok && (min < 0 || size < min) {
			min = size
		}
	}
	return min
}

// MaxSize is the bit length of the longest Code in the table.
func (table *CodeTable) MaxSize() int {
	max := -1
	for symbol, ok := range table.present {
		if size := table.codes[symbol].Size(); ok && size > max {
			max = size
		}
	}
	return max
}
