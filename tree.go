package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// BuildTree merges leaves into a Huffman code tree and returns its root.
//
// The two lightest nodes are repeatedly popped and joined under a new
// internal node, the first popped becoming the left child.  Nodes of equal
// weight pop in creation order: leaves in the order given, then merged nodes
// in the order they were made.  A single leaf is returned as-is.
//
func BuildTree(leaves []*Node) *Node {
	assert.Assertf(len(leaves) != 0, "BuildTree requires at least one leaf")

	nodes := make([]*Node, len(leaves))
	for index, leaf := range leaves {
		leaf.seq = index
		nodes[index] = leaf
	}
	nextSeq := len(leaves)

	// Step 1: build a minheap.

	h := nodeHeap{nodes}
	h.Init()

	// Step 2: pop two, push their parent, until only the root remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)

		parent := NewInternal(a, b, a.Weight+b.Weight)
		parent.seq = nextSeq
		nextSeq++
		heap.Push(&h, parent)
	}

	return heap.Pop(&h).(*Node)
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
