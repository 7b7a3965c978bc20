package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// fieldSeparator delimits the tree, the symbol count, and the code bits.
const fieldSeparator = ' '

// Encode builds a Huffman code for text and returns the transportable
// string: the serialized tree, a space, the decimal length of text, a
// space, and the Code of every byte of text in order.
func Encode(text []byte) (string, error) {
	var e Encoder
	if err := e.Init(text); err != nil {
		return "", err
	}
	return e.Encode(text)
}

// EncodeString is a convenience wrapper around Encode.
func EncodeString(text string) (string, error) {
	return Encode([]byte(text))
}

// Encoder holds the Huffman code built for one input.
type Encoder struct {
	root  *Node
	tree  string
	table CodeTable
}

// Init initializes this Encoder with the code tree for text.
func (e *Encoder) Init(text []byte) error {
	leaves, err := CountFrequencies(text)
	if err != nil {
		return err
	}

	root := BuildTree(leaves)

	*e = Encoder{
		root:  root,
		tree:  SerializeTree(root),
		table: BuildCodeTable(root),
	}
	return nil
}

// Tree returns the root of the code tree.
func (e *Encoder) Tree() *Node {
	return e.root
}

// CodeTable returns the per-symbol codes of the code tree.
func (e *Encoder) CodeTable() *CodeTable {
	return &e.table
}

// Encode encodes text using the code tree built by Init.  Every byte of text
// must have appeared in the input given to Init.
func (e *Encoder) Encode(text []byte) (string, error) {
	assert.Assertf(e.root != nil, "Encoder.Encode called before Encoder.Init")
	if len(text) == 0 {
		return "", ErrEmptyInput
	}

	count := strconv.Itoa(len(text))

	numBits := 0
	for _, ch := range text {
		hc, ok := e.table.Lookup(Symbol(ch))
		if !ok {
			return "", fmt.Errorf("%w: symbol %d", ErrUnknownSymbol, ch)
		}
		numBits += hc.Size()
	}

	var buf strings.Builder
	buf.Grow(len(e.tree) + 1 + len(count) + 1 + numBits)
	buf.WriteString(e.tree)
	buf.WriteByte(fieldSeparator)
	buf.WriteString(count)
	buf.WriteByte(fieldSeparator)
	for _, ch := range text {
		hc, _ := e.table.Lookup(Symbol(ch))
		buf.WriteString(string(hc))
	}
	return buf.String(), nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	if e.root != nil {
		fmt.Fprintf(&buf, "\tTree() = %s\n", e.root)
		fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.table.MinSize())
		fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.table.MaxSize())
		for symbol := 0; symbol < NumSymbols; symbol++ {
			if hc, ok := e.table.Lookup(Symbol(symbol)); ok {
				fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
			}
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
