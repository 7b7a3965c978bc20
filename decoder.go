package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Decode reverses Encode, returning the original bytes.
func Decode(s string) ([]byte, error) {
	c := &cursor{input: s}

	root, err := readNode(c, 0)
	if err != nil {
		return nil, err
	}

	if err := expectSeparator(c); err != nil {
		return nil, err
	}

	n, err := readCount(c)
	if err != nil {
		return nil, err
	}

	d := Decoder{root: root}
	return d.decode(c, n)
}

// DecodeString is a convenience wrapper around Decode.
func DecodeString(s string) (string, error) {
	out, err := Decode(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func expectSeparator(c *cursor) error {
	offset := c.pos
	ch, ok := c.next()
	if !ok {
		return fmt.Errorf("%w: expected separator at offset %d, got end of input", ErrMalformedCount, offset)
	}
	if ch != fieldSeparator {
		return fmt.Errorf("%w: expected separator at offset %d, got %q", ErrMalformedCount, offset, ch)
	}
	return nil
}

// readCount consumes a run of decimal digits and the separator after it.
func readCount(c *cursor) (int, error) {
	start := c.pos
	for {
		ch, ok := c.peek()
		if !ok || ch < '0' || ch > '9' {
			break
		}
		c.pos++
	}
	digits := c.input[start:c.pos]
	if len(digits) == 0 {
		return 0, fmt.Errorf("%w: no digits at offset %d", ErrMalformedCount, start)
	}
	if err := expectSeparator(c); err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q at offset %d: %v", ErrMalformedCount, digits, start, err)
	}
	return n, nil
}

// MaxDecodedLen is the largest symbol count Decode accepts.
const MaxDecodedLen = 1 << 30

// Decoder walks a code tree to turn code bits back into symbols.
type Decoder struct {
	root *Node
}

// Init initializes this Decoder from a serialized tree, as produced by
// SerializeTree.  The whole of tree must be consumed.
func (d *Decoder) Init(tree string) error {
	root, n, err := DeserializeTree(tree)
	if err != nil {
		return err
	}
	if n != len(tree) {
		return fmt.Errorf("%w: %d unexpected characters after tree at offset %d", ErrMalformedTree, len(tree)-n, n)
	}
	*d = Decoder{root: root}
	return nil
}

// Tree returns the root of the code tree.
func (d *Decoder) Tree() *Node {
	return d.root
}

// Decode decodes exactly count symbols from bits, which must hold nothing
// but their codes.
func (d *Decoder) Decode(count int, bits string) ([]byte, error) {
	return d.decode(&cursor{input: bits}, count)
}

func (d *Decoder) decode(c *cursor, count int) ([]byte, error) {
	assert.Assertf(d.root != nil, "Decoder.Decode called before Decoder.Init")
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrMalformedCount, count)
	}
	if count > MaxDecodedLen {
		return nil, fmt.Errorf("%w: count %d exceeds maximum %d", ErrMalformedCount, count, MaxDecodedLen)
	}

	if d.root.IsLeaf() {
		if c.remaining() != 0 {
			return nil, fmt.Errorf("%w: %d unexpected characters at offset %d", ErrMalformedBitstream, c.remaining(), c.pos)
		}
		return bytes.Repeat([]byte{byte(d.root.Symbol)}, count), nil
	}

	// Every symbol of a tree with two or more leaves takes at least one bit.
	if count > c.remaining() {
		return nil, fmt.Errorf("%w: %d symbols need at least %d bits, have %d", ErrTruncatedStream, count, count, c.remaining())
	}

	out := make([]byte, 0, count)
	for i := 0; i < count; i++ {
		n := d.root
		for !n.IsLeaf() {
			offset := c.pos
			ch, ok := c.next()
			if !ok {
				return nil, fmt.Errorf("%w: ended at offset %d after %d of %d symbols", ErrTruncatedStream, offset, i, count)
			}
			switch ch {
			case '0':
				n = n.Left
			case '1':
				n = n.Right
			default:
				return nil, fmt.Errorf("%w: invalid bit %q at offset %d", ErrMalformedBitstream, ch, offset)
			}
		}
		out = append(out, byte(n.Symbol))
	}

	if c.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d unexpected characters at offset %d", ErrMalformedBitstream, c.remaining(), c.pos)
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	if d.root != nil {
		fmt.Fprintf(&buf, "\tTree() = %s\n", d.root)
		table := BuildCodeTable(d.root)
		for symbol := 0; symbol < NumSymbols; symbol++ {
			if hc, ok := table.Lookup(Symbol(symbol)); ok {
				fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, symbol)
			}
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
