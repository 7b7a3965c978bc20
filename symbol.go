package huffman

import (
	"fmt"
	"math"
)

// Symbol represents one byte of input.
type Symbol byte

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxUint8)

// NumSymbols is the size of the alphabet.
const NumSymbols = int(MaxSymbol) + 1

// UnknownWeight is the weight assigned to nodes rebuilt by DeserializeTree.
// Weights are not part of the wire format and are never consulted after
// decoding.
const UnknownWeight = -1

// symbolBits is the number of characters used to write a Symbol in a
// serialized tree.
const symbolBits = 8

func formatSymbol(sym Symbol) string {
	return fmt.Sprintf("%08b", byte(sym))
}
