package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when asked to encode zero bytes.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrMalformedTree is returned when the serialized tree ends early or
	// contains a character other than '0' or '1'.
	ErrMalformedTree = errors.New("huffman: malformed tree")

	// ErrMalformedCount is returned when the symbol count is missing, is
	// not a decimal number, or is not delimited by spaces.
	ErrMalformedCount = errors.New("huffman: malformed symbol count")

	// ErrMalformedBitstream is returned when the code bits contain a
	// character other than '0' or '1', or continue past the last symbol.
	ErrMalformedBitstream = errors.New("huffman: malformed bitstream")

	// ErrTruncatedStream is returned when the code bits end before all
	// symbols have been decoded.
	ErrTruncatedStream = errors.New("huffman: truncated bitstream")

	// ErrUnknownSymbol is returned when Encoder.Encode meets a byte that
	// was not in the input given to Encoder.Init.
	ErrUnknownSymbol = errors.New("huffman: symbol not in code tree")
)
