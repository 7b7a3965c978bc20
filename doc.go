// Package huffman implements a self-describing Huffman codec for byte
// strings.  The encoded form is plain ASCII: a prefix serialization of the
// code tree, the symbol count, and the code bits, all written as the
// characters '0' and '1'.
//
// Wire format, in order:
//
//     tree   := leaf | internal
//     leaf   := '1' <8 bits of the symbol, MSB first>
//     internal := '0' tree tree
//
//     message := tree ' ' <decimal count> ' ' <code bits>
//
// The tree is always written depth-first, left before right, so a decoder
// can rebuild it from the front of the message with no length prefix.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
