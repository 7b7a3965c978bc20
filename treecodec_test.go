package huffman

import (
	"errors"
	"testing"
)

func TestSerializeTree(t *testing.T) {
	type testRow struct {
		name   string
		root   *Node
		expect string
	}

	testData := [...]testRow{
		{name: "nul-leaf", root: NewLeaf(0, 1), expect: "100000000"},
		{name: "max-leaf", root: NewLeaf(MaxSymbol, 1), expect: "111111111"},
		{name: "low-bits-zero", root: NewLeaf(0x80, 1), expect: "110000000"},
		{
			name:   "internal",
			root:   NewInternal(NewLeaf('a', 1), NewInternal(NewLeaf('b', 1), NewLeaf('c', 1), 2), 3),
			expect: "0" + "101100001" + "0" + "101100010" + "101100011",
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := SerializeTree(row.root)
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestDeserializeTree(t *testing.T) {
	// The left subtree must leave the cursor where the right subtree starts.
	input := "0" + "0" + "101100001" + "101100010" + "101100011" + " 3 "

	root, n, err := DeserializeTree(input)
	if err != nil {
		t.Fatalf("DeserializeTree failed: %v", err)
	}
	if expect := len(input) - len(" 3 "); n != expect {
		t.Errorf("wrong consumed length: expected %d, got %d", expect, n)
	}
	if expect, actual := "((97 98) 99)", root.String(); expect != actual {
		t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if root.Weight != UnknownWeight || root.Left.Left.Weight != UnknownWeight {
		t.Errorf("expected UnknownWeight throughout, got %d and %d", root.Weight, root.Left.Left.Weight)
	}
}

func TestDeserializeTree_EverySymbol(t *testing.T) {
	for symbol := 0; symbol < NumSymbols; symbol++ {
		s := SerializeTree(NewLeaf(Symbol(symbol), 1))
		if len(s) != 1+symbolBits {
			t.Errorf("symbol %d: wrong serialized length %d", symbol, len(s))
		}
		root, n, err := DeserializeTree(s)
		if err != nil {
			t.Fatalf("symbol %d: DeserializeTree failed: %v", symbol, err)
		}
		if n != len(s) || !root.IsLeaf() || root.Symbol != Symbol(symbol) {
			t.Errorf("symbol %d: got %s after %d characters", symbol, root, n)
		}
	}
}

func TestDeserializeTree_Errors(t *testing.T) {
	inputs := []string{
		"",
		"0",
		"01011000011",
		"10110000",
		"x",
		"1011000a1",
	}
	for _, input := range inputs {
		root, _, err := DeserializeTree(input)
		if !errors.Is(err, ErrMalformedTree) {
			t.Errorf("%q: expected ErrMalformedTree, got %v", input, err)
		}
		if root != nil {
			t.Errorf("%q: expected no tree, got %s", input, root)
		}
	}
}
