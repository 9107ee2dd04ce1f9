package hufftree

import (
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// BitReader is a source of single bits.  *bitio.Reader from
// github.com/icza/bitio satisfies this interface.
type BitReader interface {
	ReadBool() (bool, error)
}

// Decode reads one codeword from r by descending the tree rooted at root,
// going left on a 0 bit and right on a 1 bit, and returns the symbol of the
// leaf it reaches.
//
// If r is exhausted before the first bit, Decode returns io.EOF.  If r is
// exhausted partway through a codeword, Decode returns io.ErrUnexpectedEOF.
// A single-leaf tree accepts only the code "0"; a 1 bit yields an error
// wrapping ErrInvalidCode.
//
func Decode(root Node, r BitReader) (Symbol, error) {
	if leaf, ok := root.(*Leaf); ok {
		bit, err := r.ReadBool()
		if err != nil {
			return InvalidSymbol, err
		}
		if bit {
			return InvalidSymbol, fmt.Errorf("%w: single-symbol tree has no code \"1\"", ErrInvalidCode)
		}
		return leaf.symbol, nil
	}

	node := root
	depth := 0
	for {
		switch x := node.(type) {
		case *Leaf:
			return x.symbol, nil
		case *Internal:
			bit, err := r.ReadBool()
			if err != nil {
				if depth != 0 && errors.Is(err, io.EOF) {
					err = io.ErrUnexpectedEOF
				}
				return InvalidSymbol, err
			}
			left, right := x.children()
			if bit {
				node = right
			} else {
				node = left
			}
			depth++
		default:
			assert.Assertf(false, "malformed Huffman tree: unknown node type %T", node)
		}
	}
}

// DecodeAll decodes exactly n symbols from r.
func DecodeAll(root Node, r BitReader, n int) ([]Symbol, error) {
	if n < 0 {
		return nil, fmt.Errorf("decode %d symbols: count must not be negative", n)
	}
	out := make([]Symbol, 0, n)
	for len(out) < n {
		symbol, err := Decode(root, r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return out, fmt.Errorf("decode symbol %d of %d: %w", len(out), n, err)
		}
		out = append(out, symbol)
	}
	return out, nil
}
