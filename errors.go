package hufftree

import (
	"errors"
)

// ErrInvalidInput is wrapped by every error BuildTree returns.  The frequency
// table was empty, held a non-positive count, a negative symbol, a duplicate
// symbol, or counts whose total does not fit in an int64.
var ErrInvalidInput = errors.New("invalid frequency table")

// ErrInvalidCode is wrapped by Decode when the bit stream does not describe a
// path to a leaf of the tree.
var ErrInvalidCode = errors.New("invalid Huffman code")
