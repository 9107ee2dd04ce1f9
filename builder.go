package hufftree

import (
	"fmt"
	"math"
)

// BuildTree builds a Huffman tree from the given frequency table and returns
// its root.
//
// The table must be non-empty, every Count must be at least 1, every Symbol
// must be non-negative, and no Symbol may appear twice.  Violations are
// reported as errors wrapping ErrInvalidInput, before any node is created.
//
// A table with exactly one entry yields a single *Leaf as the root.  Any
// larger table yields an *Internal root of a full binary tree with
// len(freqs) leaves and len(freqs)-1 internal nodes.
//
func BuildTree(freqs []Frequency) (Node, error) {
	if err := validate(freqs); err != nil {
		return nil, err
	}

	// Step 1: build a min-heap of leaves, numbered in input order.

	q := newNodeQueue(len(freqs))
	for _, f := range freqs {
		q.Add(newLeaf(f.Symbol, f.Count))
	}
	q.Init()

	// Step 2: process the min-heap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// min-heap.  The first node popped becomes the left child.

	for q.Len() > 1 {
		left := q.ExtractMin()
		right := q.ExtractMin()
		q.Insert(newInternal(left, right))
	}

	// Step 3: the last remaining node is the root.

	return q.ExtractMin(), nil
}

func validate(freqs []Frequency) error {
	if len(freqs) == 0 {
		return fmt.Errorf("%w: no symbols", ErrInvalidInput)
	}

	seen := make(map[Symbol]int, len(freqs))
	var total int64
	for index, f := range freqs {
		if f.Symbol < 0 {
			return fmt.Errorf("%w: entry %d: negative symbol %d", ErrInvalidInput, index, f.Symbol)
		}
		if f.Count <= 0 {
			return fmt.Errorf("%w: entry %d: symbol %d has count %d, must be at least 1", ErrInvalidInput, index, f.Symbol, f.Count)
		}
		if prev, found := seen[f.Symbol]; found {
			return fmt.Errorf("%w: entry %d: duplicate symbol %d (first seen at entry %d)", ErrInvalidInput, index, f.Symbol, prev)
		}
		seen[f.Symbol] = index

		// the root frequency is the sum of all counts
		if total > math.MaxInt64-f.Count {
			return fmt.Errorf("%w: total frequency overflows int64 at entry %d", ErrInvalidInput, index)
		}
		total += f.Count
	}
	return nil
}
