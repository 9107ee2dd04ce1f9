// Package frequency tallies byte frequencies from a stream.
package frequency

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/hufftree"
)

// Table holds the number of occurrences of every byte value.
type Table [256]int64

// Count reads r to EOF and tallies every byte.
func Count(r io.Reader) (Table, error) {
	var t Table
	br := bufio.NewReader(r)
	for {
		ch, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return t, nil
			}
			return t, fmt.Errorf("count bytes: %w", err)
		}
		t[ch]++
	}
}

// Total returns the number of bytes counted.
func (t Table) Total() int64 {
	var total int64
	for _, n := range t {
		total += n
	}
	return total
}

// Frequencies returns one entry per byte value with a non-zero count, in
// ascending byte order.
func (t Table) Frequencies() []hufftree.Frequency {
	out := make([]hufftree.Frequency, 0, len(t))
	for b, n := range t {
		if n > 0 {
			out = append(out, hufftree.Frequency{Symbol: hufftree.Symbol(b), Count: n})
		}
	}
	return out
}

// SortByCount orders freqs by descending count, breaking ties by ascending
// symbol.  The slice is sorted in place.
func SortByCount(freqs []hufftree.Frequency) {
	sort.SliceStable(freqs, func(i, j int) bool {
		a, b := freqs[i], freqs[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Symbol < b.Symbol
	})
}
