package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
)

// BitWriter is a sink of single bits.  *bitio.Writer from
// github.com/icza/bitio satisfies this interface.
type BitWriter interface {
	WriteBool(bit bool) error
}

// CodeTable maps every symbol of a Huffman tree to its codeword.
type CodeTable map[Symbol]Code

// Symbols returns the symbols of this table in ascending order.
func (t CodeTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(t))
	for symbol := range t {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// SymbolsByCode returns the symbols of this table ordered by their codes:
// shorter codes first, and codes of equal length in lexical order.
func (t CodeTable) SymbolsByCode() []Symbol {
	out := t.Symbols()
	sort.SliceStable(out, func(i, j int) bool {
		return compareCodes(t[out[i]], t[out[j]]) < 0
	})
	return out
}

// MinSize is the bit length of the shortest code.
func (t CodeTable) MinSize() int {
	var lo int
	first := true
	for _, hc := range t {
		if first || hc.size < lo {
			lo = hc.size
			first = false
		}
	}
	return lo
}

// MaxSize is the bit length of the longest code.
func (t CodeTable) MaxSize() int {
	var hi int
	for _, hc := range t {
		if hc.size > hi {
			hi = hc.size
		}
	}
	return hi
}

// WeightedLength returns the sum of Count × code length over freqs, which
// is the number of bits needed to encode a message with those frequencies.
func (t CodeTable) WeightedLength(freqs []Frequency) (int64, error) {
	var total int64
	for _, f := range freqs {
		hc, found := t[f.Symbol]
		if !found {
			return 0, fmt.Errorf("symbol %d has no Huffman code", f.Symbol)
		}
		if f.Count < 0 {
			return 0, fmt.Errorf("symbol %d has negative count %d", f.Symbol, f.Count)
		}
		size := int64(hc.size)
		if size != 0 && f.Count > math.MaxInt64/size {
			return 0, fmt.Errorf("weighted length overflows int64 at symbol %d", f.Symbol)
		}
		bits := f.Count * size
		if total > math.MaxInt64-bits {
			return 0, fmt.Errorf("weighted length overflows int64 at symbol %d", f.Symbol)
		}
		total += bits
	}
	return total, nil
}

// Encode writes the codes of symbols to w, first bit first, and returns the
// number of bits written.
func (t CodeTable) Encode(w BitWriter, symbols []Symbol) (int64, error) {
	var n int64
	for _, symbol := range symbols {
		hc, found := t[symbol]
		if !found {
			return n, fmt.Errorf("symbol %d has no Huffman code", symbol)
		}
		for i := 0; i < hc.size; i++ {
			if err := w.WriteBool(hc.Bit(i) == 1); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

// Dump writes a programmer-readable debugging dump of this table to the
// given writer.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.MaxSize())
	for _, symbol := range t.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, t[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
