// Package report renders a Huffman code table for people and programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/hufftree"
	"github.com/chronos-tachyon/hufftree/internal/frequency"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Order selects the order of entries.
type Order string

const (
	OrderSymbol Order = "symbol"
	OrderCount  Order = "count"
	OrderCode   Order = "code"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text or json)", s)
	}
}

// ParseOrder validates an order name.
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(s)); o {
	case OrderSymbol, OrderCount, OrderCode:
		return o, nil
	default:
		return "", fmt.Errorf("unknown order %q (expected symbol, count or code)", s)
	}
}

// Entry is one row of a Report.
type Entry struct {
	Symbol hufftree.Symbol `json:"symbol"`
	Count  int64           `json:"count"`
	Code   hufftree.Code   `json:"code"`
}

// Report summarizes the Huffman code of one input.
type Report struct {
	Source      string  `json:"source,omitempty"`
	TotalBytes  int64   `json:"total_bytes"`
	Symbols     int     `json:"symbols"`
	LongestCode int     `json:"longest_code"`
	EncodedBits int64   `json:"encoded_bits"`
	Huff0Bytes  int     `json:"huff0_bytes,omitempty"`
	Entries     []Entry `json:"entries"`
}

// Build assembles a Report from a frequency table and its code table,
// ordering entries as requested.
func Build(source string, freqs []hufftree.Frequency, root hufftree.Node, table hufftree.CodeTable, order Order) (Report, error) {
	bits, err := table.WeightedLength(freqs)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Source:      source,
		TotalBytes:  root.Freq(),
		Symbols:     len(table),
		LongestCode: table.MaxSize(),
		EncodedBits: bits,
		Entries:     make([]Entry, 0, len(freqs)),
	}

	if order == OrderCount {
		sorted := make([]hufftree.Frequency, len(freqs))
		copy(sorted, freqs)
		frequency.SortByCount(sorted)
		freqs = sorted
	}
	for _, f := range freqs {
		r.Entries = append(r.Entries, Entry{Symbol: f.Symbol, Count: f.Count, Code: table[f.Symbol]})
	}

	switch order {
	case OrderSymbol:
		sort.SliceStable(r.Entries, func(i, j int) bool {
			return r.Entries[i].Symbol < r.Entries[j].Symbol
		})
	case OrderCode:
		sort.SliceStable(r.Entries, func(i, j int) bool {
			a, b := r.Entries[i], r.Entries[j]
			if a.Code.Size() != b.Code.Size() {
				return a.Code.Size() < b.Code.Size()
			}
			if ad, bd := a.Code.Digits(), b.Code.Digits(); ad != bd {
				return ad < bd
			}
			return a.Symbol < b.Symbol
		})
	}
	return r, nil
}

// Empty returns the Report of an input with no bytes, which has no Huffman
// tree.
func Empty(source string) Report {
	return Report{Source: source, Entries: []Entry{}}
}

// Write renders r to w in the given format.
func Write(w io.Writer, r Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatText:
		return writeText(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, r Report) error {
	var sb strings.Builder
	for _, e := range r.Entries {
		fmt.Fprintf(&sb, "%s: %s\n", SymbolLabel(e.Symbol), e.Code.Digits())
	}
	if r.Source != "" {
		fmt.Fprintf(&sb, "# source: %s\n", r.Source)
	}
	fmt.Fprintf(&sb, "# %d bytes, %d symbols, longest code %d bits\n", r.TotalBytes, r.Symbols, r.LongestCode)
	fmt.Fprintf(&sb, "# encoded size: %d bits (%d bytes)\n", r.EncodedBits, (r.EncodedBits+7)/8)
	if r.Huff0Bytes > 0 {
		fmt.Fprintf(&sb, "# huff0 reference size: %d bytes\n", r.Huff0Bytes)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// SymbolLabel returns a printable label for a byte symbol: the character
// itself when it is printable ASCII, or a quoted escape otherwise.
func SymbolLabel(symbol hufftree.Symbol) string {
	if symbol > 0x20 && symbol < 0x7f && symbol != '\'' && symbol != '\\' {
		return string(rune(symbol))
	}
	if symbol >= 0 && symbol <= 0xff {
		return strconv.QuoteRuneToASCII(rune(symbol))
	}
	return strconv.FormatInt(int64(symbol), 10)
}
