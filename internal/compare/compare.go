// Package compare measures how a Huffman code table performs on real data,
// both by packing the data with the table and by compressing it with the
// huff0 entropy coder as a reference.
package compare

import (
	"errors"
	"fmt"

	"github.com/icza/bitio"
	"github.com/klauspost/compress/huff0"

	"github.com/chronos-tachyon/hufftree"
)

// chunkSize stays below huff0's single-block input limit.
const chunkSize = 128 << 10

// Result holds the sizes of one input.
type Result struct {
	InputBytes   int
	EncodedBits  int64
	EncodedBytes int64
	Huff0Bytes   int
}

// Measure packs data with table and compresses it with huff0.
func Measure(data []byte, table hufftree.CodeTable) (Result, error) {
	bits, packed, err := PackedSize(data, table)
	if err != nil {
		return Result{}, err
	}
	ref, err := Huff0Size(data)
	if err != nil {
		return Result{}, err
	}
	return Result{
		InputBytes:   len(data),
		EncodedBits:  bits,
		EncodedBytes: packed,
		Huff0Bytes:   ref,
	}, nil
}

// PackedSize encodes every byte of data with table into a bit stream and
// returns the number of bits and the number of bytes written.
func PackedSize(data []byte, table hufftree.CodeTable) (int64, int64, error) {
	var cw countingWriter
	w := bitio.NewWriter(&cw)

	symbols := make([]hufftree.Symbol, 0, chunkSize)
	var bits int64
	for start := 0; start < len(data); start += chunkSize {
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		}
		symbols = symbols[:0]
		for _, ch := range data[start:end] {
			symbols = append(symbols, hufftree.Symbol(ch))
		}
		n, err := table.Encode(w, symbols)
		bits += n
		if err != nil {
			return bits, cw.n, fmt.Errorf("encode: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return bits, cw.n, fmt.Errorf("flush: %w", err)
	}
	return bits, cw.n, nil
}

// Huff0Size returns the number of bytes huff0 needs for data, compressing
// it in independent blocks.  Blocks huff0 declines to compress are counted
// at their raw size, and single-valued blocks at one byte.
func Huff0Size(data []byte) (int, error) {
	s := huff0.Scratch{Reuse: huff0.ReusePolicyNone}
	var total int
	for start := 0; start < len(data); start += chunkSize {
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		}
		block := data[start:end]

		out, _, err := huff0.Compress1X(block, &s)
		switch {
		case err == nil:
			total += len(out)
		case errors.Is(err, huff0.ErrIncompressible):
			total += len(block)
		case errors.Is(err, huff0.ErrUseRLE):
			total++
		default:
			return total, fmt.Errorf("huff0: %w", err)
		}
	}
	return total, nil
}

type countingWriter struct {
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}
