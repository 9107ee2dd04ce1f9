package hufftree

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/icza/bitio"
)

type bitSlice struct {
	bits []bool
}

func (s *bitSlice) ReadBool() (bool, error) {
	if len(s.bits) == 0 {
		return false, io.EOF
	}
	bit := s.bits[0]
	s.bits = s.bits[1:]
	return bit, nil
}

func roundTrip(t *testing.T, freqs []Frequency, message []Symbol) []Symbol {
	t.Helper()

	root := mustBuildTree(t, freqs)
	table := ExtractCodes(root)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	n, err := table.Encode(w, message)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if expect := (n + 7) / 8; int64(buf.Len()) != expect {
		t.Errorf("expected %d bytes for %d bits, got %d", expect, n, buf.Len())
	}

	r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	decoded, err := DecodeAll(root, r, len(message))
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	return decoded
}

func TestDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, n := range []int{1, 2, 3, 17, 256} {
		freqs := randomFrequencies(rng, n, 100)
		message := make([]Symbol, 0, 1000)
		for len(message) < cap(message) {
			message = append(message, freqs[rng.Intn(n)].Symbol)
		}

		decoded := roundTrip(t, freqs, message)
		if len(decoded) != len(message) {
			t.Fatalf("n=%d: expected %d symbols, got %d", n, len(message), len(decoded))
		}
		for i := range message {
			if message[i] != decoded[i] {
				t.Errorf("n=%d: index %d: expect %d, actual %d", n, i, message[i], decoded[i])
				break
			}
		}
	}
}

func TestDecode_Textbook(t *testing.T) {
	root := mustBuildTree(t, textbookFrequencies())

	// "fade" = 0 1100 101 111
	r := &bitSlice{bits: []bool{false, true, true, false, false, true, false, true, true, true, true}}
	decoded, err := DecodeAll(root, r, 4)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	if actual := symbolsToString(decoded); actual != "fade" {
		t.Errorf("expected \"fade\", got %q", actual)
	}

	if _, err := Decode(root, r); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after last symbol, got %v", err)
	}
}

func TestDecode_Truncated(t *testing.T) {
	root := mustBuildTree(t, textbookFrequencies())

	r := &bitSlice{bits: []bool{true, true}}
	symbol, err := Decode(root, r)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if symbol != InvalidSymbol {
		t.Errorf("expected InvalidSymbol, got %d", symbol)
	}
}

func TestDecode_SingleSymbol(t *testing.T) {
	root := mustBuildTree(t, []Frequency{{'q', 3}})

	r := &bitSlice{bits: []bool{false, false, true}}
	decoded, err := DecodeAll(root, r, 2)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	if actual := symbolsToString(decoded); actual != "qq" {
		t.Errorf("expected \"qq\", got %q", actual)
	}

	if _, err := Decode(root, r); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode, got %v", err)
	}
}

func TestDecodeAll_NegativeCount(t *testing.T) {
	root := mustBuildTree(t, textbookFrequencies())

	decoded, err := DecodeAll(root, &bitSlice{bits: []bool{false}}, -1)
	if err == nil {
		t.Errorf("expected error for negative count, got %v", decoded)
	}
	if decoded != nil {
		t.Errorf("expected no symbols, got %v", decoded)
	}
}

func TestCodeTable_EncodeUnknownSymbol(t *testing.T) {
	table := ExtractCodes(mustBuildTree(t, textbookFrequencies()))

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	n, err := table.Encode(w, []Symbol{'f', 'z'})
	if err == nil {
		t.Errorf("expected error for unknown symbol")
	}
	if n != 1 {
		t.Errorf("expected 1 bit written before the error, got %d", n)
	}
}

func symbolsToString(symbols []Symbol) string {
	out := make([]byte, len(symbols))
	for i, symbol := range symbols {
		out[i] = byte(symbol)
	}
	return string(out)
}
