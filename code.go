package hufftree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

const wordBits = 64

// Code represents a sequence of bits of any length.  Codes are immutable:
// Append returns a new Code and leaves the receiver untouched.
type Code struct {
	size  int
	words []uint64
}

// MakeCode is a convenience function that constructs a Code.  Each argument
// must be 0 or 1; the first argument is the first bit.
func MakeCode(bits ...byte) Code {
	c := Code{size: len(bits), words: make([]uint64, wordsFor(len(bits)))}
	for i, bit := range bits {
		assert.Assertf(bit <= 1, "bit %d has value %d, expected 0 or 1", i, bit)
		c.words[i/wordBits] |= uint64(bit) << (uint(i) % wordBits)
	}
	return c
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	bits := make([]byte, len(str))
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return Code{}, fmt.Errorf("failed to parse Huffman code %q: unexpected character %q at index %d", str, str[i], i)
		}
	}
	return MakeCode(bits...), nil
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return hc.size
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i int) byte {
	assert.Assertf(i >= 0 && i < hc.size, "bit index %d out of range [0, %d)", i, hc.size)
	return byte(hc.words[i/wordBits]>>(uint(i)%wordBits)) & 1
}

// Append returns a new Code consisting of this Code followed by bit.
func (hc Code) Append(bit byte) Code {
	assert.Assertf(bit <= 1, "bit has value %d, expected 0 or 1", bit)
	words := make([]uint64, wordsFor(hc.size+1))
	copy(words, hc.words)
	words[hc.size/wordBits] |= uint64(bit) << (uint(hc.size) % wordBits)
	return Code{size: hc.size + 1, words: words}
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.size > hc.size {
		return false
	}
	for i := 0; i < prefix.size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Equal reports whether both Codes hold the same bits.
func (hc Code) Equal(other Code) bool {
	return hc.size == other.size && hc.HasPrefix(other)
}

// Digits returns the bits of this Code as a string of '0' and '1'
// characters, first bit first.
func (hc Code) Digits() string {
	var sb strings.Builder
	sb.Grow(hc.size)
	for i := 0; i < hc.size; i++ {
		sb.WriteByte('0' + hc.Bit(i))
	}
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Digits())
}

// MarshalText implements encoding.TextMarshaler.
func (hc Code) MarshalText() ([]byte, error) {
	return []byte(hc.Digits()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (hc *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseCode(string(text))
	if err != nil {
		return err
	}
	*hc = parsed
	return nil
}

var _ fmt.Stringer = Code{}

func wordsFor(size int) int {
	return (size + wordBits - 1) / wordBits
}

// compareCodes orders Codes by size first, then bit by bit with 0 before 1.
func compareCodes(a, b Code) int {
	if a.size != b.size {
		if a.size < b.size {
			return -1
		}
		return 1
	}
	for i := 0; i < a.size; i++ {
		ab, bb := a.Bit(i), b.Bit(i)
		if ab != bb {
			return int(ab) - int(bb)
		}
	}
	return 0
}
