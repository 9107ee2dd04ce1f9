package hufftree

import (
	"fmt"
	"math"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Frequency pairs a Symbol with its number of occurrences.
type Frequency struct {
	Symbol Symbol
	Count  int64
}

// String returns the string representation of this Frequency.
func (f Frequency) String() string {
	return fmt.Sprintf("%d:%d", f.Symbol, f.Count)
}
