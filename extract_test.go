package hufftree

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

func TestExtractCodes_Textbook(t *testing.T) {
	table := ExtractCodes(mustBuildTree(t, textbookFrequencies()))

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(97) = \"1100\"\n",
		"\tEncode(98) = \"1101\"\n",
		"\tEncode(99) = \"100\"\n",
		"\tEncode(100) = \"101\"\n",
		"\tEncode(101) = \"111\"\n",
		"\tEncode(102) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	bits, err := table.WeightedLength(textbookFrequencies())
	if err != nil {
		t.Fatalf("WeightedLength failed: %v", err)
	}
	if bits != 224 {
		t.Errorf("wrong weighted length: expect 224, actual %d", bits)
	}
}

func TestExtractCodes_SingleSymbol(t *testing.T) {
	table := ExtractCodes(mustBuildTree(t, []Frequency{{'q', 3}}))

	if len(table) != 1 {
		t.Fatalf("expected 1 code, got %d", len(table))
	}
	if actual := table['q'].Digits(); actual != "0" {
		t.Errorf("expected code \"0\" for lone symbol, got %q", actual)
	}
}

func TestExtractCodes_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 2; n <= 80; n += 3 {
		freqs := randomFrequencies(rng, n, 1<<20)
		table := ExtractCodes(mustBuildTree(t, freqs))
		if len(table) != n {
			t.Fatalf("n=%d: expected %d codes, got %d", n, n, len(table))
		}
		for a, ca := range table {
			if ca.Size() == 0 {
				t.Errorf("n=%d: symbol %d has an empty code", n, a)
			}
			for b, cb := range table {
				if a == b {
					continue
				}
				if cb.HasPrefix(ca) {
					t.Errorf("n=%d: code %s of symbol %d is a prefix of code %s of symbol %d", n, ca, a, cb, b)
				}
			}
		}
	}
}

func TestExtractCodes_Optimal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 200; round++ {
		n := 2 + rng.Intn(7)
		freqs := randomFrequencies(rng, n, 50)
		table := ExtractCodes(mustBuildTree(t, freqs))

		actual, err := table.WeightedLength(freqs)
		if err != nil {
			t.Fatalf("WeightedLength failed: %v", err)
		}
		expect := optimalCost(freqs)
		if expect != actual {
			t.Errorf("round %d: %v: expect weighted length %d, actual %d", round, freqs, expect, actual)
		}
	}
}

func TestExtractCodes_DeepTree(t *testing.T) {
	// Fibonacci frequencies produce a maximally unbalanced tree.
	const n = 80
	freqs := make([]Frequency, n)
	a, b := int64(1), int64(1)
	for i := range freqs {
		freqs[i] = Frequency{Symbol(i), a}
		a, b = b, a+b
	}

	root := mustBuildTree(t, freqs)
	table := ExtractCodes(root)
	if actual := table.MaxSize(); actual != n-1 {
		t.Errorf("expected longest code of %d bits, got %d", n-1, actual)
	}
	if actual := TreeStats(root).Height; actual != n-1 {
		t.Errorf("expected height %d, got %d", n-1, actual)
	}
	if actual := table[0].Size(); actual != n-1 {
		t.Errorf("expected least frequent symbol to have %d bits, got %d", n-1, actual)
	}
}

func TestExtractCodes_Malformed(t *testing.T) {
	type testRow struct {
		name string
		root Node
	}

	testData := [...]testRow{
		{name: "nil", root: nil},
		{name: "missing-right", root: &Internal{freq: 1, left: newLeaf(1, 1)}},
		{name: "zero-value", root: &Internal{}},
		{name: "duplicate-leaf", root: newInternal(newLeaf(1, 1), newLeaf(1, 1))},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic")
				}
			}()
			ExtractCodes(row.root)
		})
	}
}

func TestCodeTable_WeightedLengthOverflow(t *testing.T) {
	// the counts sum to less than MaxInt64, but the weighted sum does not
	freqs := []Frequency{
		{1, math.MaxInt64 / 2},
		{2, math.MaxInt64/4 + 1},
		{3, math.MaxInt64/4 - 10},
	}
	table := ExtractCodes(mustBuildTree(t, freqs))

	bits, err := table.WeightedLength(freqs)
	if err == nil {
		t.Errorf("expected overflow error, got %d", bits)
	}
}

func TestCodeTable_SymbolsByCode(t *testing.T) {
	table := ExtractCodes(mustBuildTree(t, textbookFrequencies()))

	expect := []Symbol{'f', 'c', 'd', 'e', 'a', 'b'}
	actual := table.SymbolsByCode()
	if len(expect) != len(actual) {
		t.Fatalf("expected %d symbols, got %d", len(expect), len(actual))
	}
	for i := range expect {
		if expect[i] != actual[i] {
			t.Errorf("index %d: expect %q, actual %q", i, rune(expect[i]), rune(actual[i]))
		}
	}
}

// optimalCost computes the minimum weighted path length over every full
// binary tree with the given leaves, by exhaustive search over subsets.
func optimalCost(freqs []Frequency) int64 {
	n := uint(len(freqs))
	full := uint(1)<<n - 1
	sum := make([]int64, full+1)
	cost := make([]int64, full+1)
	for mask := uint(1); mask <= full; mask++ {
		for i := uint(0); i < n; i++ {
			if mask&(1<<i) != 0 {
				sum[mask] += freqs[i].Count
			}
		}
		if mask&(mask-1) == 0 {
			continue
		}
		lowest := mask & -mask
		best := int64(-1)
		for sub := (mask - 1) & mask; sub != 0; sub = (sub - 1) & mask {
			if sub&lowest == 0 {
				continue
			}
			c := cost[sub] + cost[mask^sub]
			if best < 0 || c < best {
				best = c
			}
		}
		cost[mask] = best + sum[mask]
	}
	return cost[full]
}
