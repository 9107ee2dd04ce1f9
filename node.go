package hufftree

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.  Nodes
// are immutable once created.
type Node interface {
	// Freq returns the frequency of this node.  For an *Internal node this
	// is the sum of the frequencies of its two children.
	Freq() int64

	fmt.Stringer

	isNode()
}

// Leaf is a Node holding one symbol of the alphabet.
type Leaf struct {
	symbol Symbol
	freq   int64
}

// Symbol returns the symbol held by this leaf.
func (l *Leaf) Symbol() Symbol {
	return l.symbol
}

// Freq returns the frequency of this leaf's symbol.
func (l *Leaf) Freq() int64 {
	return l.freq
}

// String returns the string representation of this leaf.
func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(%d:%d)", l.symbol, l.freq)
}

func (*Leaf) isNode() {}

// Internal is a Node that owns exactly two children.
type Internal struct {
	freq  int64
	left  Node
	right Node
}

// Left returns the child reached by a 0 bit.
func (n *Internal) Left() Node {
	return n.left
}

// Right returns the child reached by a 1 bit.
func (n *Internal) Right() Node {
	return n.right
}

// Freq returns the combined frequency of both children.
func (n *Internal) Freq() int64 {
	return n.freq
}

// String returns the string representation of this node.
func (n *Internal) String() string {
	return fmt.Sprintf("Internal(%d)", n.freq)
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

func newLeaf(symbol Symbol, freq int64) *Leaf {
	return &Leaf{symbol: symbol, freq: freq}
}

func newInternal(left Node, right Node) *Internal {
	return &Internal{freq: left.Freq() + right.Freq(), left: left, right: right}
}

// children returns both children of n, panicking if the node is malformed.
func (n *Internal) children() (Node, Node) {
	assert.Assertf(n.left != nil && n.right != nil, "malformed Huffman tree: %v is missing a child", n)
	return n.left, n.right
}

// Stats summarizes the shape of a Huffman tree.
type Stats struct {
	Leaves   int
	Internal int
	Height   int
}

// Walk visits every node of the tree rooted at root in depth-first order,
// left before right.  Depth is 0 for the root.  Walk stops descending below
// a node when fn returns false.
func Walk(root Node, fn func(node Node, depth int) bool) {
	type stackItem struct {
		node  Node
		depth int
	}

	stack := []stackItem{{root, 0}}
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		if !fn(item.node, item.depth) {
			continue
		}

		switch x := item.node.(type) {
		case *Leaf:
			// pass
		case *Internal:
			left, right := x.children()
			// push right first so that left is visited first
			stack = append(stack, stackItem{right, item.depth + 1}, stackItem{left, item.depth + 1})
		default:
			assert.Assertf(false, "malformed Huffman tree: unknown node type %T", item.node)
		}
	}
}

// TreeStats counts the leaves and internal nodes of the tree rooted at root
// and measures its height, which is the length of the longest codeword.
func TreeStats(root Node) Stats {
	var s Stats
	Walk(root, func(node Node, depth int) bool {
		if _, ok := node.(*Leaf); ok {
			s.Leaves++
		} else {
			s.Internal++
		}
		if depth > s.Height {
			s.Height = depth
		}
		return true
	})
	return s
}
