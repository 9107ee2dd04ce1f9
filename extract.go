package hufftree

import (
	"github.com/chronos-tachyon/assert"
)

// ExtractCodes walks the tree rooted at root and returns the codeword of
// every leaf.  Each left edge contributes a 0 bit and each right edge a 1
// bit.
//
// A tree consisting of a single *Leaf assigns that leaf the one-bit code
// "0", so that every symbol of every alphabet has a non-empty code.
//
// The tree must have been produced by BuildTree.  A malformed tree (an
// *Internal node missing a child, or a symbol appearing on two leaves)
// causes a panic.
//
func ExtractCodes(root Node) CodeTable {
	table := make(CodeTable)

	// We use an explicit stack to walk the tree, so that the height of
	// the tree is bounded only by memory.  The stack holds the internal
	// nodes on the path from the root, and prefix holds the bits of the
	// edges between them, so len(prefix) == len(stack)-1.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Internal
		x    byte
	}

	var stack []stackItem
	var prefix []byte

	addLeaf := func(leaf *Leaf, code Code) {
		_, dupe := table[leaf.symbol]
		assert.Assertf(!dupe, "malformed Huffman tree: symbol %d appears on more than one leaf", leaf.symbol)
		table[leaf.symbol] = code
	}

	processChild := func(child Node, bit byte) {
		switch x := child.(type) {
		case *Leaf:
			addLeaf(x, MakeCode(append(prefix, bit)...))
		case *Internal:
			prefix = append(prefix, bit)
			stack = append(stack, stackItem{node: x})
		default:
			assert.Assertf(false, "malformed Huffman tree: unknown node type %T", child)
		}
	}

	switch x := root.(type) {
	case *Leaf:
		addLeaf(x, MakeCode(0))
		return table
	case *Internal:
		stack = append(stack, stackItem{node: x})
	default:
		assert.Assertf(false, "malformed Huffman tree: unknown root type %T", root)
	}

	// And now the tree-walking loop.
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			left, _ := top.node.children()
			processChild(left, 0)
		case 1:
			_, right := top.node.children()
			processChild(right, 1)
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
			if len(prefix) != 0 {
				prefix = prefix[:len(prefix)-1]
			}
		}
	}

	return table
}
