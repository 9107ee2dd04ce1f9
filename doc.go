// Package hufftree builds Huffman code trees from symbol frequencies and
// derives the prefix-free codeword for every symbol.
//
// BuildTree repeatedly merges the two least frequent nodes of a min-priority
// queue until a single root remains.  ExtractCodes walks the finished tree,
// appending a 0 bit for every left edge and a 1 bit for every right edge.
//
// Ties between equal frequencies are broken by creation order: leaves are
// numbered in input order and every merged node is numbered after all nodes
// created before it.  The first node extracted from the queue becomes the
// left child.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree
