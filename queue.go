package hufftree

import (
	"container/heap"
)

// type queueItem + type nodeQueue {{{

type queueItem struct {
	node Node
	seq  uint64
}

// nodeQueue is a min-priority queue of nodes, ordered by ascending frequency
// and then by ascending creation sequence.
type nodeQueue struct {
	list    []queueItem
	nextSeq uint64
}

func newNodeQueue(capacity int) *nodeQueue {
	return &nodeQueue{list: make([]queueItem, 0, capacity)}
}

// Add appends a node without restoring the heap property.  Call Init once
// all initial nodes have been added.
func (q *nodeQueue) Add(node Node) {
	q.list = append(q.list, queueItem{node, q.nextSeq})
	q.nextSeq++
}

func (q *nodeQueue) Init() {
	heap.Init(q)
}

func (q *nodeQueue) Insert(node Node) {
	heap.Push(q, queueItem{node, q.nextSeq})
	q.nextSeq++
}

func (q *nodeQueue) ExtractMin() Node {
	return heap.Pop(q).(queueItem).node
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	af, bf := a.node.Freq(), b.node.Freq()
	if af != bf {
		return af < bf
	}
	return a.seq < b.seq
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueItem))
}

func (q *nodeQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list[last] = queueItem{}
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
