// SPDX-License-Identifier: MIT

package dijkstra

import "math"

// entry is the per-node state of one computation: the tentative cost from
// the start node and an optional predecessor.
type entry struct {
	weight  float64
	prev    int
	hasPrev bool
	index   int // position in the frontier heap; -1 once removed
	state   entryState
}

type entryState uint8

const (
	inFrontier entryState = iota
	finalized
	pruned
)

// frontier is an indexed binary min-heap of node ids ordered by
// (entries[id].weight, id). It implements heap.Interface; positions are
// mirrored into entries[id].index so decrease-key can use heap.Fix.
type frontier struct {
	ids     []int
	entries []entry
}

// newFrontier seeds one entry per node: start at 0, everything else at +Inf.
// The slice is already a valid heap: start is the unique minimum and the
// rest tie on +Inf in ascending id order.
func newFrontier(n, start int) *frontier {
	f := &frontier{
		ids:     make([]int, 0, n),
		entries: make([]entry, n),
	}
	f.ids = append(f.ids, start)
	f.entries[start] = entry{weight: 0, index: 0}
	for id := 0; id < n; id++ {
		if id == start {
			continue
		}
		f.entries[id] = entry{weight: math.Inf(1), index: len(f.ids)}
		f.ids = append(f.ids, id)
	}

	return f
}

// Len returns the number of nodes still in the frontier.
func (f *frontier) Len() int { return len(f.ids) }

// Less orders by tentative weight, breaking ties by ascending node id.
func (f *frontier) Less(i, j int) bool {
	a, b := f.ids[i], f.ids[j]
	wa, wb := f.entries[a].weight, f.entries[b].weight
	if wa != wb {
		return wa < wb
	}
	return a < b
}

// Swap swaps two heap slots and keeps the index mirror in sync.
func (f *frontier) Swap(i, j int) {
	f.ids[i], f.ids[j] = f.ids[j], f.ids[i]
	f.entries[f.ids[i]].index = i
	f.entries[f.ids[j]].index = j
}

// Push appends a node id. Called by heap.Push only.
func (f *frontier) Push(x any) {
	id := x.(int)
	f.entries[id].index = len(f.ids)
	f.ids = append(f.ids, id)
}

// Pop removes the last slot. Called by heap.Pop only.
func (f *frontier) Pop() any {
	n := len(f.ids)
	id := f.ids[n-1]
	f.ids = f.ids[:n-1]
	f.entries[id].index = -1

	return id
}

// top returns the id with the minimum (weight, id) without removing it.
func (f *frontier) top() int { return f.ids[0] }
