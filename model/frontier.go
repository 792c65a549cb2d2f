package model

import (
	"github.com/timewinder-dev/burrow/cas"
	"github.com/timewinder-dev/burrow/puzzle"
)

type frontierItem struct {
	state    puzzle.State
	hash     cas.Hash
	cost     int
	priority int
	seq      uint64
}

// frontier is a min-heap on priority. Ties go to the entry discovered first so
// that repeated runs pop states in the same order.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(*frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
