package model

import "github.com/timewinder-dev/burrow/puzzle"

// BatchItem is one named board to solve.
type BatchItem struct {
	Name  string
	Board puzzle.State
}

// BatchResult pairs a board with the outcome of its search. Exactly one of
// Result and Err is set once the board has been processed.
type BatchResult struct {
	Name   string
	Result *ModelResult
	Err    error
}

// WorkItem is a unit of work for batch workers.
type WorkItem struct {
	Index int
	Item  BatchItem
}

func NewWorkItem(index int, item BatchItem) *WorkItem {
	return &WorkItem{
		Index: index,
		Item:  item,
	}
}
