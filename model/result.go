package model

import (
	"errors"
	"time"

	"github.com/timewinder-dev/burrow/puzzle"
)

// Unsolvable is reported as the cost when no sequence of moves reaches the goal.
const Unsolvable = -1

var ErrBudgetExceeded = errors.New("expansion budget exceeded")

type ModelResult struct {
	Solved     bool
	Cost       int
	Path       []Step
	Statistics ModelStatistics
}

// Step is one move of a solution and the board after it.
type Step struct {
	Move  puzzle.Move
	State puzzle.State
	Total int
}

type ModelStatistics struct {
	Expanded     int
	Generated    int
	Stale        int
	UniqueStates int
	MaxFrontier  int
	Elapsed      time.Duration
}
