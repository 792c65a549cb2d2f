package model

import (
	"context"

	"github.com/google/uuid"
	"github.com/timewinder-dev/burrow/cas"
	"github.com/timewinder-dev/burrow/puzzle"
)

// Estimator returns a lower bound on the remaining cost from a state.
type Estimator func(puzzle.State) int

// ZeroEstimator turns the search into plain uniform-cost search.
func ZeroEstimator(puzzle.State) int { return 0 }

// An Executor is the context and entrypoint for solving one board.
type Executor struct {
	Config       *Config
	InitialState puzzle.State
	CAS          cas.CAS
	Estimator    Estimator
	Reporter     Reporter
	RunID        string
	Engine       Engine
}

type Engine interface {
	RunModel(ctx context.Context) (*ModelResult, error)
}

// BuildExecutor prepares a search over initial. A nil store gets a fresh
// MemoryCAS behind an LRU cache sized by the config.
func (c *Config) BuildExecutor(initial puzzle.State, store cas.CAS) (*Executor, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		store = cas.NewLRUCache(cas.NewMemoryCAS(), c.Cache.Size)
	}
	return &Executor{
		Config:       c,
		InitialState: initial,
		CAS:          store,
		Estimator:    puzzle.Heuristic,
		Reporter:     &SilentReporter{},
		RunID:        uuid.NewString(),
	}, nil
}

func (e *Executor) Initialize() error {
	e.Engine = NewAStar(e)
	return nil
}

func (e *Executor) RunModel(ctx context.Context) (*ModelResult, error) {
	if e.Engine == nil {
		if err := e.Initialize(); err != nil {
			return nil, err
		}
	}
	return e.Engine.RunModel(ctx)
}
