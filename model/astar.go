package model

import (
	"container/heap"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/burrow/cas"
	"github.com/timewinder-dev/burrow/puzzle"
)

type parentLink struct {
	parent cas.Hash
	move   puzzle.Move
}

// AStarEngine runs a best-first search from the executor's initial state. The
// cost table and frontier belong to the engine alone.
type AStarEngine struct {
	Executor *Executor
	frontier frontier
	best     map[cas.Hash]int
	parents  map[cas.Hash]parentLink
	seq      uint64
	stats    ModelStatistics
	logger   zerolog.Logger
}

func NewAStar(exec *Executor) *AStarEngine {
	return &AStarEngine{
		Executor: exec,
		logger:   log.With().Str("run", exec.RunID).Logger().Level(exec.Config.LogLevel()),
	}
}

func (s *AStarEngine) push(st puzzle.State, hash cas.Hash, cost int) {
	s.seq++
	heap.Push(&s.frontier, &frontierItem{
		state:    st,
		hash:     hash,
		cost:     cost,
		priority: cost + s.Executor.Estimator(st),
		seq:      s.seq,
	})
	if s.frontier.Len() > s.stats.MaxFrontier {
		s.stats.MaxFrontier = s.frontier.Len()
	}
}

// computeStatistics builds ModelStatistics from current engine state
func (s *AStarEngine) computeStatistics(start time.Time) ModelStatistics {
	stats := s.stats
	stats.UniqueStates = len(s.best)
	stats.Elapsed = time.Since(start)
	return stats
}

func (s *AStarEngine) RunModel(ctx context.Context) (*ModelResult, error) {
	start := time.Now()
	exec := s.Executor
	if exec.Estimator == nil {
		exec.Estimator = ZeroEstimator
	}
	s.frontier = nil
	s.best = make(map[cas.Hash]int)
	s.parents = make(map[cas.Hash]parentLink)
	s.seq = 0
	s.stats = ModelStatistics{}

	initial := exec.InitialState
	rootHash, err := exec.CAS.Put(&initial)
	if err != nil {
		return nil, fmt.Errorf("hashing initial state: %w", err)
	}
	s.best[rootHash] = 0
	s.push(initial, rootHash, 0)

	for s.frontier.Len() != 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		item := heap.Pop(&s.frontier).(*frontierItem)
		if item.cost > s.best[item.hash] {
			// A cheaper path to this state was found after it was queued.
			s.stats.Stale++
			continue
		}

		if puzzle.IsGoal(item.state) {
			s.logger.Debug().Int("cost", item.cost).Int("expanded", s.stats.Expanded).Msg("goal reached")
			result := &ModelResult{
				Solved:     true,
				Cost:       item.cost,
				Statistics: s.computeStatistics(start),
			}
			if exec.Config.Search.RecordPath {
				path, err := s.reconstructPath(rootHash, item.hash)
				if err != nil {
					return nil, err
				}
				result.Path = path
			}
			return result, nil
		}

		s.stats.Expanded++
		if limit := exec.Config.Search.MaxExpansions; limit > 0 && s.stats.Expanded > limit {
			return nil, fmt.Errorf("%w: %d states expanded", ErrBudgetExceeded, limit)
		}
		if every := exec.Config.Search.ProgressEvery; every > 0 && s.stats.Expanded%every == 0 {
			exec.Reporter.Printf("expanded %d states, %d queued, best bound %d\n",
				s.stats.Expanded, s.frontier.Len(), item.priority)
		}

		next, err := puzzle.Successors(item.state)
		if err != nil {
			return nil, fmt.Errorf("expanding state 0x%x: %w", item.hash, err)
		}
		s.logger.Trace().Uint64("state", uint64(item.hash)).Int("cost", item.cost).Int("successors", len(next)).Msg("expanded")

		for _, n := range next {
			s.stats.Generated++
			tentative := item.cost + n.Cost
			hash, err := exec.CAS.Put(&n.State)
			if err != nil {
				return nil, fmt.Errorf("hashing state: %w", err)
			}
			if old, seen := s.best[hash]; seen && tentative >= old {
				continue
			}
			s.best[hash] = tentative
			if exec.Config.Search.RecordPath {
				s.parents[hash] = parentLink{parent: item.hash, move: n.Move}
			}
			s.push(n.State, hash, tentative)
		}
	}

	s.logger.Debug().Int("expanded", s.stats.Expanded).Msg("frontier exhausted")
	return &ModelResult{
		Solved:     false,
		Cost:       Unsolvable,
		Statistics: s.computeStatistics(start),
	}, nil
}

// reconstructPath follows parent links back from the goal and reloads each
// intermediate board from the store.
func (s *AStarEngine) reconstructPath(root, goal cas.Hash) ([]Step, error) {
	var links []parentLink
	for h := goal; h != root; {
		link, ok := s.parents[h]
		if !ok {
			return nil, fmt.Errorf("no parent recorded for state 0x%x", h)
		}
		links = append(links, link)
		h = link.parent
	}

	path := make([]Step, 0, len(links))
	total := 0
	for i := len(links) - 1; i >= 0; i-- {
		child := goal
		if i > 0 {
			child = links[i-1].parent
		}
		st, err := cas.Retrieve[puzzle.State](s.Executor.CAS, child)
		if err != nil {
			return nil, fmt.Errorf("reconstructing path: %w", err)
		}
		total += links[i].move.Cost
		path = append(path, Step{Move: links[i].move, State: st, Total: total})
	}
	return path, nil
}
