package model

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// BatchEngine solves independent boards on a pool of workers. Every search is
// still sequential; only whole boards run side by side.
type BatchEngine struct {
	Config     *Config
	Reporter   Reporter
	numWorkers int

	ctx    context.Context
	cancel context.CancelFunc

	workQueue chan *WorkItem
	results   []BatchResult
	firstErr  error
	errOnce   sync.Once
	completed int64

	wg sync.WaitGroup
}

// NewBatch creates a batch engine. numWorkers <= 0 uses one worker per CPU.
func NewBatch(cfg *Config, numWorkers int) *BatchEngine {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &BatchEngine{
		Config:     cfg,
		Reporter:   &SilentReporter{},
		numWorkers: numWorkers,
	}
}

// SolveAll solves every item and returns the results in input order. The
// first failure cancels the boards that have not finished yet and is returned
// alongside the partial results.
func SolveAll(ctx context.Context, cfg *Config, items []BatchItem, numWorkers int) ([]BatchResult, error) {
	return NewBatch(cfg, numWorkers).Run(ctx, items)
}

func (b *BatchEngine) Run(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	b.ctx, b.cancel = context.WithCancel(ctx)
	defer b.cancel()

	b.results = make([]BatchResult, len(items))
	for i, item := range items {
		b.results[i].Name = item.Name
	}
	b.workQueue = make(chan *WorkItem, b.numWorkers*2)
	atomic.StoreInt64(&b.completed, 0)

	for i := 0; i < b.numWorkers; i++ {
		b.wg.Add(1)
		go b.worker(i)
	}

feed:
	for i, item := range items {
		select {
		case b.workQueue <- NewWorkItem(i, item):
		case <-b.ctx.Done():
			break feed
		}
	}
	close(b.workQueue)
	b.wg.Wait()

	if b.firstErr == nil {
		b.firstErr = ctx.Err()
	}
	if b.firstErr != nil {
		for i := range b.results {
			if b.results[i].Result == nil && b.results[i].Err == nil {
				b.results[i].Err = context.Canceled
			}
		}
	}
	return b.results, b.firstErr
}

func (b *BatchEngine) fail(err error) {
	b.errOnce.Do(func() {
		b.firstErr = err
		b.cancel()
	})
}

func (b *BatchEngine) worker(workerID int) {
	defer b.wg.Done()
	for item := range b.workQueue {
		if b.ctx.Err() != nil {
			b.results[item.Index].Err = b.ctx.Err()
			continue
		}
		result, err := b.solve(item.Item)
		if err != nil {
			log.Warn().Err(err).Int("worker", workerID).Str("board", item.Item.Name).Msg("Search failed")
			b.results[item.Index].Err = err
			b.fail(fmt.Errorf("%s: %w", item.Item.Name, err))
			continue
		}
		b.results[item.Index].Result = result
		done := atomic.AddInt64(&b.completed, 1)
		b.Reporter.Printf("%s: %s (%d done)\n", item.Item.Name, FormatCost(result), done)
	}
}

func (b *BatchEngine) solve(item BatchItem) (*ModelResult, error) {
	exec, err := b.Config.BuildExecutor(item.Board, nil)
	if err != nil {
		return nil, err
	}
	if err := exec.Initialize(); err != nil {
		return nil, err
	}
	log.Debug().Str("run", exec.RunID).Str("board", item.Name).Msg("Solving")
	return exec.RunModel(b.ctx)
}
