package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/burrow/puzzle"
)

func TestSolveAll(t *testing.T) {
	items := []BatchItem{
		{Name: "example", Board: parseBoard(t, exampleDiagram)},
		{Name: "sorted", Board: startBoard(t, [puzzle.RoomCount][]puzzle.Kind{
			{puzzle.A, puzzle.A}, {puzzle.B, puzzle.B}, {puzzle.C, puzzle.C}, {puzzle.D, puzzle.D},
		})},
		{Name: "deadlock", Board: parseBoard(t, "#############\n#...D.A.....#\n###.#B#C#.###\n  #########\n")},
	}

	testCases := []struct {
		name    string
		workers int
	}{
		{"single worker", 1},
		{"more workers than boards", 8},
		{"default workers", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := SolveAll(context.Background(), DefaultConfig(), items, tc.workers)
			require.NoError(t, err)
			require.Len(t, results, len(items))

			want := []int{12521, 0, Unsolvable}
			for i, r := range results {
				assert.Equal(t, items[i].Name, r.Name)
				require.NoError(t, r.Err)
				require.NotNil(t, r.Result)
				assert.Equal(t, want[i], r.Result.Cost, r.Name)
			}
		})
	}
}

func TestSolveAllStopsOnError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.MaxExpansions = 3

	items := []BatchItem{
		{Name: "example", Board: parseBoard(t, exampleDiagram)},
	}
	results, err := SolveAll(context.Background(), cfg, items, 2)
	require.ErrorIs(t, err, ErrBudgetExceeded)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrBudgetExceeded)
	assert.Nil(t, results[0].Result)
}

func TestSolveAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []BatchItem{
		{Name: "a", Board: parseBoard(t, exampleDiagram)},
		{Name: "b", Board: parseBoard(t, exampleDiagram)},
	}
	results, err := SolveAll(ctx, DefaultConfig(), items, 1)
	require.ErrorIs(t, err, context.Canceled)
	for _, r := range results {
		assert.Error(t, r.Err)
		assert.Nil(t, r.Result)
	}
}
