package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/burrow/model"
)

var (
	numWorkers int
	batchStats bool
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Solve several diagrams concurrently",
	Args:  cobra.MinimumNArgs(1),
	Run:   batchCommand,
}

func init() {
	batchCmd.Flags().IntVar(&numWorkers, "workers", 0, "Number of boards solved at once (defaults to the CPU count)")
	batchCmd.Flags().BoolVar(&batchStats, "stats", false, "Print statistics for each board to stderr")
	batchCmd.Flags().BoolVar(&solveFlags.unfold, "unfold", false, "Insert the two extra rows of the unfolded diagram before solving")
}

func batchCommand(cmd *cobra.Command, args []string) {
	if cmd.Flags().Changed("unfold") {
		config.Input.Unfold = solveFlags.unfold
	}
	items, err := loadBatch(args, config)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't load diagrams")
	}

	engine := model.NewBatch(config, numWorkers)
	if config.Search.ProgressEvery > 0 {
		engine.Reporter = &model.ColorReporter{Writer: cmd.ErrOrStderr()}
	}
	results, err := engine.Run(cmd.Context(), items)
	writeBatch(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
	if err != nil {
		log.Fatal().Err(err).Msg("Batch failed")
	}
}

func loadBatch(paths []string, cfg *model.Config) ([]model.BatchItem, error) {
	var items []model.BatchItem
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		board, err := readBoard(f, cfg)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		items = append(items, model.BatchItem{Name: path, Board: board})
	}
	return items, nil
}

func writeBatch(out, errOut io.Writer, results []model.BatchResult) {
	for _, r := range results {
		if r.Result == nil {
			continue
		}
		fmt.Fprintf(out, "%s: %d\n", r.Name, r.Result.Cost)
		if batchStats {
			fmt.Fprintf(errOut, "\n%s", r.Name)
			fmt.Fprint(errOut, model.FormatStatistics(r.Result.Statistics))
		}
	}
}
