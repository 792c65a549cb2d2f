package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/burrow/model"
	"github.com/timewinder-dev/burrow/puzzle"
)

type solveOptions struct {
	unfold        bool
	showPath      bool
	showStats     bool
	maxExpansions int
	progressEvery int
}

var solveFlags solveOptions

var solveCmd = &cobra.Command{
	Use:   "solve [FILE]",
	Short: "Print the minimal sorting cost of one diagram (stdin if FILE is omitted)",
	Args:  cobra.MaximumNArgs(1),
	Run:   solveCommand,
}

func init() {
	addSolveFlags(solveCmd)
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&solveFlags.unfold, "unfold", false, "Insert the two extra rows of the unfolded diagram before solving")
	cmd.Flags().BoolVar(&solveFlags.showPath, "path", false, "Print the winning move sequence to stderr")
	cmd.Flags().BoolVar(&solveFlags.showStats, "stats", false, "Print search statistics to stderr")
	cmd.Flags().IntVar(&solveFlags.maxExpansions, "max-expansions", 0, "Give up after expanding this many states (0 means no limit)")
	cmd.Flags().IntVar(&solveFlags.progressEvery, "progress", 0, "Report progress every N expanded states")
}

// apply copies flags the user set onto cfg.
func (o solveOptions) apply(cmd *cobra.Command, cfg *model.Config) {
	flags := cmd.Flags()
	if flags.Changed("unfold") {
		cfg.Input.Unfold = o.unfold
	}
	if flags.Changed("max-expansions") {
		cfg.Search.MaxExpansions = o.maxExpansions
	}
	if flags.Changed("progress") {
		cfg.Search.ProgressEvery = o.progressEvery
	}
	if o.showPath {
		cfg.Search.RecordPath = true
	}
}

func solveCommand(cmd *cobra.Command, args []string) {
	solveFlags.apply(cmd, config)

	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("Couldn't open diagram")
		}
		defer f.Close()
		in = f
	}

	err := runSolve(cmd.Context(), config, solveFlags, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		log.Fatal().Err(err).Msg("Error while solving")
	}
}

// readBoard parses a diagram and unfolds it when the config asks for it.
func readBoard(r io.Reader, cfg *model.Config) (puzzle.State, error) {
	board, err := puzzle.Parse(r)
	if err != nil {
		return puzzle.State{}, err
	}
	if cfg.Input.Unfold {
		board, err = puzzle.Unfold(board)
		if err != nil {
			return puzzle.State{}, err
		}
	}
	if err := board.Validate(); err != nil {
		log.Warn().Err(err).Msg("Board can never be sorted")
	}
	return board, nil
}

func runSolve(ctx context.Context, cfg *model.Config, opts solveOptions, in io.Reader, out, errOut io.Writer) error {
	board, err := readBoard(in, cfg)
	if err != nil {
		return fmt.Errorf("reading diagram: %w", err)
	}

	exec, err := cfg.BuildExecutor(board, nil)
	if err != nil {
		return err
	}
	if cfg.Search.ProgressEvery > 0 {
		exec.Reporter = &model.ColorReporter{Writer: errOut}
	}
	if err := exec.Initialize(); err != nil {
		return err
	}
	log.Debug().Str("run", exec.RunID).Int("depth", board.Depth()).Msg("Searching")

	result, err := exec.RunModel(ctx)
	if err != nil {
		return err
	}

	if opts.showPath && result.Solved {
		fmt.Fprint(errOut, model.FormatPath(result.Path))
	}
	if opts.showStats {
		fmt.Fprint(errOut, model.FormatStatistics(result.Statistics))
	}
	if !result.Solved {
		log.Info().Msg("No sequence of moves sorts this board")
		if opts.showStats {
			fmt.Fprintln(errOut, color.Yellow.Sprint("Board is unsolvable"))
		}
	}
	fmt.Fprintln(out, result.Cost)
	return nil
}
