package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/burrow/model"
)

var (
	logLevel   string
	configPath string
	config     *model.Config
)

var rootCmd = &cobra.Command{
	Use:   "burrow [FILE]",
	Short: "Find the cheapest way to sort tokens into their rooms",
	Long: `burrow reads a corridor-and-rooms diagram and prints the minimum total
movement cost needed to put every token into its home room, or -1 if the
board cannot be sorted. Without a subcommand it behaves like "burrow solve".`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config = model.DefaultConfig()
		if configPath != "" {
			c, err := model.LoadConfigFromFile(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			config = c
		}
		if cmd.Flags().Changed("log-level") || config.Log.Level == "" {
			config.Log.Level = logLevel
		}

		// Set up zerolog
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		level, err := zerolog.ParseLevel(config.Log.Level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level '%s', using 'info'\n", config.Log.Level)
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
		return nil
	},
	Run: solveCommand,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Load settings from a .toml, .yaml or .json file")
	addSolveFlags(rootCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
