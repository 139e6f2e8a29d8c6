package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/maisem/volcanium"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the most pressure the agents can release",
	Long: `Reads the valve network from --input, or from the Advent of Code
website with --fetch, and prints the most pressure released.`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.String("input", "", "puzzle input file")
	f.Bool("fetch", false, "fetch the input from adventofcode.com when --input is not set")
	f.String("cache-dir", ".", "directory fetched inputs are cached in")
	f.String("start", "", "start valve")
	f.Int("minutes", 0, "time budget in minutes")
	f.Int("agents", 0, "number of agents")
	f.Int("open-minutes", 0, "minutes spent opening a valve")
	f.Int("workers", 0, "goroutines evaluating branches (0 = GOMAXPROCS)")
	f.Bool("prune", false, "enable upper-bound pruning")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applySolveFlags(cmd, &cfg); err != nil {
		return err
	}
	log := newLogger(cfg)

	input, err := readInput(cmd)
	if err != nil {
		return err
	}
	valves, err := volcanium.ParseValves(bytes.NewReader(input))
	if err != nil {
		return err
	}
	opts := append(cfg.Options(), volcanium.WithLogger(log))
	res, err := volcanium.Solve(cmd.Context(), valves, opts...)
	if err != nil {
		return err
	}
	log.Info("solved", "branches", res.Branches, "leaves", res.Leaves, "took", res.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(cmd.OutOrStdout(), res.Released)
	return nil
}

func applySolveFlags(cmd *cobra.Command, cfg *volcanium.Config) error {
	f := cmd.Flags()
	if f.Changed("start") {
		cfg.Start, _ = f.GetString("start")
	}
	if f.Changed("minutes") {
		cfg.Minutes, _ = f.GetInt("minutes")
	}
	if f.Changed("agents") {
		cfg.Agents, _ = f.GetInt("agents")
	}
	if f.Changed("open-minutes") {
		cfg.OpenMinutes, _ = f.GetInt("open-minutes")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("prune") {
		cfg.Prune, _ = f.GetBool("prune")
	}
	return cfg.Validate()
}

func readInput(cmd *cobra.Command) ([]byte, error) {
	f := cmd.Flags()
	if path, _ := f.GetString("input"); path != "" {
		return os.ReadFile(path)
	}
	if fetch, _ := f.GetBool("fetch"); !fetch {
		return nil, fmt.Errorf("one of --input or --fetch is required")
	}
	dir, _ := f.GetString("cache-dir")
	p := &volcanium.Puzzle{Year: 2022, Day: 16, Dir: dir}
	return p.Input(cmd.Context())
}
