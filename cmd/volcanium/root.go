package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/maisem/volcanium"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "volcanium",
	Short: "Release the most pressure from a valve network",
	Long: `volcanium reads a valve network in Advent of Code 2022 day 16 format and
searches every order and assignment of valves to agents for the one that
releases the most pressure within the time budget.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "volcanium.yaml", "YAML config file; defaults are used if it does not exist")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides the config")
}

// loadConfig reads the config named by --config and applies the
// persistent flag overrides.
func loadConfig(cmd *cobra.Command) (volcanium.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := volcanium.LoadConfig(path)
	if err != nil {
		return volcanium.Config{}, err
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.LogLevel = f.Value.String()
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg volcanium.Config) *slog.Logger {
	level, err := cfg.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
