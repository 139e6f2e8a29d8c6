package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/maisem/volcanium"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the puzzle samples and compare against the expected answers",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	samples, err := volcanium.ExtractSamples(samplesSource)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	var failed int
	for _, p := range parts {
		sample, ok := samples[p.name]
		if !ok {
			return fmt.Errorf("no sample found for %v", p.name)
		}
		valves, err := volcanium.ParseValves(strings.NewReader(sample.Input))
		if err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
		opts := append(cfg.Options(), volcanium.WithLogger(log))
		opts = append(opts, p.opts()...)
		t0 := time.Now()
		res, err := volcanium.Solve(cmd.Context(), valves, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
		if got := fmt.Sprint(res.Released); got != sample.Want {
			failed++
			fmt.Fprintf(out, "%s: %v %s; want %v\n", p.name, got, color.RedString("❌"), sample.Want)
			continue
		}
		fmt.Fprintf(out, "%s sample: %v %s (%v)\n", p.name, res.Released, color.GreenString("✅"), time.Since(t0).Round(time.Microsecond))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d samples failed", failed, len(parts))
	}
	return nil
}
