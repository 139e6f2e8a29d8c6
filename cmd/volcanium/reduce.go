package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/maisem/volcanium"
	"github.com/spf13/cobra"
)

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Print the travel times between the valves worth opening",
	Args:  cobra.NoArgs,
	RunE:  runReduce,
}

func init() {
	reduceCmd.Flags().String("input", "", "puzzle input file")
	reduceCmd.Flags().Bool("fetch", false, "fetch the input from adventofcode.com when --input is not set")
	reduceCmd.Flags().String("cache-dir", ".", "directory fetched inputs are cached in")
	rootCmd.AddCommand(reduceCmd)
}

func runReduce(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input, err := readInput(cmd)
	if err != nil {
		return err
	}
	valves, err := volcanium.ParseValves(bytes.NewReader(input))
	if err != nil {
		return err
	}
	n, err := volcanium.Reduce(valves, cfg.Start)
	if err != nil {
		return err
	}

	vs := n.Valves()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', tabwriter.AlignRight)
	header := []string{"", "rate"}
	for _, v := range vs {
		header = append(header, v.Name)
	}
	fmt.Fprintln(w, strings.Join(header, "\t")+"\t")
	for _, a := range vs {
		row := []string{color.CyanString(a.Name), fmt.Sprint(a.Rate)}
		for _, b := range vs {
			switch d, ok := a.Tunnels[b.Name]; {
			case a.Name == b.Name:
				row = append(row, "-")
			case !ok:
				row = append(row, "∞")
			default:
				row = append(row, fmt.Sprint(d))
			}
		}
		fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d flow valves, total rate %d, hash %v\n", n.Len(), n.TotalRate(), n.Hash())
	return nil
}
