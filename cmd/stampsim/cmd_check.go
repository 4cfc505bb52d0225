package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chiller/stampsim/input"
	"github.com/chiller/stampsim/message"
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the input files without running trials",
		Args:  cobra.NoArgs,
		RunE:  a.check,
	}
	addInputFlags(cmd)
	return cmd
}

func (a *app) check(cmd *cobra.Command, _ []string) error {
	weights, err := input.LoadFrequencies(a.cfg.Frequencies)
	if err != nil {
		return err
	}
	if _, err := message.NewDistribution(weights); err != nil {
		return fmt.Errorf("%s: %w", a.cfg.Frequencies, err)
	}
	intervals, err := input.LoadIntervals(a.cfg.Intervals, a.log)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tFROM\tTO\tNOTE")
	for i, interval := range intervals {
		note := ""
		if interval.Reversed() {
			note = "reversed, never matches"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, interval.Low, interval.High, note)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d intervals OK\n", len(intervals))
	return nil
}
