package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chiller/stampsim/input"
	"github.com/chiller/stampsim/message"
	"github.com/chiller/stampsim/search"
	"github.com/chiller/stampsim/stamp"
)

func (a *app) inspectCmd() *cobra.Command {
	var letters bool
	cmd := &cobra.Command{
		Use:   "inspect DIGITS",
		Short: "List every timestamp found in a message",
		Long: `Inspect searches a single message and prints each complete timestamp
with its offset, field order and the 1-based indexes of the intervals it
falls in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(cmd, args[0], letters)
		},
	}
	addInputFlags(cmd)
	cmd.Flags().BoolVarP(&letters, "letters", "l", false, "treat the argument as letters instead of digits")
	return cmd
}

func (a *app) inspect(cmd *cobra.Command, arg string, letters bool) error {
	var (
		msg message.Message
		err error
	)
	if letters {
		msg, err = message.Encode(arg)
	} else {
		msg, err = message.Parse(arg)
	}
	if err != nil {
		return err
	}

	intervals, err := input.LoadIntervals(a.cfg.Intervals, a.log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	found := 0
	searcher := search.New(intervals, search.WithVisitor(
		func(offset int, order stamp.Order, ts stamp.Timestamp) {
			found++
			var matched []string
			for i, interval := range intervals {
				if interval.IsMatch(ts) {
					matched = append(matched, fmt.Sprint(i+1))
				}
			}
			fmt.Fprintf(out, "%3d %s %s [%s]\n", offset, order, ts, strings.Join(matched, " "))
		}))
	searcher.Scan(msg)

	hits := 0
	for _, hit := range searcher.Hits() {
		if hit {
			hits++
		}
	}
	fmt.Fprintf(out, "%d candidates, %d of %d intervals hit\n", found, hits, len(intervals))
	return nil
}
