package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chiller/stampsim/message"
)

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "encode LETTERS...",
		Short:   "Print the A1Z26 digit string of a message",
		Example: "  stampsim encode OneDayWillRevealAll",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := message.Encode(strings.Join(args, ""))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
