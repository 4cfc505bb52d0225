package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chiller/stampsim/input"
	"github.com/chiller/stampsim/internal/config"
	"github.com/chiller/stampsim/message"
	"github.com/chiller/stampsim/trial"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run trials until interrupted",
		Long: `Run draws messages until SIGINT or SIGTERM, rewriting a progress line
on stderr whenever the report trigger fires. A final line is written on
exit.`,
		Args: cobra.NoArgs,
		RunE: a.run,
	}

	addInputFlags(cmd)
	cmd.Flags().Int("length", 0, "letters per message")
	cmd.Flags().Uint64("seed", 0, "random seed (0 picks one)")
	cmd.Flags().String("report-every", "", "progress report interval, e.g. 2s")
	cmd.Flags().String("report-cron", "", "progress report cron expression (overrides --report-every)")
	cmd.Flags().Bool("counts", false, "report raw hit counts instead of percentages")
	return cmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("frequencies", "f", "", "letter frequencies file")
	cmd.Flags().StringP("intervals", "i", "", "time intervals file")
}

// applyRunFlags copies the flags explicitly set on cmd into cfg.
// Commands that do not define a flag leave the field alone.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("frequencies") {
		cfg.Frequencies, err = flags.GetString("frequencies")
	}
	if err == nil && flags.Changed("intervals") {
		cfg.Intervals, err = flags.GetString("intervals")
	}
	if err == nil && flags.Changed("length") {
		cfg.MessageLength, err = flags.GetInt("length")
	}
	if err == nil && flags.Changed("seed") {
		cfg.Seed, err = flags.GetUint64("seed")
	}
	if err == nil && flags.Changed("report-every") {
		cfg.Report.Every, err = flags.GetString("report-every")
		cfg.Report.Cron = ""
	}
	if err == nil && flags.Changed("report-cron") {
		cfg.Report.Cron, err = flags.GetString("report-cron")
	}
	if err == nil && flags.Changed("counts") {
		cfg.Report.Counts, err = flags.GetBool("counts")
	}
	return err
}

func (a *app) run(cmd *cobra.Command, _ []string) error {
	weights, err := input.LoadFrequencies(a.cfg.Frequencies)
	if err != nil {
		return err
	}
	intervals, err := input.LoadIntervals(a.cfg.Intervals, a.log)
	if err != nil {
		return err
	}

	seed := a.cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	source, err := message.NewSource(weights, seed, a.cfg.MessageLength)
	if err != nil {
		return err
	}

	reportTrigger, err := a.reportTrigger()
	if err != nil {
		return err
	}

	out := cmd.ErrOrStderr()
	sim := trial.New(source, intervals,
		trial.WithTrigger(reportTrigger),
		trial.WithReporter(trial.NewReporter(out, a.cfg.Report.Counts)),
		trial.WithLogger(a.log),
	)
	a.log.Debug("Inputs loaded.", "run", sim.ID().String(),
		"frequencies", a.cfg.Frequencies, "intervals", a.cfg.Intervals,
		"seed", seed, "length", a.cfg.MessageLength)

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = sim.Run(ctx)
	fmt.Fprintln(out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
