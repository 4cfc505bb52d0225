package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chiller/stampsim/internal/config"
	"github.com/chiller/stampsim/logger"
	"github.com/chiller/stampsim/trigger"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logBackend string

	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "stampsim",
		Short: "Estimate how often random messages hide a timestamp",
		Long: `stampsim draws random letter messages, encodes them as A1Z26 digit
pairs and searches every digit run for a year, month, day and hour in
day-month-year, month-day-year or year-month-day order, using both short
and long field widths. It reports, per configured interval, the share of
messages holding at least one timestamp inside that interval.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if s, ok := a.log.(interface{ Sync() error }); ok {
				_ = s.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "stampsim.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&a.logBackend, "log-backend", "", "log backend (slog, zap, zerolog)")

	rootCmd.AddCommand(
		a.runCmd(),
		a.checkCmd(),
		a.encodeCmd(),
		a.inspectCmd(),
	)
	return rootCmd
}

// setup loads the configuration and builds the logger. Flags set on the
// command line take precedence over the config file and environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logBackend != "" {
		cfg.Log.Backend = a.logBackend
	}
	if err := applyRunFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Backend: cfg.Log.Backend,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Writer:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	return nil
}

// reportTrigger builds the progress report cadence from the config.
func (a *app) reportTrigger() (trigger.Trigger, error) {
	if a.cfg.Report.Cron != "" {
		return trigger.NewCronTriggerWithLoc(a.cfg.Report.Cron, time.Local)
	}
	every, err := a.cfg.ReportInterval()
	if err != nil {
		return nil, err
	}
	return trigger.NewSimpleTrigger(every), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
