// Package trial runs the Monte Carlo estimate: it repeatedly draws a
// random message, searches it for timestamps and counts, per interval,
// how many messages contained at least one matching timestamp.
package trial

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/chiller/stampsim/logger"
	"github.com/chiller/stampsim/message"
	"github.com/chiller/stampsim/search"
	"github.com/chiller/stampsim/stamp"
	"github.com/chiller/stampsim/trigger"
)

// DefaultReportInterval is the default wall-clock cadence of progress reports.
const DefaultReportInterval = 2 * time.Second

// Generator produces the message for one trial.
type Generator interface {
	Generate() message.Message
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithTrigger sets the progress report cadence.
func WithTrigger(t trigger.Trigger) Option {
	return func(s *Simulation) {
		s.trigger = t
	}
}

// WithReporter sets the progress report sink.
func WithReporter(r *Reporter) Option {
	return func(s *Simulation) {
		s.reporter = r
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Simulation) {
		s.log = l
	}
}

// WithClock replaces the wall clock used for report scheduling.
func WithClock(now func() time.Time) Option {
	return func(s *Simulation) {
		s.now = now
	}
}

// Simulation owns all mutable state of a run: the message source, the
// search scratch state and the per-interval counters. It runs on a
// single goroutine.
type Simulation struct {
	id        uuid.UUID
	source    Generator
	intervals stamp.IntervalSet
	searcher  *search.Searcher
	found     []uint64
	trials    uint64

	trigger  trigger.Trigger
	reporter *Reporter
	log      logger.Logger
	now      func() time.Time
}

// New returns a Simulation drawing messages from source and matching
// them against intervals.
func New(source Generator, intervals stamp.IntervalSet, opts ...Option) *Simulation {
	s := &Simulation{
		id:        uuid.New(),
		source:    source,
		intervals: intervals,
		searcher:  search.New(intervals),
		found:     make([]uint64, len(intervals)),
		trigger:   trigger.NewSimpleTrigger(DefaultReportInterval),
		log:       logger.NoOpLogger{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the run identifier used in log records.
func (s *Simulation) ID() uuid.UUID {
	return s.id
}

// RunTrial draws one message, searches it and folds the hits into the
// lifetime counters.
func (s *Simulation) RunTrial() {
	msg := s.source.Generate()
	s.searcher.Scan(msg)

	for i, hit := range s.searcher.Hits() {
		if hit {
			s.found[i]++
		}
	}
	s.searcher.Reset()
	s.trials++
}

// Run executes trials until ctx is done, reporting progress whenever the
// trigger fires. Cancellation is observed between trials, so the
// counters only ever reflect complete trials. Run returns ctx.Err().
func (s *Simulation) Run(ctx context.Context) error {
	next, err := s.trigger.NextFireTime(s.now().UnixNano())
	if err != nil {
		return err
	}
	s.log.Info("Simulation started.", "run", s.id.String(),
		"intervals", len(s.intervals), "trigger", s.trigger.Description())

	for {
		select {
		case <-ctx.Done():
			s.report()
			s.log.Info("Simulation stopped.", "run", s.id.String(), "trials", s.trials)
			return ctx.Err()
		default:
		}

		s.RunTrial()

		now := s.now().UnixNano()
		if now < next {
			continue
		}
		s.report()
		if next, err = s.trigger.NextFireTime(now); err != nil {
			s.log.Info("No further progress reports.", "run", s.id.String(), "reason", err)
			next = math.MaxInt64
		}
	}
}

func (s *Simulation) report() {
	if s.reporter == nil {
		return
	}
	if err := s.reporter.Report(s.Snapshot()); err != nil {
		s.log.Warn("Failed to write progress report.", "run", s.id.String(), "error", err)
	}
}

// Snapshot returns a copy of the counters.
func (s *Simulation) Snapshot() Snapshot {
	hits := make([]uint64, len(s.found))
	copy(hits, s.found)
	return Snapshot{Trials: s.trials, Hits: hits}
}
