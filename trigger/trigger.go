package trigger

import (
	"errors"
	"fmt"
	"time"

	"github.com/gorhill/cronexpr"
)

// ErrTriggerExpired is returned when a Trigger has no further fire times.
var ErrTriggerExpired = errors.New("trigger expired")

// Trigger computes the cadence of progress reports.
type Trigger interface {
	// NextFireTime returns the next time at which the Trigger is
	// scheduled to fire, in Unix nanoseconds, after prev.
	NextFireTime(prev int64) (int64, error)

	// Description returns the description of the Trigger.
	Description() string
}

// SimpleTrigger fires at a fixed wall-clock interval.
type SimpleTrigger struct {
	Interval time.Duration
}

var _ Trigger = (*SimpleTrigger)(nil)

// NewSimpleTrigger returns a new SimpleTrigger using the given interval.
func NewSimpleTrigger(interval time.Duration) *SimpleTrigger {
	return &SimpleTrigger{Interval: interval}
}

// NextFireTime returns prev advanced by the trigger interval.
func (st *SimpleTrigger) NextFireTime(prev int64) (int64, error) {
	return prev + st.Interval.Nanoseconds(), nil
}

// Description returns the description of the trigger.
func (st *SimpleTrigger) Description() string {
	return fmt.Sprintf("SimpleTrigger%s%s", Sep, st.Interval)
}

// CronTrigger fires on the schedule of a cron expression. Expressions
// with seven fields carry a leading seconds field, which allows
// sub-minute report cadences such as "*/2 * * * * * *".
type CronTrigger struct {
	expression string
	expr       *cronexpr.Expression
	location   *time.Location
}

var _ Trigger = (*CronTrigger)(nil)

// NewCronTrigger returns a new CronTrigger evaluated in UTC.
func NewCronTrigger(expression string) (*CronTrigger, error) {
	return NewCronTriggerWithLoc(expression, time.UTC)
}

// NewCronTriggerWithLoc returns a new CronTrigger evaluated in the given
// location.
func NewCronTriggerWithLoc(expression string, location *time.Location) (*CronTrigger, error) {
	if location == nil {
		return nil, errors.New("location is nil")
	}
	expr, err := cronexpr.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("parse cron expression %q: %w", expression, err)
	}
	return &CronTrigger{
		expression: expression,
		expr:       expr,
		location:   location,
	}, nil
}

// NextFireTime returns the first time matching the expression strictly
// after prev.
func (ct *CronTrigger) NextFireTime(prev int64) (int64, error) {
	next := ct.expr.Next(time.Unix(0, prev).In(ct.location))
	if next.IsZero() {
		return 0, fmt.Errorf("%w: %s", ErrTriggerExpired, ct.expression)
	}
	return next.UnixNano(), nil
}

// Description returns the description of the cron trigger.
func (ct *CronTrigger) Description() string {
	return fmt.Sprintf("CronTrigger%s%s%s%s", Sep, ct.expression, Sep, ct.location)
}

// Sep is the separator used in trigger descriptions.
const Sep = "::"
