package stamp

import "fmt"

// Matcher represents a predicate (boolean-valued function) of one argument.
type Matcher[T any] interface {
	// IsMatch evaluates this matcher on the given argument.
	IsMatch(T) bool
}

// Interval is an inclusive range of complete timestamps.
type Interval struct {
	Low  Timestamp
	High Timestamp
}

var _ Matcher[Timestamp] = Interval{}

// NewInterval returns an Interval, verifying both bounds are complete.
// A reversed interval is accepted; see Reversed.
func NewInterval(low, high Timestamp) (Interval, error) {
	if !low.Complete() {
		return Interval{}, invalidTimestampError(fmt.Sprintf("incomplete low bound %s", low))
	}
	if !high.Complete() {
		return Interval{}, invalidTimestampError(fmt.Sprintf("incomplete high bound %s", high))
	}
	return Interval{Low: low, High: high}, nil
}

// IsMatch reports whether ts lies within the interval, bounds included.
func (i Interval) IsMatch(ts Timestamp) bool {
	return LessOrEqual(i.Low, ts) && LessOrEqual(ts, i.High)
}

// Reversed reports whether the low bound sorts after the high bound.
// Such an interval never matches.
func (i Interval) Reversed() bool {
	return !LessOrEqual(i.Low, i.High)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s]", i.Low, i.High)
}

// IntervalSet is an ordered list of intervals. Positions in the set are
// used to index per-interval hit flags and counters.
type IntervalSet []Interval

// Match sets hits[i] for every interval i containing ts and returns the
// number of intervals matched. Flags that are already set stay set.
// hits must have the same length as the set.
func (s IntervalSet) Match(ts Timestamp, hits []bool) int {
	matched := 0
	for i, interval := range s {
		if interval.IsMatch(ts) {
			hits[i] = true
			matched++
		}
	}
	return matched
}
