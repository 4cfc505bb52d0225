package stamp_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/chiller/stampsim/internal/assert"
	"github.com/chiller/stampsim/stamp"
)

func TestIntervalIsMatch(t *testing.T) {
	t.Parallel()
	interval, err := stamp.NewInterval(
		stamp.MustNew(2024, 1, 1, 0),
		stamp.MustNew(2024, 12, 31, 23),
	)
	assert.Equal(t, err, nil)
	assert.False(t, interval.Reversed())

	assert.True(t, interval.IsMatch(stamp.MustNew(2024, 1, 1, 0)))
	assert.True(t, interval.IsMatch(stamp.MustNew(2024, 12, 31, 23)))
	assert.True(t, interval.IsMatch(stamp.MustNew(2024, 2, 29, 7)))
	assert.False(t, interval.IsMatch(stamp.MustNew(2023, 12, 31, 23)))
	assert.False(t, interval.IsMatch(stamp.MustNew(2025, 1, 1, 0)))
}

func TestIntervalReversed(t *testing.T) {
	t.Parallel()
	interval, err := stamp.NewInterval(
		stamp.MustNew(2024, 5, 1, 0),
		stamp.MustNew(2024, 4, 1, 0),
	)
	assert.Equal(t, err, nil)
	assert.True(t, interval.Reversed())
	assert.False(t, interval.IsMatch(stamp.MustNew(2024, 4, 15, 0)))
}

func TestNewIntervalIncomplete(t *testing.T) {
	t.Parallel()
	var partial stamp.Timestamp
	partial.TrySet(stamp.Year, 2024)

	_, err := stamp.NewInterval(partial, stamp.MustNew(2024, 1, 1, 0))
	assert.ErrorIs(t, err, stamp.ErrInvalidTimestamp)
	_, err = stamp.NewInterval(stamp.MustNew(2024, 1, 1, 0), partial)
	assert.ErrorIs(t, err, stamp.ErrInvalidTimestamp)
}

func TestIntervalSetMatch(t *testing.T) {
	t.Parallel()
	set := stamp.IntervalSet{
		{Low: stamp.MustNew(2024, 1, 1, 0), High: stamp.MustNew(2024, 1, 31, 23)},
		{Low: stamp.MustNew(2024, 1, 15, 0), High: stamp.MustNew(2024, 2, 15, 0)},
		{Low: stamp.MustNew(2030, 1, 1, 0), High: stamp.MustNew(2030, 1, 1, 0)},
	}
	hits := make([]bool, len(set))

	assert.Equal(t, set.Match(stamp.MustNew(2024, 1, 20, 5), hits), 2)
	assert.Equal(t, hits, []bool{true, true, false})

	// idempotent
	assert.Equal(t, set.Match(stamp.MustNew(2024, 1, 20, 5), hits), 2)
	assert.Equal(t, hits, []bool{true, true, false})

	assert.Equal(t, set.Match(stamp.MustNew(1999, 1, 1, 0), hits), 0)
	assert.Equal(t, hits, []bool{true, true, false})
}

func TestIntervalError(t *testing.T) {
	t.Parallel()
	cause := errors.New("truncated")
	err := stamp.IntervalError(3, cause)
	assert.ErrorIs(t, err, stamp.ErrInvalidInterval)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, err.Error(), fmt.Sprintf("%s #3: truncated", stamp.ErrInvalidInterval))

	err = stamp.IntervalError(1, nil)
	assert.Equal(t, err.Error(), fmt.Sprintf("%s #1", stamp.ErrInvalidInterval))
}
