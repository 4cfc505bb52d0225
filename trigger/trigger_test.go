package trigger_test

import (
	"testing"
	"time"

	"github.com/chiller/stampsim/internal/assert"
	"github.com/chiller/stampsim/trigger"
)

// 2020-01-01 00:00:00 UTC
var fromEpoch int64 = 1577836800000000000

func TestSimpleTrigger(t *testing.T) {
	simpleTrigger := trigger.NewSimpleTrigger(time.Second * 2)
	assert.Equal(t, simpleTrigger.Description(), "SimpleTrigger::2s")

	next, err := simpleTrigger.NextFireTime(fromEpoch)
	assert.Equal(t, next, 1577836802000000000)
	assert.Equal(t, err, nil)

	next, err = simpleTrigger.NextFireTime(next)
	assert.Equal(t, next, 1577836804000000000)
	assert.Equal(t, err, nil)
}

func TestCronTrigger(t *testing.T) {
	cronTrigger, err := trigger.NewCronTrigger("0 * * * * * *")
	assert.Equal(t, err, nil)
	assert.Equal(t, cronTrigger.Description(), "CronTrigger::0 * * * * * *::UTC")

	next, err := cronTrigger.NextFireTime(fromEpoch)
	assert.Equal(t, err, nil)
	assert.Equal(t, time.Unix(0, next).UTC(), time.Date(2020, 1, 1, 0, 1, 0, 0, time.UTC))

	next, err = cronTrigger.NextFireTime(next)
	assert.Equal(t, err, nil)
	assert.Equal(t, time.Unix(0, next).UTC(), time.Date(2020, 1, 1, 0, 2, 0, 0, time.UTC))
}

func TestCronTriggerExpired(t *testing.T) {
	cronTrigger, err := trigger.NewCronTrigger("0 0 0 1 1 * 2019")
	assert.Equal(t, err, nil)

	_, err = cronTrigger.NextFireTime(fromEpoch)
	assert.ErrorIs(t, err, trigger.ErrTriggerExpired)
}

func TestCronTriggerInvalid(t *testing.T) {
	_, err := trigger.NewCronTrigger("not a cron")
	assert.NotEqual(t, err, nil)

	_, err = trigger.NewCronTriggerWithLoc("* * * * *", nil)
	assert.NotEqual(t, err, nil)
}
