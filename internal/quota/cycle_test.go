package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCycleAt(t *testing.T) {
	cycle := CycleAt(time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC))

	assert.Equal(t, time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), cycle.Start)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), cycle.End)
	assert.Equal(t, "2026-12", cycle.Key())
}

func TestCycleAt_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)

	// 22:00 on Oct 31 at UTC-3 is already November in UTC
	cycle := CycleAt(time.Date(2026, time.October, 31, 22, 0, 0, 0, loc))

	assert.Equal(t, "2026-11", cycle.Key())
}

func TestCycle_Contains(t *testing.T) {
	cycle := CycleAt(october)

	assert.True(t, cycle.Contains(cycle.Start))
	assert.True(t, cycle.Contains(october))
	assert.False(t, cycle.Contains(cycle.End))
	assert.False(t, cycle.Contains(cycle.Start.Add(-time.Nanosecond)))
}
