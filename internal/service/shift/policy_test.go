package shift

import (
	"testing"
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) *Policy {
	t.Helper()
	p, err := NewPolicy(config.ShiftConfig{
		EarlyBirdCutoff:       "10:15",
		EarlyBirdReductionMin: 10,
		LateBufferMin:         10,
	})
	require.NoError(t, err)
	return p
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 9, hour, min, 0, 0, time.UTC)
}

func TestNewPolicy_InvalidCutoff(t *testing.T) {
	_, err := NewPolicy(config.ShiftConfig{EarlyBirdCutoff: "25:00"})
	assert.Error(t, err)
}

func TestIsEarlyBird(t *testing.T) {
	p := testPolicy(t)

	cases := []struct {
		name    string
		clockIn time.Time
		want    bool
	}{
		{"well before cutoff", at(9, 30), true},
		{"one minute before cutoff", at(10, 14), true},
		{"exactly at cutoff", at(10, 15), false},
		{"after cutoff", at(10, 30), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, p.IsEarlyBird(c.clockIn))
		})
	}
}

func TestEffectiveStandardMinutes(t *testing.T) {
	p := testPolicy(t)

	// 8h shift, early bird at 10:00 works 470 minutes; at 10:30 the full 480.
	assert.Equal(t, 470, p.EffectiveStandardMinutes(8, p.IsEarlyBird(at(10, 0))))
	assert.Equal(t, 480, p.EffectiveStandardMinutes(8, p.IsEarlyBird(at(10, 30))))
	assert.Equal(t, 440, p.EffectiveStandardMinutes(7.5, true))
}

func TestShiftEnd(t *testing.T) {
	p := testPolicy(t)

	earlyIn := at(10, 0)
	assert.Equal(t, earlyIn.Add(470*time.Minute), p.ShiftEnd(earlyIn, 8))

	lateIn := at(10, 30)
	assert.Equal(t, lateIn.Add(480*time.Minute), p.ShiftEnd(lateIn, 8))
}

func TestIsLate(t *testing.T) {
	p := testPolicy(t)

	cases := []struct {
		name    string
		clockIn time.Time
		want    bool
	}{
		{"on time", at(10, 0), false},
		{"inside buffer", at(10, 9), false},
		{"exactly at buffer edge", at(10, 10), false},
		{"one minute past buffer", at(10, 11), true},
		{"well past buffer", at(11, 0), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			late, err := p.IsLate(c.clockIn, "10:00")
			require.NoError(t, err)
			assert.Equal(t, c.want, late)
		})
	}

	// Seconds past the buffer edge count as late.
	edge := time.Date(2026, 3, 9, 10, 10, 1, 0, time.UTC)
	late, err := p.IsLate(edge, "10:00")
	require.NoError(t, err)
	assert.True(t, late)

	_, err = p.IsLate(at(10, 0), "bad")
	assert.Error(t, err)
}

func TestWeekdayIndex(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Sunday", 0},
		{"Monday", 1},
		{"Tuesday", 2},
		{"Saturday", 6},
	}
	for _, c := range cases {
		got, err := WeekdayIndex(c.name)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := WeekdayIndex("Someday")
	assert.Error(t, err)
}
