package shift

import (
	"fmt"
	"math"
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/config"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
)

// Policy holds the shift timing rules: the early-bird cutoff, the shift
// reduction an early bird earns, and the grace buffer before a clock-in
// counts as late. All methods are pure.
type Policy struct {
	cutoffMinutes    int // minutes past midnight
	reductionMinutes int
	bufferMinutes    int
}

func NewPolicy(cfg config.ShiftConfig) (*Policy, error) {
	cutoff, ok := validator.IsValidTimeOfDay(cfg.EarlyBirdCutoff)
	if !ok {
		return nil, fmt.Errorf("invalid early bird cutoff %q", cfg.EarlyBirdCutoff)
	}
	if cfg.EarlyBirdReductionMin < 0 || cfg.LateBufferMin < 0 {
		return nil, fmt.Errorf("shift policy minutes must be non-negative")
	}
	return &Policy{
		cutoffMinutes:    cutoff,
		reductionMinutes: cfg.EarlyBirdReductionMin,
		bufferMinutes:    cfg.LateBufferMin,
	}, nil
}

// IsEarlyBird reports whether the clock-in's local time of day is
// strictly before the cutoff.
func (p *Policy) IsEarlyBird(clockIn time.Time) bool {
	return clockIn.Hour()*60+clockIn.Minute() < p.cutoffMinutes
}

// EffectiveStandardMinutes returns the required shift length in minutes,
// shortened for early birds.
func (p *Policy) EffectiveStandardMinutes(standardWorkHours float64, earlyBird bool) int {
	minutes := int(math.Round(standardWorkHours * 60))
	if earlyBird {
		minutes -= p.reductionMinutes
	}
	return minutes
}

// ShiftEnd returns when the shift that started at clockIn ends.
func (p *Policy) ShiftEnd(clockIn time.Time, standardWorkHours float64) time.Time {
	minutes := p.EffectiveStandardMinutes(standardWorkHours, p.IsEarlyBird(clockIn))
	return clockIn.Add(time.Duration(minutes) * time.Minute)
}

// IsLate reports whether clockIn is strictly after shiftStart plus the
// grace buffer on that calendar day. shiftStart is "HH:MM" local wall
// clock; a malformed value is a caller precondition violation.
func (p *Policy) IsLate(clockIn time.Time, shiftStart string) (bool, error) {
	startMinutes, ok := validator.IsValidTimeOfDay(shiftStart)
	if !ok {
		return false, validator.ValidationErrors{{Field: "shift_start_time", Message: "must be in HH:MM format"}}
	}
	clockInMinutes := clockIn.Hour()*60 + clockIn.Minute()
	threshold := startMinutes + p.bufferMinutes
	if clockInMinutes > threshold {
		return true, nil
	}
	if clockInMinutes < threshold {
		return false, nil
	}
	// Same minute: strictly after only when seconds have passed.
	return clockIn.Second() > 0 || clockIn.Nanosecond() > 0, nil
}

// WeekdayIndex maps a weekday name to 0 (Sunday) .. 6 (Saturday).
func WeekdayIndex(name string) (int, error) {
	d, ok := validator.ParseWeekday(name)
	if !ok {
		return 0, validator.ValidationErrors{{Field: "weekly_off_day", Message: "must be a weekday name (Sunday..Saturday)"}}
	}
	return int(d), nil
}
