package attendance

import (
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/domain/attendance"
)

// WorkedDay is one calendar day's worked interval: the day's first
// clock-in and its matching clock-out.
type WorkedDay struct {
	ClockIn  time.Time
	ClockOut time.Time
}

// TruncatedHours is the payroll-path figure: whole hours worked,
// fraction discarded.
func (d WorkedDay) TruncatedHours() int {
	return int(d.ClockOut.Sub(d.ClockIn).Hours())
}

// PreciseHours is the summary-path figure: fractional hours worked.
// The two are deliberately separate; callers choose which policy applies.
func (d WorkedDay) PreciseHours() float64 {
	return d.ClockOut.Sub(d.ClockIn).Hours()
}

// Aggregate reduces raw logs to one worked interval per local calendar
// day, keyed "2006-01-02". Only logs whose clock-in falls in
// [periodStart, periodEnd) are considered. Within a day the earliest
// clock-in wins; equal timestamps keep the earlier record in input
// order, so repeated runs on the same input agree. A day whose earliest
// record is still open contributes nothing.
func Aggregate(logs []attendance.Log, periodStart, periodEnd time.Time, loc *time.Location) map[string]WorkedDay {
	earliest := make(map[string]attendance.Log)

	for _, log := range logs {
		if log.ClockIn.Before(periodStart) || !log.ClockIn.Before(periodEnd) {
			continue
		}
		day := log.ClockIn.In(loc).Format("2006-01-02")
		if current, ok := earliest[day]; !ok || log.ClockIn.Before(current.ClockIn) {
			earliest[day] = log
		}
	}

	result := make(map[string]WorkedDay, len(earliest))
	for day, log := range earliest {
		if log.ClockOut == nil {
			continue
		}
		result[day] = WorkedDay{ClockIn: log.ClockIn, ClockOut: *log.ClockOut}
	}
	return result
}
