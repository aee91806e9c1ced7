package payroll

import (
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	"github.com/brewhr/brewhr-backend-go/internal/domain/payroll"
)

// PeriodFor derives the inclusive pay period containing ref from the
// employee's pay frequency and pay start date. The pay start date
// anchors the cycle; periods tile forward (and backward) from it with
// no gaps.
func PeriodFor(emp employee.Employee, ref time.Time, loc *time.Location) (time.Time, time.Time, error) {
	if emp.PayStartDate == nil {
		return time.Time{}, time.Time{}, payroll.ErrPayrollConfigMissing
	}

	anchor := dateOf(*emp.PayStartDate, loc)
	day := dateOf(ref, loc)

	switch emp.PayFrequency {
	case employee.PayFrequencyWeekly:
		return tiledPeriod(anchor, day, 7)
	case employee.PayFrequencyBiWeekly:
		return tiledPeriod(anchor, day, 14)
	case employee.PayFrequencyMonthly:
		return monthlyPeriod(anchor, day)
	default:
		return time.Time{}, time.Time{}, payroll.ErrPayrollConfigMissing
	}
}

// tiledPeriod finds the fixed-length cycle containing day.
func tiledPeriod(anchor, day time.Time, lengthDays int) (time.Time, time.Time, error) {
	daysSince := daysBetween(anchor, day)
	cycles := daysSince / lengthDays
	if daysSince < 0 && daysSince%lengthDays != 0 {
		cycles--
	}
	start := anchor.AddDate(0, 0, cycles*lengthDays)
	end := start.AddDate(0, 0, lengthDays-1)
	return start, end, nil
}

// monthlyPeriod finds the month-long cycle containing day. The anchor's
// day-of-month starts each cycle; months shorter than the anchor day
// clamp to their last day.
func monthlyPeriod(anchor, day time.Time) (time.Time, time.Time, error) {
	months := (day.Year()-anchor.Year())*12 + int(day.Month()) - int(anchor.Month())
	start := addMonthsClamped(anchor, months)
	if start.After(day) {
		months--
		start = addMonthsClamped(anchor, months)
	}
	next := addMonthsClamped(anchor, months+1)
	return start, next.AddDate(0, 0, -1), nil
}

// addMonthsClamped moves the anchor forward by whole months, clamping
// to the last day of months too short for the anchor's day-of-month.
// AddDate alone would normalize Jan 31 + 1 month into Mar 3.
func addMonthsClamped(anchor time.Time, months int) time.Time {
	firstOfTarget := time.Date(anchor.Year(), anchor.Month()+time.Month(months), 1, 0, 0, 0, 0, anchor.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := anchor.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, anchor.Location())
}

// daysBetween counts calendar days from a to b (negative when b is
// earlier). Both arguments are local midnights; re-reading their date
// components in UTC keeps the count exact in timezones where a DST
// transition makes a local day shorter or longer than 24 hours.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

func dateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
