package leave

import (
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/domain/leave"
)

// CountLeaveDays walks the inclusive period [from, to] and counts the
// calendar days covered by approved requests: unpaid days and
// paid-made-up days separately. A day covered by several overlapping
// requests counts once; unpaid coverage wins over paid coverage.
// Only unpaid days reduce pay.
func CountLeaveDays(requests []leave.Request, from, to time.Time, loc *time.Location) (unpaidDays, paidMadeUpDays int) {
	start := dateOf(from, loc)
	end := dateOf(to, loc)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		unpaid := false
		paidMadeUp := false
		for _, req := range requests {
			if req.Status != leave.StatusApproved {
				continue
			}
			if !covers(req, day, loc) {
				continue
			}
			switch req.LeaveType {
			case leave.LeaveTypeUnpaid:
				unpaid = true
			case leave.LeaveTypePaidMadeUp:
				paidMadeUp = true
			}
		}
		if unpaid {
			unpaidDays++
		} else if paidMadeUp {
			paidMadeUpDays++
		}
	}
	return unpaidDays, paidMadeUpDays
}

// covers reports whether day falls inside the request's inclusive range.
func covers(req leave.Request, day time.Time, loc *time.Location) bool {
	start := dateOf(req.StartDate, loc)
	end := dateOf(req.EndDate, loc)
	return !day.Before(start) && !day.After(end)
}

// dateOf rebuilds the local calendar date from its components, dropping
// the time of day. Serialized instants never cross this boundary intact.
func dateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
