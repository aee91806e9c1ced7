package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/domain/attendance"
	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/sse"
)

// TopicAttendance carries open-session reminders to the dashboard.
const TopicAttendance = "attendance:reminders"

// staleAfter is how long a session may stay open before it is flagged.
// Forgotten clock-outs are corrected by hand; the job never mutates
// attendance data itself.
const staleAfter = 14 * time.Hour

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	hub            *sse.Hub
	loc            *time.Location
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	hub *sse.Hub,
	loc *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		hub:            hub,
		loc:            loc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("remind_stale_open_sessions", 30*time.Minute, j.RemindStaleOpenSessions)
}

// RemindStaleOpenSessions pushes a reminder for every session that has
// been open longer than staleAfter.
func (j *AttendanceJobs) RemindStaleOpenSessions(ctx context.Context) error {
	cutoff := time.Now().In(j.loc).Add(-staleAfter)

	stale, err := j.attendanceRepo.ListOpenSessionsBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale open sessions: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	for _, session := range stale {
		name := session.EmployeeID
		if emp, err := j.employeeRepo.GetByID(ctx, session.EmployeeID); err == nil {
			name = emp.FullName
		}

		j.hub.Publish(sse.Event{
			Topic: TopicAttendance,
			Event: "stale_open_session",
			Data: map[string]interface{}{
				"attendance_id": session.ID,
				"employee_id":   session.EmployeeID,
				"employee_name": name,
				"clock_in":      session.ClockIn.In(j.loc).Format(time.RFC3339),
			},
		})
	}

	slog.Info("Cron: Flagged stale open sessions", "count", len(stale))
	return nil
}
