// Package views derives display state from stored records. Nothing here is
// persisted; every value is recomputed from the records and a clock.
package views

import (
	"time"

	"github.com/samber/lo"

	"nursing-ward-server/internal/models"
)

// Status colors.
const (
	ColorCompleted  = "#2e7d32"
	ColorInProgress = "#1565c0"
	ColorDelayed    = "#d32f2f"
	ColorPending    = "#f57c00"
)

// Session is a joined therapy schedule annotated for display.
type Session struct {
	models.ScheduleWithPatient
	Delayed     bool   `json:"delayed"`
	StatusColor string `json:"statusColor"`
}

// IsDelayed reports whether a session is still Pending although its
// scheduled time is strictly before now.
func IsDelayed(status models.TherapyStatus, scheduled, now time.Time) bool {
	return status == models.StatusPending && scheduled.Before(now)
}

// StatusColor maps a session to its display color.
func StatusColor(status models.TherapyStatus, scheduled, now time.Time) string {
	switch {
	case status == models.StatusCompleted:
		return ColorCompleted
	case status == models.StatusInProgress:
		return ColorInProgress
	case IsDelayed(status, scheduled, now):
		return ColorDelayed
	default:
		return ColorPending
	}
}

// Annotate derives the delayed flag and color of every row against now.
func Annotate(rows []models.ScheduleWithPatient, now time.Time) []Session {
	return lo.Map(rows, func(row models.ScheduleWithPatient, _ int) Session {
		return Session{
			ScheduleWithPatient: row,
			Delayed:             IsDelayed(row.Status, row.ScheduledTime, now),
			StatusColor:         StatusColor(row.Status, row.ScheduledTime, now),
		}
	})
}
