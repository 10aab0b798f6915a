package models

import (
	"time"
)

// TherapyStatus represents the status of a therapy session
type TherapyStatus string

const (
	StatusPending    TherapyStatus = "Pending"
	StatusInProgress TherapyStatus = "In Progress"
	StatusCompleted  TherapyStatus = "Completed"
)

// TherapyStatuses lists every accepted status in display order.
var TherapyStatuses = []TherapyStatus{StatusPending, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the known statuses. Any status may
// follow any other; there is no transition ordering.
func (s TherapyStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// TherapySchedule is a therapy session booked for a patient. Status is the
// only column written after creation.
type TherapySchedule struct {
	BaseModel
	PatientID     uint          `gorm:"not null;index" json:"patientId"`
	TherapyType   string        `gorm:"size:100;not null" json:"therapyType"`
	Therapist     string        `gorm:"size:100;not null" json:"therapist"`
	ScheduledTime time.Time     `gorm:"not null;index" json:"scheduledTime"`
	Status        TherapyStatus `gorm:"size:20;not null;default:'Pending'" json:"status"`
}

// ScheduleWithPatient is a therapy schedule joined with its patient's name.
type ScheduleWithPatient struct {
	TherapySchedule
	PatientName string `json:"patientName"`
}
