package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"nursing-ward-server/internal/models"
	"nursing-ward-server/internal/views"
)

// CreateSessionInput carries a new therapy session. ScheduledTime is an
// ISO-8601 string; Status defaults to Pending.
type CreateSessionInput struct {
	PatientID     uint   `json:"patientId" validate:"required"`
	TherapyType   string `json:"therapyType" validate:"required"`
	Therapist     string `json:"therapist" validate:"required"`
	ScheduledTime string `json:"scheduledTime" validate:"required"`
	Status        string `json:"status" validate:"omitempty,therapy_status"`
}

// UpdateStatusInput is the body of a status change.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,therapy_status"`
}

// ScheduleService books therapy sessions and moves them between statuses.
type ScheduleService struct {
	db  *gorm.DB
	now func() time.Time
	loc *time.Location
}

// NewScheduleService creates a ScheduleService reading the wall clock.
func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db, now: time.Now, loc: time.UTC}
}

// WithClock replaces the clock used to derive the delayed flag.
func (s *ScheduleService) WithClock(now func() time.Time) *ScheduleService {
	s.now = now
	return s
}

// WithLocation sets the zone used for scheduled times sent without an offset.
func (s *ScheduleService) WithLocation(loc *time.Location) *ScheduleService {
	if loc != nil {
		s.loc = loc
	}
	return s
}

// Create books a session for an existing patient.
func (s *ScheduleService) Create(ctx context.Context, in CreateSessionInput) (*models.TherapySchedule, error) {
	in.TherapyType = strings.TrimSpace(in.TherapyType)
	in.Therapist = strings.TrimSpace(in.Therapist)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	scheduled, err := parseScheduledTime(in.ScheduledTime, s.loc)
	if err != nil {
		return nil, err
	}
	status := models.StatusPending
	if in.Status != "" {
		status = models.TherapyStatus(in.Status)
	}

	ok, err := patientExists(ctx, s.db, in.PatientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ReferenceError{Entity: "patient", ID: in.PatientID}
	}

	schedule := models.TherapySchedule{
		PatientID:     in.PatientID,
		TherapyType:   in.TherapyType,
		Therapist:     in.Therapist,
		ScheduledTime: scheduled,
		Status:        status,
	}
	if err := s.db.WithContext(ctx).Create(&schedule).Error; err != nil {
		// Stores that do carry a foreign key report the race with a delete here.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, &ReferenceError{Entity: "patient", ID: in.PatientID}
		}
		return nil, storeErr("create therapy schedule", err)
	}
	return &schedule, nil
}

// List returns every session whose patient still exists, earliest first,
// annotated with the delayed flag at the current time.
func (s *ScheduleService) List(ctx context.Context) ([]views.Session, error) {
	return s.list(ctx, nil)
}

// ListForPatient is List restricted to one patient.
func (s *ScheduleService) ListForPatient(ctx context.Context, patientID uint) ([]views.Session, error) {
	return s.list(ctx, &patientID)
}

func (s *ScheduleService) list(ctx context.Context, patientID *uint) ([]views.Session, error) {
	rows := []models.ScheduleWithPatient{}
	query := s.db.WithContext(ctx).
		Model(&models.TherapySchedule{}).
		Select("therapy_schedules.*, patients.name AS patient_name").
		Joins("JOIN patients ON patients.id = therapy_schedules.patient_id")
	if patientID != nil {
		query = query.Where("therapy_schedules.patient_id = ?", *patientID)
	}
	err := query.
		Order("therapy_schedules.scheduled_time ASC").
		Order("therapy_schedules.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr("list therapy schedules", err)
	}
	return views.Annotate(rows, s.now()), nil
}

// UpdateStatus overwrites the status of a session and nothing else. An
// invalid status is rejected before the store is touched.
func (s *ScheduleService) UpdateStatus(ctx context.Context, id uint, in UpdateStatusInput) (*models.TherapySchedule, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	status, err := parseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	var schedule models.TherapySchedule
	if err := s.db.WithContext(ctx).First(&schedule, id).Error; err != nil {
		if isNotFound(err) {
			return nil, &NotFoundError{Entity: "therapy schedule", ID: id}
		}
		return nil, storeErr("get therapy schedule", err)
	}

	if err := s.db.WithContext(ctx).Model(&schedule).Update("status", status).Error; err != nil {
		return nil, storeErr("update therapy status", err)
	}
	schedule.Status = status
	return &schedule, nil
}
