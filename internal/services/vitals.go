package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nursing-ward-server/internal/models"
	"nursing-ward-server/internal/views"
)

// RecordVitalsInput carries one set of measurements. At least one of the
// three must be present; empty strings count as absent.
type RecordVitalsInput struct {
	PatientID     uint        `json:"patientId" validate:"required"`
	BloodPressure *string     `json:"bloodPressure"`
	Temperature   Measurement `json:"temperature"`
	Pulse         Measurement `json:"pulse"`
}

// VitalsService appends and reads vital readings. Readings are never
// updated or deleted through it.
type VitalsService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewVitalsService creates a VitalsService stamping readings with the wall clock.
func NewVitalsService(db *gorm.DB) *VitalsService {
	return &VitalsService{db: db, now: time.Now}
}

// WithClock replaces the clock used for reading timestamps.
func (s *VitalsService) WithClock(now func() time.Time) *VitalsService {
	s.now = now
	return s
}

// Record stores a reading for an existing patient with a server timestamp.
func (s *VitalsService) Record(ctx context.Context, in RecordVitalsInput) (*models.VitalReading, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.BloodPressure != nil {
		bp := strings.TrimSpace(*in.BloodPressure)
		in.BloodPressure = &bp
		if bp == "" {
			in.BloodPressure = nil
		}
	}
	if in.BloodPressure == nil && !in.Temperature.Present() && !in.Pulse.Present() {
		return nil, &ValidationError{Message: "at least one of bloodPressure, temperature or pulse is required"}
	}

	ok, err := patientExists(ctx, s.db, in.PatientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ReferenceError{Entity: "patient", ID: in.PatientID}
	}

	reading := models.VitalReading{
		PatientID:     in.PatientID,
		BloodPressure: in.BloodPressure,
		Temperature:   in.Temperature.Value,
		Pulse:         in.Pulse.Value,
		Timestamp:     s.now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&reading).Error; err != nil {
		return nil, storeErr("record vitals", err)
	}
	return &reading, nil
}

// List returns a patient's readings newest first. No readings is an empty
// slice, not an error.
func (s *VitalsService) List(ctx context.Context, patientID uint) ([]models.VitalReading, error) {
	readings := []models.VitalReading{}
	err := s.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&readings).Error
	if err != nil {
		return nil, storeErr("list vitals", err)
	}
	return readings, nil
}

// Trend returns the patient's readings as a chronological chart series.
func (s *VitalsService) Trend(ctx context.Context, patientID uint) (views.VitalsTrend, error) {
	readings, err := s.List(ctx, patientID)
	if err != nil {
		return views.VitalsTrend{}, err
	}
	return views.Trend(patientID, readings), nil
}
