package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrVitalsImmutable is returned when something tries to rewrite a stored reading.
var ErrVitalsImmutable = errors.New("vital readings are immutable")

// VitalReading is one append-only set of measurements. At least one of the
// three measurements is present.
type VitalReading struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     uint      `gorm:"not null;index:idx_vitals_patient_time,priority:1" json:"patientId"`
	BloodPressure *string   `gorm:"size:20" json:"bloodPressure"`
	Temperature   *float64  `json:"temperature"`
	Pulse         *float64  `json:"pulse"`
	Timestamp     time.Time `gorm:"not null;index:idx_vitals_patient_time,priority:2" json:"timestamp"`
}

func (VitalReading) TableName() string {
	return "vitals"
}

// BeforeUpdate blocks updates issued through the model.
func (v *VitalReading) BeforeUpdate(tx *gorm.DB) error {
	return ErrVitalsImmutable
}
