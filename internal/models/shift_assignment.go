package models

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Known shift labels. Rosters may carry other labels too.
const (
	ShiftMorning = "Morning"
	ShiftEvening = "Evening"
	ShiftNight   = "Night"
)

// ShiftAssignment maps a nurse to a shift and the patients they cover.
// It is reference data: the service never writes it.
type ShiftAssignment struct {
	ID        uint                       `gorm:"primaryKey;autoIncrement" json:"id,omitempty"`
	NurseName string                     `gorm:"size:100;not null" json:"nurseName"`
	Shift     string                     `gorm:"size:50" json:"shift"`
	Patients  datatypes.JSONSlice[string] `json:"patients"`
}

// DefaultRoster is the built-in roster served when no external source is configured.
func DefaultRoster() []ShiftAssignment {
	return []ShiftAssignment{
		{NurseName: "Mareeswari", Shift: ShiftMorning, Patients: datatypes.JSONSlice[string]{"Ravi Kumar", "Deepa Rajan"}},
		{NurseName: "Anjali Devi", Shift: ShiftEvening, Patients: datatypes.JSONSlice[string]{"Suresh Menon"}},
		{NurseName: "Priya Raman", Shift: ShiftNight, Patients: datatypes.JSONSlice[string]{"Ravi Kumar"}},
	}
}

// SeedRoster loads assignments into an empty shift_assignments table. A
// table that already holds rows is left alone and reports seeded=false.
func SeedRoster(db *gorm.DB, assignments []ShiftAssignment) (seeded bool, err error) {
	var existing ShiftAssignment
	err = db.First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if len(assignments) == 0 {
		return false, nil
	}
	if err := db.Create(&assignments).Error; err != nil {
		return false, err
	}
	return true, nil
}
