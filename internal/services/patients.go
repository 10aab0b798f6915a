package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"nursing-ward-server/internal/config"
	"nursing-ward-server/internal/models"
)

// CreatePatientInput carries the fields accepted when admitting a patient.
type CreatePatientInput struct {
	Name          string `json:"patientName" validate:"required"`
	Age           int    `json:"age" validate:"gt=0"`
	RoomNumber    string `json:"roomNumber"`
	AssignedNurse string `json:"assignedNurse" validate:"required"`
	CareNotes     string `json:"careNotes"`
}

// UpdatePatientInput carries the two mutable patient fields. A nil field is
// left untouched; an empty string clears it.
type UpdatePatientInput struct {
	RoomNumber *string `json:"roomNumber"`
	CareNotes  *string `json:"careNotes"`
}

// PatientService is the patient directory.
type PatientService struct {
	db     *gorm.DB
	policy config.DeletePolicy
}

// NewPatientService creates a PatientService. policy governs what Delete
// does with schedules and vitals that reference the patient.
func NewPatientService(db *gorm.DB, policy config.DeletePolicy) *PatientService {
	if policy == "" {
		policy = config.DeleteOrphan
	}
	return &PatientService{db: db, policy: policy}
}

// Create validates and stores a new patient.
func (s *PatientService) Create(ctx context.Context, in CreatePatientInput) (*models.Patient, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.AssignedNurse = strings.TrimSpace(in.AssignedNurse)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	patient := models.Patient{
		Name:          in.Name,
		Age:           in.Age,
		RoomNumber:    strings.TrimSpace(in.RoomNumber),
		AssignedNurse: in.AssignedNurse,
		CareNotes:     strings.TrimSpace(in.CareNotes),
	}
	if err := s.db.WithContext(ctx).Create(&patient).Error; err != nil {
		return nil, storeErr("create patient", err)
	}
	return &patient, nil
}

// List returns patients newest first. A non-empty search term keeps only
// names containing it, ignoring case.
func (s *PatientService) List(ctx context.Context, search string) ([]models.Patient, error) {
	patients := []models.Patient{}
	query := s.db.WithContext(ctx).Order("id DESC")
	if term := strings.TrimSpace(search); term != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(term))+"%")
	}
	if err := query.Find(&patients).Error; err != nil {
		return nil, storeErr("list patients", err)
	}
	return patients, nil
}

// Get returns one patient.
func (s *PatientService) Get(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := s.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		if isNotFound(err) {
			return nil, &NotFoundError{Entity: "patient", ID: id}
		}
		return nil, storeErr("get patient", err)
	}
	return &patient, nil
}

// Update writes the supplied room number and/or care notes and returns the
// full record. Name, age and nurse are never touched.
func (s *PatientService) Update(ctx context.Context, id uint, in UpdatePatientInput) (*models.Patient, error) {
	updates := map[string]interface{}{}
	if in.RoomNumber != nil {
		updates["room_number"] = strings.TrimSpace(*in.RoomNumber)
	}
	if in.CareNotes != nil {
		updates["care_notes"] = strings.TrimSpace(*in.CareNotes)
	}
	if len(updates) == 0 {
		return nil, &ValidationError{Message: "no fields to update"}
	}

	patient, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Model(patient).Updates(updates)
	if res.Error != nil {
		return nil, storeErr("update patient", res.Error)
	}
	// Deleted between the read and the write.
	if res.RowsAffected == 0 {
		return nil, &NotFoundError{Entity: "patient", ID: id}
	}
	if v, ok := updates["room_number"]; ok {
		patient.RoomNumber = v.(string)
	}
	if v, ok := updates["care_notes"]; ok {
		patient.CareNotes = v.(string)
	}
	return patient, nil
}

// Delete removes a patient. Deleting an unknown id succeeds.
func (s *PatientService) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	switch s.policy {
	case config.DeleteCascade:
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("patient_id = ?", id).Delete(&models.TherapySchedule{}).Error; err != nil {
				return err
			}
			if err := tx.Where("patient_id = ?", id).Delete(&models.VitalReading{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Patient{}, id).Error
		})
		if err != nil {
			return storeErr("cascade delete patient", err)
		}
		return nil

	case config.DeleteRestrict:
		var schedules, vitals int64
		if err := db.Model(&models.TherapySchedule{}).Where("patient_id = ?", id).Count(&schedules).Error; err != nil {
			return storeErr("count patient schedules", err)
		}
		if err := db.Model(&models.VitalReading{}).Where("patient_id = ?", id).Count(&vitals).Error; err != nil {
			return storeErr("count patient vitals", err)
		}
		if schedules > 0 || vitals > 0 {
			return &ConflictError{Message: "patient still has therapy schedules or vital readings"}
		}
	}

	if err := db.Delete(&models.Patient{}, id).Error; err != nil {
		return storeErr("delete patient", err)
	}
	return nil
}

func patientExists(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&models.Patient{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, storeErr("check patient", err)
	}
	return n > 0, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
