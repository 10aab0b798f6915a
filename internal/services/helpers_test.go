package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"nursing-ward-server/internal/config"
	"nursing-ward-server/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := models.InitDB(models.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		Logger: gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// stepClock returns a clock that advances one minute per call from start.
func stepClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(time.Minute)
		return t
	}
}

func mustCreatePatient(t *testing.T, svc *PatientService, name string) *models.Patient {
	t.Helper()
	p, err := svc.Create(context.Background(), CreatePatientInput{Name: name, Age: 45, AssignedNurse: "Mareeswari"})
	if err != nil {
		t.Fatalf("create patient %q: %v", name, err)
	}
	return p
}

func strPtr(s string) *string { return &s }
func measure(f float64) Measurement { return Measurement{Value: &f} }
