package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"nursing-ward-server/internal/config"
	"nursing-ward-server/internal/models"
	"nursing-ward-server/internal/views"
)

// RosterProvider supplies read-only shift assignments.
type RosterProvider interface {
	Assignments(ctx context.Context) ([]models.ShiftAssignment, error)
}

// StaticRoster serves a fixed list of assignments.
type StaticRoster struct {
	entries []models.ShiftAssignment
}

// NewStaticRoster serves entries, or the built-in roster when entries is nil.
func NewStaticRoster(entries []models.ShiftAssignment) *StaticRoster {
	if entries == nil {
		entries = models.DefaultRoster()
	}
	return &StaticRoster{entries: entries}
}

func (r *StaticRoster) Assignments(context.Context) ([]models.ShiftAssignment, error) {
	out := make([]models.ShiftAssignment, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// DatabaseRoster reads the shift_assignments table, which is fed from outside
// this service.
type DatabaseRoster struct {
	db *gorm.DB
}

func NewDatabaseRoster(db *gorm.DB) *DatabaseRoster {
	return &DatabaseRoster{db: db}
}

func (r *DatabaseRoster) Assignments(ctx context.Context) ([]models.ShiftAssignment, error) {
	rows := []models.ShiftAssignment{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, storeErr("list shift assignments", err)
	}
	return rows, nil
}

// NewRosterProvider picks the provider configured by source.
func NewRosterProvider(source config.RosterSource, db *gorm.DB) (RosterProvider, error) {
	switch source {
	case config.RosterStatic, "":
		return NewStaticRoster(nil), nil
	case config.RosterDatabase:
		return NewDatabaseRoster(db), nil
	default:
		return nil, fmt.Errorf("unknown roster source %q", source)
	}
}

// GroupedRoster fetches assignments from p and groups them by shift.
func GroupedRoster(ctx context.Context, p RosterProvider) ([]views.ShiftGroup, error) {
	assignments, err := p.Assignments(ctx)
	if err != nil {
		return nil, err
	}
	return views.GroupByShift(assignments), nil
}
