package views

import (
	"github.com/samber/lo"

	"nursing-ward-server/internal/models"
)

// UnknownShift labels assignments that carry no shift.
const UnknownShift = "Unknown"

var shiftColors = map[string]string{
	models.ShiftMorning: "#E3F2FD",
	models.ShiftEvening: "#FFF3E0",
	models.ShiftNight:   "#EDE7F6",
	UnknownShift:        "#F5F5F5",
}

// ShiftGroup is every assignment sharing one shift label.
type ShiftGroup struct {
	Shift       string                   `json:"shift"`
	Color       string                   `json:"color"`
	Assignments []models.ShiftAssignment `json:"assignments"`
}

// ShiftColor returns the card color for a shift label.
func ShiftColor(label string) string {
	if c, ok := shiftColors[label]; ok {
		return c
	}
	return "#FFF"
}

func shiftLabel(a models.ShiftAssignment) string {
	if a.Shift == "" {
		return UnknownShift
	}
	return a.Shift
}

// GroupByShift groups assignments by shift label. Groups appear in the order
// their label is first seen; assignments keep their input order.
func GroupByShift(assignments []models.ShiftAssignment) []ShiftGroup {
	labels := lo.Uniq(lo.Map(assignments, func(a models.ShiftAssignment, _ int) string {
		return shiftLabel(a)
	}))
	grouped := lo.GroupBy(assignments, shiftLabel)

	return lo.Map(labels, func(label string, _ int) ShiftGroup {
		return ShiftGroup{
			Shift:       label,
			Color:       ShiftColor(label),
			Assignments: grouped[label],
		}
	})
}
