package views

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"nursing-ward-server/internal/models"
)

// TrendLabelLayout formats the x-axis labels of a vitals trend.
const TrendLabelLayout = "2006-01-02 15:04"

// VitalsTrend is a chronological chart series. Slices are index aligned;
// a nil entry is a reading without that measurement.
type VitalsTrend struct {
	PatientID     uint        `json:"patientId"`
	Labels        []string    `json:"labels"`
	Timestamps    []time.Time `json:"timestamps"`
	Temperature   []*float64  `json:"temperature"`
	Pulse         []*float64  `json:"pulse"`
	BloodPressure []*string   `json:"bloodPressure"`
}

// Chronological returns a copy of newest-first readings in oldest-first order.
func Chronological(readings []models.VitalReading) []models.VitalReading {
	return lo.Reverse(slices.Clone(readings))
}

// Trend builds the chart series from readings as returned by the store,
// newest first.
func Trend(patientID uint, readings []models.VitalReading) VitalsTrend {
	ordered := Chronological(readings)
	if ordered == nil {
		ordered = []models.VitalReading{}
	}
	return VitalsTrend{
		PatientID: patientID,
		Labels: lo.Map(ordered, func(v models.VitalReading, _ int) string {
			return v.Timestamp.UTC().Format(TrendLabelLayout)
		}),
		Timestamps: lo.Map(ordered, func(v models.VitalReading, _ int) time.Time {
			return v.Timestamp
		}),
		Temperature: lo.Map(ordered, func(v models.VitalReading, _ int) *float64 {
			return v.Temperature
		}),
		Pulse: lo.Map(ordered, func(v models.VitalReading, _ int) *float64 {
			return v.Pulse
		}),
		BloodPressure: lo.Map(ordered, func(v models.VitalReading, _ int) *string {
			return v.BloodPressure
		}),
	}
}
