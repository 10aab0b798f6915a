package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"nursing-ward-server/internal/config"
)

func TestVitalsService_Record_Validation(t *testing.T) {
	db := newTestDB(t)
	p := mustCreatePatient(t, NewPatientService(db, config.DeleteOrphan), "Ravi Kumar")
	svc := NewVitalsService(db)
	ctx := context.Background()

	cases := map[string]RecordVitalsInput{
		"missing patient":      {Pulse: measure(80)},
		"no measurements":      {PatientID: p.ID},
		"blank blood pressure": {PatientID: p.ID, BloodPressure: strPtr("  ")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Record(ctx, in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}

	_, err := svc.Record(ctx, RecordVitalsInput{PatientID: p.ID + 5, Temperature: measure(98.6)})
	var rerr *ReferenceError
	if !errors.As(err, &rerr) {
		t.Errorf("expected ReferenceError, got %v", err)
	}
}

func TestVitalsService_Scenario(t *testing.T) {
	db := newTestDB(t)
	p := mustCreatePatient(t, NewPatientService(db, config.DeleteOrphan), "Ravi Kumar")
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	svc := NewVitalsService(db).WithClock(stepClock(start))
	ctx := context.Background()

	first, err := svc.Record(ctx, RecordVitalsInput{PatientID: p.ID, Temperature: measure(99.1)})
	if err != nil {
		t.Fatalf("record temperature: %v", err)
	}
	if !first.Timestamp.Equal(start) {
		t.Errorf("expected server timestamp %v, got %v", start, first.Timestamp)
	}
	second, err := svc.Record(ctx, RecordVitalsInput{PatientID: p.ID, Pulse: measure(80)})
	if err != nil {
		t.Fatalf("record pulse: %v", err)
	}

	readings, err := svc.List(ctx, p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(readings) != 2 || readings[0].ID != second.ID || readings[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", readings)
	}
	if readings[1].Temperature == nil || *readings[1].Temperature != 99.1 || readings[1].Pulse != nil {
		t.Errorf("unexpected first reading: %+v", readings[1])
	}

	trend, err := svc.Trend(ctx, p.ID)
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if len(trend.Timestamps) != 2 || !trend.Timestamps[0].Equal(start) {
		t.Errorf("expected chronological trend, got %v", trend.Timestamps)
	}
	if trend.Temperature[0] == nil || trend.Pulse[1] == nil {
		t.Errorf("unexpected trend series: %+v", trend)
	}
}

func TestVitalsService_List_Empty(t *testing.T) {
	db := newTestDB(t)
	p := mustCreatePatient(t, NewPatientService(db, config.DeleteOrphan), "Deepa Rajan")

	readings, err := NewVitalsService(db).List(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if readings == nil || len(readings) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", readings)
	}
}

func TestMeasurement_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		body    string
		want    *float64
		wantErr bool
	}{
		{body: `{"pulse":80}`, want: &[]float64{80}[0]},
		{body: `{"pulse":"99.1"}`, want: &[]float64{99.1}[0]},
		{body: `{"pulse":" 72 "}`, want: &[]float64{72}[0]},
		{body: `{"pulse":""}`},
		{body: `{"pulse":null}`},
		{body: `{}`},
		{body: `{"pulse":"fast"}`, wantErr: true},
		{body: `{"pulse":"NaN"}`, wantErr: true},
		{body: `{"pulse":true}`, wantErr: true},
	}
	for _, tc := range cases {
		var in RecordVitalsInput
		err := json.Unmarshal([]byte(tc.body), &in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tc.body)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.body, err)
			continue
		}
		got := in.Pulse.Value
		if (got == nil) != (tc.want == nil) || (got != nil && *got != *tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.body, tc.want, got)
		}
	}
}

func TestVitalsService_Record_FormStrings(t *testing.T) {
	db := newTestDB(t)
	p := mustCreatePatient(t, NewPatientService(db, config.DeleteOrphan), "Ravi Kumar")
	svc := NewVitalsService(db)
	ctx := context.Background()

	var in RecordVitalsInput
	body := fmt.Sprintf(`{"patientId":%d,"bloodPressure":"120/80","temperature":"","pulse":""}`, p.ID)
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	reading, err := svc.Record(ctx, in)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if reading.BloodPressure == nil || *reading.BloodPressure != "120/80" || reading.Temperature != nil || reading.Pulse != nil {
		t.Errorf("unexpected reading: %+v", reading)
	}

	in = RecordVitalsInput{}
	body = fmt.Sprintf(`{"patientId":%d,"bloodPressure":"","temperature":"","pulse":""}`, p.ID)
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	_, err = svc.Record(ctx, in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for empty form, got %v", err)
	}
}
