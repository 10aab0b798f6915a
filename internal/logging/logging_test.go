package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
)

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Info().Msg("dropped")
	l.Warn().Str("patient", "Ravi Kumar").Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line should be filtered at warn level: %s", out)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", out, err)
	}
	if entry["message"] != "kept" || entry["patient"] != "Ravi Kumar" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewWithWriter_InvalidLevel(t *testing.T) {
	if _, err := NewWithWriter(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestGorm_RoutesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	l, _ := NewWithWriter(&buf, "info")

	gl := Gorm(l, "development")
	gl.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	if !strings.Contains(buf.String(), `"component":"gorm"`) {
		t.Errorf("expected gorm component field, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "SELECT 1") {
		t.Errorf("expected SQL in trace output, got %s", buf.String())
	}
}

func TestGorm_KeepsLevels(t *testing.T) {
	var buf bytes.Buffer
	l, _ := NewWithWriter(&buf, "warn")
	gl := Gorm(l, "production")
	ctx := context.Background()

	gl.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT * FROM patients", 3
	}, nil)
	if buf.Len() != 0 {
		t.Fatalf("fast successful query should not be logged in production, got %s", buf.String())
	}

	gl.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT * FROM patients WHERE id = 1", 0
	}, gorm.ErrRecordNotFound)
	if buf.Len() != 0 {
		t.Fatalf("record not found should not be logged, got %s", buf.String())
	}

	gl.Trace(ctx, time.Now(), func() (string, int64) {
		return "INSERT INTO vitals", 0
	}, errors.New("disk full"))
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "error" || entry["error"] != "disk full" || entry["sql"] != "INSERT INTO vitals" {
		t.Errorf("unexpected error entry: %v", entry)
	}

	buf.Reset()
	gl.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT pg_sleep(1)", 1
	}, nil)
	if !strings.Contains(buf.String(), `"level":"warn"`) || !strings.Contains(buf.String(), "slow query") {
		t.Errorf("expected slow query warning, got %s", buf.String())
	}
}
