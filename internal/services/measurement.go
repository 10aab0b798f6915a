package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Measurement is an optional numeric vital sign as sent by clients. It
// accepts a JSON number, a numeric string, or an empty string or null,
// which leave it absent.
type Measurement struct {
	Value *float64
}

// Present reports whether a value was supplied.
func (m Measurement) Present() bool {
	return m.Value != nil
}

func (m *Measurement) UnmarshalJSON(data []byte) error {
	m.Value = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("measurement %s is not a number", data)
	}
	m.Value = &f
	return nil
}

func (m Measurement) MarshalJSON() ([]byte, error) {
	if m.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*m.Value)
}
