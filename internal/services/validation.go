package services

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"nursing-ward-server/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match request bodies.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("therapy_status", func(fl validator.FieldLevel) bool {
		return models.TherapyStatus(fl.Field().String()).Valid()
	})
	return v
}

// validateInput runs struct tag validation and converts the first failure
// into a ValidationError.
func validateInput(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fe := errs[0]
	return &ValidationError{Field: fe.Field(), Message: describe(fe)}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "therapy_status":
		return "must be one of Pending, In Progress, Completed"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// Layouts accepted for scheduled times. Zone-less forms, which is what HTML
// datetime-local inputs send, are read in the ward's configured location.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

func parseScheduledTime(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &ValidationError{Field: "scheduledTime", Message: "must be an ISO-8601 timestamp"}
}

func parseStatus(raw string) (models.TherapyStatus, error) {
	s := models.TherapyStatus(raw)
	if !s.Valid() {
		return "", &ValidationError{Field: "status", Message: "must be one of Pending, In Progress, Completed"}
	}
	return s, nil
}
