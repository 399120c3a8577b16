package checkins

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire and storage format for check-in dates.
const DateLayout = "2006-01-02"

// Rating is one tracked dimension of a daily check-in: a 0-5 value plus
// optional free-text notes.
type Rating struct {
	Value int    `json:"value" validate:"min=0,max=5"`
	Notes string `json:"notes" validate:"max=2000"`
}

// CheckIn entity. One check-in exists per patient per date; re-submission
// for the same date replaces the earlier record.
type CheckIn struct {
	PatientID  string `validate:"required,min=1,max=50"`
	Date       string `validate:"required,datetime=2006-01-02"`
	Time       string `validate:"required"`
	Emotional  Rating
	Medication Rating
	Activity   Rating
	RecordedBy string `validate:"required,max=255"`
	CreatedAt  time.Time
}

// Validate for validating CheckIn struct
func (c *CheckIn) Validate() error {
	validate := validator.New()

	err := validate.Struct(c)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Medication adherence values are categorical, not a continuous scale.
const (
	MedicationNotApplicable = 0
	MedicationNoDoses       = 1
	MedicationPartialDoses  = 3
	MedicationAllDoses      = 5
)

// MedicationLabel returns the display label for a medication adherence value.
func MedicationLabel(value int) string {
	switch value {
	case MedicationNotApplicable:
		return "Not Applicable"
	case MedicationNoDoses:
		return "No Doses"
	case MedicationPartialDoses:
		return "Partial Doses"
	case MedicationAllDoses:
		return "Yes, All Doses"
	default:
		return fmt.Sprintf("%d", value)
	}
}
