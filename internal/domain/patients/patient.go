package patients

import (
	"errors"
	"fmt"
	"time"

	"therapy_companion_service/internal/domain/therapists"

	"github.com/go-playground/validator/v10"
)

// Patient entity. Details preserves whatever enrollment fields the client
// submitted beyond the columns the service itself needs.
type Patient struct {
	ID             string `validate:"required,min=1,max=50"`
	Name           string `validate:"required,min=1,max=255"`
	TherapistName  string `validate:"max=255"`
	TherapistEmail string `validate:"omitempty,email"`
	EnrolledBy     string `validate:"required,max=255"`
	Organization   string `validate:"max=255"`
	EnrolledAt     time.Time
	Details        map[string]interface{}
}

// Validate for validating Patient struct
func (p *Patient) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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

// VisibleTo reports whether caller may read or modify this patient.
// Patients are scoped to the therapist that enrolled them; admin sees all.
func (p *Patient) VisibleTo(caller therapists.Identity) bool {
	return p.EnrolledBy == caller.Email || caller.IsAdmin()
}
