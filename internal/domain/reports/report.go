package reports

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Report entity: one generated weekly workbook, kept both as a file under
// the exports directory and as a blob so a fresh deployment can re-serve it.
type Report struct {
	ID        string `validate:"required,uuid4"`
	PatientID string `validate:"required,min=1,max=50"`
	Week      string `validate:"required"`
	Filename  string `validate:"required,min=1,max=200"`
	FileData  []byte `validate:"required"`
	CreatedAt time.Time
}

// Validate for validating Report struct
func (r *Report) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// XlsxContentType is the MIME type for generated workbooks.
const XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EmailOutcome describes what happened to an email-report request. Sending
// failures are not hard errors: the caller still receives the prepared
// content so the report can be delivered manually.
type EmailOutcome struct {
	Sent       bool
	Recipient  string
	Subject    string
	Body       string
	Attachment string
	Note       string
}
