package reports

import (
	"context"
	"errors"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/therapists"
)

// ErrReportNotFound is returned when no stored report matches the query.
var ErrReportNotFound = errors.New("report not found")

// ReportService defines methods for generating and delivering weekly reports.
type ReportService interface {
	// GenerateWeekly builds the Excel workbook for a patient's week, stores
	// it and returns it for download.
	GenerateWeekly(ctx context.Context, patientID string, week checkins.Week, caller therapists.Identity) (*Report, error)

	// EmailWeekly generates (or reuses) the weekly report and emails it to
	// recipient, or to the patient's therapist when recipient is empty.
	// A sending failure is reported in the outcome, not as an error.
	EmailWeekly(ctx context.Context, patientID string, week checkins.Week, recipient string, caller therapists.Identity) (*EmailOutcome, error)
}

// ReportRepository defines the interface for stored report persistence.
type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	LatestByPatientWeek(ctx context.Context, patientID, week string) (*Report, error)
	DeleteByPatientID(ctx context.Context, patientID string) error
	Count(ctx context.Context) (int64, error)
}

// WorkbookBuilder renders a patient's week of check-ins into an Excel
// workbook. Implemented by the excelize-backed builder in infrastructure.
type WorkbookBuilder interface {
	Build(patient *patients.Patient, week checkins.Week, data checkins.WeekData) ([]byte, error)
}

// Message is an outgoing report email.
type Message struct {
	To             string
	ReplyTo        string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// Mailer sends report messages through the system email account.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
