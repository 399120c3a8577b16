// Package activity contains the audit log entry written for every
// significant operation the service performs.
package activity

import (
	"context"
	"time"
)

// Activity types recorded by the service.
const (
	TypeTherapistRegistration = "therapist_registration"
	TypeTherapistLogin        = "therapist_login"
	TypePatientEnrolled       = "patient_enrolled"
	TypeCheckinRecorded       = "checkin_recorded"
	TypeReportGenerated       = "report_generated"
	TypeEmailSent             = "email_sent"
	TypePatientDeleted        = "patient_deleted"
	TypePatientDataExported   = "patient_data_exported"
)

// Entry is one audit log record.
type Entry struct {
	Type      string
	Data      map[string]interface{}
	IPAddress string
	CreatedAt time.Time
}

// Recorder appends audit entries. Recording is best effort: implementations
// log failures instead of propagating them into request handling.
type Recorder interface {
	Record(ctx context.Context, entryType string, data map[string]interface{})
}

// Repository defines the interface for audit log persistence.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
}
