package patients

import (
	"context"
	"errors"

	"therapy_companion_service/internal/domain/therapists"
)

var (
	// ErrPatientNotFound is returned when no patient exists with the given ID.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrAccessDenied is returned when a therapist touches a patient
	// enrolled by someone else.
	ErrAccessDenied = errors.New("unauthorized access to patient")
)

// EnrollmentService defines methods for enrolling and listing patients.
type EnrollmentService interface {
	// Enroll stores a patient record for the calling therapist. The details
	// map carries the client's free-form enrollment fields; the service
	// stamps enrollment time and enrolling therapist.
	Enroll(ctx context.Context, patientID string, details map[string]interface{}, caller therapists.Identity) (*Patient, error)

	// List returns the patients visible to the caller, i.e. those the
	// caller enrolled, or all of them for admin.
	List(ctx context.Context, caller therapists.Identity) ([]*Patient, error)

	// Get returns one patient. Returns ErrPatientNotFound or ErrAccessDenied.
	Get(ctx context.Context, patientID string, caller therapists.Identity) (*Patient, error)
}

// PatientRepository defines the interface for patient persistence.
type PatientRepository interface {
	Save(ctx context.Context, patient *Patient) error
	GetByID(ctx context.Context, patientID string) (*Patient, error)
	ListByEnroller(ctx context.Context, enrolledBy string) ([]*Patient, error)
	ListAll(ctx context.Context) ([]*Patient, error)
	DeleteByID(ctx context.Context, patientID string) error
	Count(ctx context.Context) (int64, error)
}
