package checkins

import (
	"context"

	"therapy_companion_service/internal/domain/therapists"
)

// CheckInService defines methods for recording and reading daily check-ins.
type CheckInService interface {
	// Record validates and stores a check-in for the caller's patient,
	// replacing any earlier check-in on the same date. Returns
	// patients.ErrPatientNotFound or patients.ErrAccessDenied.
	Record(ctx context.Context, checkin *CheckIn, caller therapists.Identity) error

	// WeekData returns the patient's check-ins for the given week, keyed by
	// date. Days without a check-in are absent from the map.
	WeekData(ctx context.Context, patientID string, week Week, caller therapists.Identity) (WeekData, error)
}

// CheckInRepository defines the interface for check-in persistence.
type CheckInRepository interface {
	// Upsert inserts the check-in or replaces the record sharing its
	// patient ID and date.
	Upsert(ctx context.Context, checkin *CheckIn) error
	ListByPatient(ctx context.Context, patientID string) ([]*CheckIn, error)
	ListByPatientAndDates(ctx context.Context, patientID string, dates []string) ([]*CheckIn, error)
	DeleteByPatientID(ctx context.Context, patientID string) error
	Count(ctx context.Context) (int64, error)
}
