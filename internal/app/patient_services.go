package app

import (
	"context"
	"fmt"
	"time"

	"therapy_companion_service/internal/domain/activity"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/pkg/logger"
)

// enrollmentService implements the EnrollmentService interface for patients
type enrollmentService struct {
	patientRepo patients.PatientRepository
	recorder    activity.Recorder
	logger      logger.Logger
}

// NewEnrollmentService creates a new instance of EnrollmentService
func NewEnrollmentService(patientRepo patients.PatientRepository, recorder activity.Recorder, logger logger.Logger) (patients.EnrollmentService, error) {
	return &enrollmentService{
		patientRepo: patientRepo,
		recorder:    recorder,
		logger:      logger,
	}, nil
}

// stringDetail pulls a string field out of the enrollment details map.
func stringDetail(details map[string]interface{}, key string) string {
	if v, ok := details[key].(string); ok {
		return v
	}
	return ""
}

// Enroll stores a patient record scoped to the calling therapist. The
// well-known fields become columns; the rest of the details map is kept
// verbatim so clients do not lose enrollment data they submitted.
func (s *enrollmentService) Enroll(ctx context.Context, patientID string, details map[string]interface{}, caller therapists.Identity) (*patients.Patient, error) {
	patient := &patients.Patient{
		ID:             patientID,
		Name:           stringDetail(details, "name"),
		TherapistName:  stringDetail(details, "therapistName"),
		TherapistEmail: stringDetail(details, "therapistEmail"),
		EnrolledBy:     caller.Email,
		Organization:   caller.Organization,
		EnrolledAt:     time.Now(),
		Details:        details,
	}
	if patient.TherapistName == "" {
		patient.TherapistName = caller.Name
	}
	if patient.TherapistEmail == "" && !caller.IsAdmin() {
		patient.TherapistEmail = caller.Email
	}

	if err := patient.Validate(); err != nil {
		return nil, err
	}

	if err := s.patientRepo.Save(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to save patient: %w", err)
	}

	s.recorder.Record(ctx, activity.TypePatientEnrolled, map[string]interface{}{
		"patient_id": patientID,
		"therapist":  caller.Email,
	})

	s.logger.Info("Enrolled patient ", patientID, " by ", caller.Email)
	return patient, nil
}

// List returns the caller's patients, or every patient for admin.
func (s *enrollmentService) List(ctx context.Context, caller therapists.Identity) ([]*patients.Patient, error) {
	var (
		listed []*patients.Patient
		err    error
	)
	if caller.IsAdmin() {
		listed, err = s.patientRepo.ListAll(ctx)
	} else {
		listed, err = s.patientRepo.ListByEnroller(ctx, caller.Email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return listed, nil
}

// Get returns one patient after an ownership check.
func (s *enrollmentService) Get(ctx context.Context, patientID string, caller therapists.Identity) (*patients.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if !patient.VisibleTo(caller) {
		return nil, patients.ErrAccessDenied
	}

	return patient, nil
}
