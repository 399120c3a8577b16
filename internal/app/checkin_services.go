package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"therapy_companion_service/internal/domain/activity"
	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/pkg/logger"
)

// checkInService implements the CheckInService interface for daily check-ins
type checkInService struct {
	checkinRepo checkins.CheckInRepository
	patientRepo patients.PatientRepository
	recorder    activity.Recorder
	logger      logger.Logger
}

// NewCheckInService creates a new instance of CheckInService
func NewCheckInService(checkinRepo checkins.CheckInRepository, patientRepo patients.PatientRepository, recorder activity.Recorder, logger logger.Logger) (checkins.CheckInService, error) {
	return &checkInService{
		checkinRepo: checkinRepo,
		patientRepo: patientRepo,
		recorder:    recorder,
		logger:      logger,
	}, nil
}

// Record stores a check-in for the caller's patient. A second check-in on
// the same date replaces the first.
func (s *checkInService) Record(ctx context.Context, checkin *checkins.CheckIn, caller therapists.Identity) error {
	patient, err := s.patientRepo.GetByID(ctx, checkin.PatientID)
	if err != nil {
		return fmt.Errorf("failed to get patient: %w", err)
	}
	if !patient.VisibleTo(caller) {
		return patients.ErrAccessDenied
	}

	checkin.RecordedBy = caller.Email
	checkin.CreatedAt = time.Now()

	if err := checkin.Validate(); err != nil {
		return err
	}

	if err := s.checkinRepo.Upsert(ctx, checkin); err != nil {
		return fmt.Errorf("failed to upsert check-in: %w", err)
	}

	s.recorder.Record(ctx, activity.TypeCheckinRecorded, map[string]interface{}{
		"patient_id": checkin.PatientID,
		"date":       checkin.Date,
		"therapist":  caller.Email,
	})

	s.logger.Info("Recorded check-in for patient ", checkin.PatientID, " on ", checkin.Date)
	return nil
}

// WeekData returns the patient's check-ins for the week keyed by date.
// A patient that was never enrolled yields an empty week rather than an
// error, matching how clients poll for weeks before enrollment completes.
func (s *checkInService) WeekData(ctx context.Context, patientID string, week checkins.Week, caller therapists.Identity) (checkins.WeekData, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, patients.ErrPatientNotFound) {
			return checkins.WeekData{}, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if !patient.VisibleTo(caller) {
		return nil, patients.ErrAccessDenied
	}

	listed, err := s.checkinRepo.ListByPatientAndDates(ctx, patientID, week.Dates())
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	data := make(checkins.WeekData, len(listed))
	for _, checkin := range listed {
		data[checkin.Date] = checkin
	}
	return data, nil
}
