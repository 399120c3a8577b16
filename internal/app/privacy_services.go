package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"therapy_companion_service/internal/domain/activity"
	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/privacy"
	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/pkg/logger"
)

// privacyService implements the privacy Service interface for data subject rights
type privacyService struct {
	patientRepo patients.PatientRepository
	checkinRepo checkins.CheckInRepository
	reportRepo  reports.ReportRepository
	recorder    activity.Recorder
	logger      logger.Logger
}

// NewPrivacyService creates a new instance of the privacy Service
func NewPrivacyService(
	patientRepo patients.PatientRepository,
	checkinRepo checkins.CheckInRepository,
	reportRepo reports.ReportRepository,
	recorder activity.Recorder,
	logger logger.Logger,
) (privacy.Service, error) {
	return &privacyService{
		patientRepo: patientRepo,
		checkinRepo: checkinRepo,
		reportRepo:  reportRepo,
		recorder:    recorder,
		logger:      logger,
	}, nil
}

// DeletePatientData removes every record held about the patient. Deleting a
// patient that was never enrolled succeeds so the operation is idempotent.
func (s *privacyService) DeletePatientData(ctx context.Context, patientID string, caller therapists.Identity) error {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil && !errors.Is(err, patients.ErrPatientNotFound) {
		return fmt.Errorf("failed to get patient: %w", err)
	}
	if patient != nil && !patient.VisibleTo(caller) {
		return patients.ErrAccessDenied
	}

	if err := s.checkinRepo.DeleteByPatientID(ctx, patientID); err != nil {
		return fmt.Errorf("failed to delete check-ins: %w", err)
	}
	if err := s.reportRepo.DeleteByPatientID(ctx, patientID); err != nil {
		return fmt.Errorf("failed to delete reports: %w", err)
	}
	if patient != nil {
		if err := s.patientRepo.DeleteByID(ctx, patientID); err != nil {
			return fmt.Errorf("failed to delete patient: %w", err)
		}
	}

	s.recorder.Record(ctx, activity.TypePatientDeleted, map[string]interface{}{
		"patient_id": patientID,
		"deleted_by": caller.Email,
	})

	s.logger.Info("Deleted all data for patient ", patientID)
	return nil
}

// ExportPatientData returns everything stored about the patient.
func (s *privacyService) ExportPatientData(ctx context.Context, patientID string, caller therapists.Identity) (*privacy.Export, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if !patient.VisibleTo(caller) {
		return nil, patients.ErrAccessDenied
	}

	listed, err := s.checkinRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	s.recorder.Record(ctx, activity.TypePatientDataExported, map[string]interface{}{
		"patient_id":  patientID,
		"exported_by": caller.Email,
	})

	return &privacy.Export{
		PatientInfo: patient,
		CheckIns:    listed,
		ExportDate:  time.Now(),
		ExportedBy:  caller.Email,
	}, nil
}
