package app

import (
	"context"
	"fmt"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/domain/system"
	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/pkg/logger"
)

// statsService implements the StatsService interface
type statsService struct {
	therapistRepo therapists.TherapistRepository
	patientRepo   patients.PatientRepository
	checkinRepo   checkins.CheckInRepository
	reportRepo    reports.ReportRepository
	logger        logger.Logger
}

// NewStatsService creates a new instance of StatsService
func NewStatsService(
	therapistRepo therapists.TherapistRepository,
	patientRepo patients.PatientRepository,
	checkinRepo checkins.CheckInRepository,
	reportRepo reports.ReportRepository,
	logger logger.Logger,
) (system.StatsService, error) {
	return &statsService{
		therapistRepo: therapistRepo,
		patientRepo:   patientRepo,
		checkinRepo:   checkinRepo,
		reportRepo:    reportRepo,
		logger:        logger,
	}, nil
}

// Collect counts the records held across the whole service.
func (s *statsService) Collect(ctx context.Context) (*system.Stats, error) {
	therapistCount, err := s.therapistRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count therapists: %w", err)
	}
	patientCount, err := s.patientRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	checkinCount, err := s.checkinRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count check-ins: %w", err)
	}
	reportCount, err := s.reportRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	return &system.Stats{
		Therapists:       therapistCount,
		Patients:         patientCount,
		CheckIns:         checkinCount,
		ReportsGenerated: reportCount,
	}, nil
}
