package persistence

import (
	"context"
	"errors"
	"fmt"

	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/infrastructure/persistence/models"
	"therapy_companion_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormReportRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReportRepository creates a new GORM-based ReportRepository implementation
func NewGormReportRepository(db *gorm.DB, logger logger.Logger) (reports.ReportRepository, error) {
	return &gormReportRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReportRepository) Create(ctx context.Context, report *reports.Report) error {
	if err := report.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReportModel{}
	model.FromDomain(report)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to store report: %w", err)
	}

	r.logger.Info("Stored report ", report.Filename)
	return nil
}

func (r *gormReportRepository) LatestByPatientWeek(ctx context.Context, patientID, week string) (*reports.Report, error) {
	var model models.ReportModel
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND week = ?", patientID, week).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reports.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormReportRepository) DeleteByPatientID(ctx context.Context, patientID string) error {
	if err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&models.ReportModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete reports: %w", err)
	}

	r.logger.Info("Deleted reports for patient ", patientID)
	return nil
}

func (r *gormReportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ReportModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}
