package persistence

import (
	"context"
	"fmt"

	"therapy_companion_service/internal/domain/checkins"
	"therapy_companion_service/internal/infrastructure/persistence/models"
	"therapy_companion_service/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormCheckInRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCheckInRepository creates a new GORM-based CheckInRepository implementation
func NewGormCheckInRepository(db *gorm.DB, logger logger.Logger) (checkins.CheckInRepository, error) {
	return &gormCheckInRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCheckInRepository) Upsert(ctx context.Context, checkin *checkins.CheckIn) error {
	if err := checkin.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CheckInModel{}
	model.FromDomain(checkin)

	// One check-in per patient per date; a re-submission replaces the
	// earlier record in place.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "patient_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"time",
			"emotional_value", "emotional_notes",
			"medication_value", "medication_notes",
			"activity_value", "activity_notes",
			"recorded_by", "created_at",
		}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}

	r.logger.Info("Saved check-in for patient ", checkin.PatientID, " on ", checkin.Date)
	return nil
}

func (r *gormCheckInRepository) ListByPatient(ctx context.Context, patientID string) ([]*checkins.CheckIn, error) {
	var modelList []*models.CheckInModel
	if err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Order("date").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	domainList := make([]*checkins.CheckIn, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCheckInRepository) ListByPatientAndDates(ctx context.Context, patientID string, dates []string) ([]*checkins.CheckIn, error) {
	var modelList []*models.CheckInModel
	if err := r.db.WithContext(ctx).Where("patient_id = ? AND date IN ?", patientID, dates).Order("date").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list check-ins for dates: %w", err)
	}

	domainList := make([]*checkins.CheckIn, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCheckInRepository) DeleteByPatientID(ctx context.Context, patientID string) error {
	if err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&models.CheckInModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete check-ins: %w", err)
	}

	r.logger.Info("Deleted check-ins for patient ", patientID)
	return nil
}

func (r *gormCheckInRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CheckInModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return count, nil
}
