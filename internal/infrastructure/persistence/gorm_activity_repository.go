package persistence

import (
	"context"
	"fmt"

	"therapy_companion_service/internal/domain/activity"
	"therapy_companion_service/internal/infrastructure/persistence/models"
	"therapy_companion_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormActivityRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormActivityRepository creates a new GORM-based activity log Repository implementation
func NewGormActivityRepository(db *gorm.DB, logger logger.Logger) (activity.Repository, error) {
	return &gormActivityRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormActivityRepository) Create(ctx context.Context, entry *activity.Entry) error {
	model := &models.ActivityLogModel{}
	if err := model.FromDomain(entry); err != nil {
		return fmt.Errorf("failed to encode activity data: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to store activity entry: %w", err)
	}

	return nil
}
