package persistence

import (
	"context"
	"errors"
	"fmt"

	"therapy_companion_service/internal/domain/therapists"
	"therapy_companion_service/internal/infrastructure/persistence/models"
	"therapy_companion_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTherapistRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTherapistRepository creates a new GORM-based TherapistRepository implementation
func NewGormTherapistRepository(db *gorm.DB, logger logger.Logger) (therapists.TherapistRepository, error) {
	return &gormTherapistRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTherapistRepository) Create(ctx context.Context, therapist *therapists.Therapist) error {
	if err := therapist.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TherapistModel{}
	model.FromDomain(therapist)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return therapists.ErrEmailTaken
		}
		return fmt.Errorf("failed to create therapist: %w", err)
	}

	r.logger.Info("Created therapist account for ", therapist.Email)
	return nil
}

func (r *gormTherapistRepository) GetByEmail(ctx context.Context, email string) (*therapists.Therapist, error) {
	var model models.TherapistModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, therapists.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch therapist: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTherapistRepository) GetByToken(ctx context.Context, token string) (*therapists.Therapist, error) {
	var model models.TherapistModel
	if err := r.db.WithContext(ctx).Where("access_token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, therapists.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to fetch therapist by token: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTherapistRepository) UpdateByEmail(ctx context.Context, therapist *therapists.Therapist) error {
	if err := therapist.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TherapistModel{}
	model.FromDomain(therapist)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update therapist: %w", err)
	}

	r.logger.Info("Updated therapist account for ", therapist.Email)
	return nil
}

func (r *gormTherapistRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TherapistModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count therapists: %w", err)
	}
	return count, nil
}
