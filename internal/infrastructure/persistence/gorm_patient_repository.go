package persistence

import (
	"context"
	"errors"
	"fmt"

	"therapy_companion_service/internal/domain/patients"
	"therapy_companion_service/internal/infrastructure/persistence/models"
	"therapy_companion_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPatientRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPatientRepository creates a new GORM-based PatientRepository implementation
func NewGormPatientRepository(db *gorm.DB, logger logger.Logger) (patients.PatientRepository, error) {
	return &gormPatientRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPatientRepository) Save(ctx context.Context, patient *patients.Patient) error {
	if err := patient.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PatientModel{}
	if err := model.FromDomain(patient); err != nil {
		return fmt.Errorf("failed to encode patient details: %w", err)
	}

	// Enrollment is an upsert: re-submitting a patient ID updates the record.
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save patient: %w", err)
	}

	r.logger.Info("Saved patient record with id ", patient.ID)
	return nil
}

func (r *gormPatientRepository) GetByID(ctx context.Context, patientID string) (*patients.Patient, error) {
	var model models.PatientModel
	if err := r.db.WithContext(ctx).Where("id = ?", patientID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, patients.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to fetch patient: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPatientRepository) ListByEnroller(ctx context.Context, enrolledBy string) ([]*patients.Patient, error) {
	var modelList []*models.PatientModel
	if err := r.db.WithContext(ctx).Where("enrolled_by = ?", enrolledBy).Order("enrolled_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	domainList := make([]*patients.Patient, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPatientRepository) ListAll(ctx context.Context) ([]*patients.Patient, error) {
	var modelList []*models.PatientModel
	if err := r.db.WithContext(ctx).Order("enrolled_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	domainList := make([]*patients.Patient, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", patientID).Delete(&models.PatientModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	r.logger.Info("Deleted patient record with id ", patientID)
	return nil
}

func (r *gormPatientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PatientModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return count, nil
}
