package models

import (
	"encoding/json"
	"time"

	"therapy_companion_service/internal/domain/patients"

	"gorm.io/datatypes"
)

// PatientModel is the GORM database model for enrolled patients (infrastructure concern)
type PatientModel struct {
	ID             string         `gorm:"primaryKey;type:varchar(50)"`
	Name           string         `gorm:"type:varchar(255)"`
	TherapistName  string         `gorm:"type:varchar(255)"`
	TherapistEmail string         `gorm:"type:varchar(255)"`
	EnrolledBy     string         `gorm:"not null;index;type:varchar(255)"`
	Organization   string         `gorm:"type:varchar(255)"`
	EnrolledAt     time.Time      `gorm:"not null"`
	Details        datatypes.JSON `gorm:"type:json"`
}

// TableName specifies the table name for GORM
func (PatientModel) TableName() string {
	return "patients"
}

// ToDomain converts GORM model to domain entity
func (m *PatientModel) ToDomain() *patients.Patient {
	details := map[string]interface{}{}
	if len(m.Details) > 0 {
		// A corrupt details column yields an empty map rather than an error;
		// the structured columns remain authoritative.
		_ = json.Unmarshal(m.Details, &details)
	}

	return &patients.Patient{
		ID:             m.ID,
		Name:           m.Name,
		TherapistName:  m.TherapistName,
		TherapistEmail: m.TherapistEmail,
		EnrolledBy:     m.EnrolledBy,
		Organization:   m.Organization,
		EnrolledAt:     m.EnrolledAt,
		Details:        details,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PatientModel) FromDomain(p *patients.Patient) error {
	details, err := json.Marshal(p.Details)
	if err != nil {
		return err
	}

	m.ID = p.ID
	m.Name = p.Name
	m.TherapistName = p.TherapistName
	m.TherapistEmail = p.TherapistEmail
	m.EnrolledBy = p.EnrolledBy
	m.Organization = p.Organization
	m.EnrolledAt = p.EnrolledAt
	m.Details = datatypes.JSON(details)
	return nil
}
