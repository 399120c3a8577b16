package models

import (
	"time"

	"therapy_companion_service/internal/domain/therapists"
)

// TherapistModel is the GORM database model for therapist accounts (infrastructure concern)
type TherapistModel struct {
	Email        string    `gorm:"primaryKey;type:varchar(255)"`
	Name         string    `gorm:"not null;type:varchar(255)"`
	Organization string    `gorm:"not null;type:varchar(255)"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	AccessToken  string    `gorm:"not null;index;type:varchar(64)"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	LastLogin    *time.Time
}

// TableName specifies the table name for GORM
func (TherapistModel) TableName() string {
	return "therapists"
}

// ToDomain converts GORM model to domain entity
func (m *TherapistModel) ToDomain() *therapists.Therapist {
	return &therapists.Therapist{
		Email:        m.Email,
		Name:         m.Name,
		Organization: m.Organization,
		PasswordHash: m.PasswordHash,
		AccessToken:  m.AccessToken,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		LastLogin:    m.LastLogin,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TherapistModel) FromDomain(t *therapists.Therapist) {
	m.Email = t.Email
	m.Name = t.Name
	m.Organization = t.Organization
	m.PasswordHash = t.PasswordHash
	m.AccessToken = t.AccessToken
	m.Active = t.Active
	m.CreatedAt = t.CreatedAt
	m.LastLogin = t.LastLogin
}
