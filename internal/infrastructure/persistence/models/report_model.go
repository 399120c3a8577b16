package models

import (
	"time"

	"therapy_companion_service/internal/domain/reports"
)

// ReportModel is the GORM database model for generated weekly reports (infrastructure concern)
type ReportModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	PatientID string    `gorm:"not null;index;type:varchar(50)"`
	Week      string    `gorm:"not null;index;type:varchar(10)"`
	Filename  string    `gorm:"not null;type:varchar(200)"`
	FileData  []byte    `gorm:"type:blob"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ReportModel) TableName() string {
	return "reports"
}

// ToDomain converts GORM model to domain entity
func (m *ReportModel) ToDomain() *reports.Report {
	return &reports.Report{
		ID:        m.ID,
		PatientID: m.PatientID,
		Week:      m.Week,
		Filename:  m.Filename,
		FileData:  m.FileData,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReportModel) FromDomain(r *reports.Report) {
	m.ID = r.ID
	m.PatientID = r.PatientID
	m.Week = r.Week
	m.Filename = r.Filename
	m.FileData = r.FileData
	m.CreatedAt = r.CreatedAt
}
