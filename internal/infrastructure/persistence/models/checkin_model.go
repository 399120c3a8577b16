package models

import (
	"time"

	"therapy_companion_service/internal/domain/checkins"
)

// CheckInModel is the GORM database model for daily check-ins (infrastructure concern)
type CheckInModel struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	PatientID       string    `gorm:"not null;uniqueIndex:idx_patient_date;type:varchar(50)"`
	Date            string    `gorm:"not null;uniqueIndex:idx_patient_date;type:varchar(10)"`
	Time            string    `gorm:"type:varchar(10)"`
	EmotionalValue  int       `gorm:"not null"`
	EmotionalNotes  string    `gorm:"type:text"`
	MedicationValue int       `gorm:"not null"`
	MedicationNotes string    `gorm:"type:text"`
	ActivityValue   int       `gorm:"not null"`
	ActivityNotes   string    `gorm:"type:text"`
	RecordedBy      string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CheckInModel) TableName() string {
	return "checkins"
}

// ToDomain converts GORM model to domain entity
func (m *CheckInModel) ToDomain() *checkins.CheckIn {
	return &checkins.CheckIn{
		PatientID:  m.PatientID,
		Date:       m.Date,
		Time:       m.Time,
		Emotional:  checkins.Rating{Value: m.EmotionalValue, Notes: m.EmotionalNotes},
		Medication: checkins.Rating{Value: m.MedicationValue, Notes: m.MedicationNotes},
		Activity:   checkins.Rating{Value: m.ActivityValue, Notes: m.ActivityNotes},
		RecordedBy: m.RecordedBy,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CheckInModel) FromDomain(c *checkins.CheckIn) {
	m.PatientID = c.PatientID
	m.Date = c.Date
	m.Time = c.Time
	m.EmotionalValue = c.Emotional.Value
	m.EmotionalNotes = c.Emotional.Notes
	m.MedicationValue = c.Medication.Value
	m.MedicationNotes = c.Medication.Notes
	m.ActivityValue = c.Activity.Value
	m.ActivityNotes = c.Activity.Notes
	m.RecordedBy = c.RecordedBy
	m.CreatedAt = c.CreatedAt
}
