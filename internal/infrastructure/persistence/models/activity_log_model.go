package models

import (
	"encoding/json"
	"time"

	"therapy_companion_service/internal/domain/activity"

	"gorm.io/datatypes"
)

// ActivityLogModel is the GORM database model for audit log entries (infrastructure concern)
type ActivityLogModel struct {
	ID           uint           `gorm:"primaryKey;autoIncrement"`
	ActivityType string         `gorm:"not null;index;type:varchar(50)"`
	Data         datatypes.JSON `gorm:"type:json"`
	IPAddress    string         `gorm:"type:varchar(50)"`
	CreatedAt    time.Time      `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

// ToDomain converts GORM model to domain entity
func (m *ActivityLogModel) ToDomain() *activity.Entry {
	data := map[string]interface{}{}
	if len(m.Data) > 0 {
		_ = json.Unmarshal(m.Data, &data)
	}

	return &activity.Entry{
		Type:      m.ActivityType,
		Data:      data,
		IPAddress: m.IPAddress,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ActivityLogModel) FromDomain(e *activity.Entry) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return err
	}

	m.ActivityType = e.Type
	m.Data = datatypes.JSON(data)
	m.IPAddress = e.IPAddress
	m.CreatedAt = e.CreatedAt
	return nil
}
