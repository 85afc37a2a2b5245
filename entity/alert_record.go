package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AlertRecord is the persisted form of a forwarded alert, kept by the gateway
// for operator queries.
type AlertRecord struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Area      string         `json:"area" gorm:"not null;index:idx_alert_area"`
	Metric    string         `json:"metric" gorm:"not null;index"`
	Level     string         `json:"level" gorm:"not null"`
	Value     float64        `json:"value" gorm:"not null"`
	Threshold float64        `json:"threshold" gorm:"not null"`
	Timestamp time.Time      `json:"timestamp" gorm:"not null;index"`
	Reason    string         `json:"reason"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}
