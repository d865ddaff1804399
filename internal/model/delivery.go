package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// LineItem is one validated article entry inside a submitted request.
// Quantity is always > 0; zero-quantity drafts never produce a line item.
type LineItem struct {
	Item     string `json:"item"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// LineItems is stored as a single jsonb column; the record is an atomic unit
type LineItems []LineItem

// Value implements driver.Valuer for the jsonb column
func (l LineItems) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for the jsonb column
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for LineItems column")
	}
}

// Delivery is one submitted uniform request. Records are append-only:
// nothing in the system updates or deletes them after creation.
type Delivery struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(64);not null;index" json:"userId"`
	EmployeeName string    `gorm:"type:varchar(255);not null" json:"employeeName"`
	Area         string    `gorm:"type:varchar(100);not null;index" json:"area"`
	Reason       string    `gorm:"type:varchar(100);not null" json:"reason"`
	ReasonKey    string    `gorm:"type:varchar(50);not null;index" json:"reasonKey"`
	Items        LineItems `gorm:"type:jsonb;not null" json:"items"`
	DamageNotes  string    `gorm:"type:text" json:"damageNotes"`
	Photo        *string   `gorm:"type:text" json:"photo"`
	Timestamp    time.Time `gorm:"not null;index" json:"timestamp"`
}

// TableName pins the storage table name
func (Delivery) TableName() string {
	return "uniform_deliveries"
}

// AggregatedStats is derived from the full record set on every read.
// It is never persisted.
type AggregatedStats struct {
	AreaCounts   map[string]int `json:"area_counts"`
	ItemCounts   map[string]int `json:"item_counts"`
	ColorCounts  map[string]int `json:"color_counts"`
	ReasonCounts map[string]int `json:"reason_counts"`
	TotalItems   int            `json:"total_items"`
}

// StatisticsResponse wraps the aggregate with the request count for dashboards
type StatisticsResponse struct {
	TotalRequests int             `json:"total_requests"`
	Stats         AggregatedStats `json:"stats"`
}
