package asset

import "time"

const (
	StatusAssigned  = "Assigned"
	StatusReturned  = "Returned"
	StatusInProcess = "In Process"
)

var Statuses = []string{StatusAssigned, StatusReturned, StatusInProcess}

// Asset is an asset hand-over or a travel request; Item holds either.
type Asset struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Employee  string `gorm:"type:varchar(255);not null;index"`
	Item      string `gorm:"column:asset;type:varchar(255);not null"`
	Status    string `gorm:"type:varchar(20);not null"`
	CreatedBy string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
