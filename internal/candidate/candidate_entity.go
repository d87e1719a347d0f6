package candidate

import "time"

type Candidate struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Designation string `gorm:"type:varchar(255);not null"`
	Project     string `gorm:"type:varchar(255);not null"`
	Location    string `gorm:"type:varchar(255);not null"`
	CreatedBy   string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Option is the id/name pair the interview form picks a candidate from.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
