package offer

import "time"

const (
	StatusIssued   = "Issued"
	StatusAccepted = "Accepted"
	StatusDeclined = "Declined"
)

var Statuses = []string{StatusIssued, StatusAccepted, StatusDeclined}

type Offer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Candidate string    `gorm:"type:varchar(255);not null"`
	OfferDate time.Time `gorm:"type:date;not null"`
	OfferedBy string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	CreatedBy string    `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
