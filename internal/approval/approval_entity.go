package approval

import "time"

const (
	RequestLeave             = "Leave"
	RequestTravel            = "Travel"
	RequestPayrollAdjustment = "Payroll Adjustment"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

var (
	RequestTypes = []string{RequestLeave, RequestTravel, RequestPayrollAdjustment}
	Statuses     = []string{StatusPending, StatusApproved, StatusRejected}
)

type Approval struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	RequestType string `gorm:"type:varchar(30);not null"`
	RequestedBy string `gorm:"type:varchar(255);not null"`
	ApprovedBy  string `gorm:"type:varchar(255)"`
	Status      string `gorm:"type:varchar(20);not null;index"`
	CreatedBy   string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
