package employee

import "time"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

var Statuses = []string{StatusActive, StatusInactive}

type Employee struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeNumber string    `gorm:"type:varchar(20);uniqueIndex:uq_employees_employee_number;not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	JoinDate       time.Time `gorm:"type:date;not null"`
	Department     string    `gorm:"type:varchar(255);not null;index"`
	Status         string    `gorm:"type:varchar(20);not null"`
	CreatedBy      string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Option is the employee picker entry used by the attendance, payroll and
// exit forms.
type Option struct {
	ID             int64  `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
}
