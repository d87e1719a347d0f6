package payroll

import "time"

type Payroll struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Employee    string  `gorm:"type:varchar(255);not null;index:idx_payroll_employee_month"`
	Month       string  `gorm:"type:varchar(7);not null;index:idx_payroll_employee_month"`
	BaseSalary  float64 `gorm:"not null;default:0"`
	PF          float64 `gorm:"column:pf;not null;default:0"`
	ESIC        float64 `gorm:"column:esic;not null;default:0"`
	TotalSalary float64 `gorm:"column:total_salary;not null;default:0"`
	CreatedBy   string  `gorm:"type:varchar(255)"`

	PayslipPath        *string
	PayslipGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Payroll) TableName() string {
	return "payroll"
}
