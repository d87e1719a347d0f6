package attendance

import "time"

const (
	LeaveNone   = "None"
	LeaveSick   = "Sick Leave"
	LeaveCasual = "Casual Leave"
	LeaveEarned = "Earned Leave"
)

var LeaveTypes = []string{LeaveNone, LeaveSick, LeaveCasual, LeaveEarned}

type Attendance struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Employee  string    `gorm:"column:employee;type:varchar(255);not null;index:idx_attendance_employee_date"`
	Date      time.Time `gorm:"column:date;type:date;not null;index:idx_attendance_employee_date"`
	Present   bool      `gorm:"column:present;not null"`
	LeaveType string    `gorm:"column:leave_type;type:varchar(20);not null;default:None"`
	CreatedBy string    `gorm:"column:created_by;type:varchar(255)"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}
