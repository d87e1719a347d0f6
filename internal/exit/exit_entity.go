package exit

import "time"

// Exit records an employee's separation. Table name is "exits".
type Exit struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Employee  string    `gorm:"type:varchar(255);not null;index"`
	ExitDate  time.Time `gorm:"type:date;not null"`
	Reason    string    `gorm:"type:text"`
	CreatedBy string    `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
