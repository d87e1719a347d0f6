package auth

import "time"

// User is an HR desk account. Only these accounts can sign in.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:uq_hr_users_email"`
	Name         string `gorm:"type:varchar(255);not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'HR'"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "hr_users"
}
