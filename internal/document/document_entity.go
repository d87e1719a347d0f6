package document

import "time"

// MaxUploadSize caps a single multipart upload.
const MaxUploadSize = 32 << 20

type Document struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Employee    string `gorm:"type:varchar(255);not null;index"`
	FileName    string `gorm:"type:varchar(255);not null"`
	StoredPath  string `gorm:"type:text;not null"`
	SizeBytes   int64  `gorm:"not null"`
	ContentType string `gorm:"type:varchar(255)"`
	UploadedBy  string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
