package exit

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, exit *Exit) error
	FindAll(ctx context.Context, employee string, limit, offset int) ([]Exit, int64, error)
	FindByID(ctx context.Context, id int64) (*Exit, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, exit *Exit) error {
	return r.db.WithContext(ctx).Create(exit).Error
}

func (r *repository) FindAll(ctx context.Context, employee string, limit, offset int) ([]Exit, int64, error) {
	query := r.db.WithContext(ctx).Model(&Exit{})
	if employee != "" {
		query = query.Where("employee ILIKE ?", "%"+employee+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exits []Exit
	err := query.
		Order("exit_date DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&exits).Error
	return exits, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Exit, error) {
	var e Exit
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}
