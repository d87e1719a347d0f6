package export

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Fetch returns every row of t, oldest first, keyed by column name.
	Fetch(ctx context.Context, t Table) ([]map[string]any, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Fetch(ctx context.Context, t Table) ([]map[string]any, error) {
	rows := make([]map[string]any, 0)
	err := r.db.WithContext(ctx).
		Table(t.Name).
		Select(t.Columns).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
