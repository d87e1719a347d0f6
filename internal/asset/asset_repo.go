package asset

import (
	"context"

	"gorm.io/gorm"
)

type AssetQueryFilter struct {
	Employee string
	Status   string
	Limit    int
	Offset   int
}

//go:generate mockgen -source=asset_repo.go -destination=mock/asset_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, asset *Asset) error
	FindAll(ctx context.Context, filter AssetQueryFilter) ([]Asset, int64, error)
	FindByID(ctx context.Context, id int64) (*Asset, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, asset *Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *repository) FindAll(ctx context.Context, filter AssetQueryFilter) ([]Asset, int64, error) {
	query := r.db.WithContext(ctx).Model(&Asset{})
	if filter.Employee != "" {
		query = query.Where("employee = ?", filter.Employee)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assets []Asset
	err := query.
		Order("id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&assets).Error
	return assets, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Asset, error) {
	var a Asset
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
