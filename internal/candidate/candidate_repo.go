package candidate

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=candidate_repo.go -destination=mock/candidate_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, candidate *Candidate) error
	FindAll(ctx context.Context, limit, offset int) ([]Candidate, int64, error)
	FindByID(ctx context.Context, id int64) (*Candidate, error)
	ListOptions(ctx context.Context) ([]Option, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, candidate *Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

func (r *repository) FindAll(ctx context.Context, limit, offset int) ([]Candidate, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Candidate{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var candidates []Candidate
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&candidates).Error
	return candidates, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Candidate, error) {
	var candidate Candidate
	if err := r.db.WithContext(ctx).First(&candidate, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *repository) ListOptions(ctx context.Context) ([]Option, error) {
	var options []Option
	err := r.db.WithContext(ctx).
		Model(&Candidate{}).
		Select("id, name").
		Order("name ASC, id ASC").
		Scan(&options).Error
	return options, err
}
