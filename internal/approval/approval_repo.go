package approval

import (
	"context"

	"gorm.io/gorm"
)

type ApprovalQueryFilter struct {
	RequestType string
	Status      string
	Limit       int
	Offset      int
}

type Repository interface {
	Create(ctx context.Context, approval *Approval) error
	FindAll(ctx context.Context, filter ApprovalQueryFilter) ([]Approval, int64, error)
	FindByID(ctx context.Context, id int64) (*Approval, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, approval *Approval) error {
	return r.db.WithContext(ctx).Create(approval).Error
}

func (r *repository) FindAll(ctx context.Context, filter ApprovalQueryFilter) ([]Approval, int64, error) {
	query := r.db.WithContext(ctx).Model(&Approval{})
	if filter.RequestType != "" {
		query = query.Where("request_type = ?", filter.RequestType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var approvals []Approval
	err := query.
		Order("id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&approvals).Error
	return approvals, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Approval, error) {
	var a Approval
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
