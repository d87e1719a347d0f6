package offer

import (
	"context"

	"gorm.io/gorm"
)

type OfferQueryFilter struct {
	Status string
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, offer *Offer) error
	FindAll(ctx context.Context, filter OfferQueryFilter) ([]Offer, int64, error)
	FindByID(ctx context.Context, id int64) (*Offer, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, offer *Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *repository) FindAll(ctx context.Context, filter OfferQueryFilter) ([]Offer, int64, error) {
	query := r.db.WithContext(ctx).Model(&Offer{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var offers []Offer
	err := query.
		Order("id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&offers).Error
	return offers, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Offer, error) {
	var offer Offer
	if err := r.db.WithContext(ctx).First(&offer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}
