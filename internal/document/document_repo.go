package document

import (
	"context"

	"gorm.io/gorm"
)

type DocumentQueryFilter struct {
	Employee string
	Limit    int
	Offset   int
}

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, doc *Document) error
	FindAll(ctx context.Context, filter DocumentQueryFilter) ([]Document, int64, error)
	FindByID(ctx context.Context, id int64) (*Document, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, doc *Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *repository) FindAll(ctx context.Context, filter DocumentQueryFilter) ([]Document, int64, error) {
	query := r.db.WithContext(ctx).Model(&Document{})
	if filter.Employee != "" {
		query = query.Where("employee ILIKE ?", "%"+filter.Employee+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docs []Document
	err := query.
		Order("id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&docs).Error
	return docs, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Document, error) {
	var doc Document
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}
