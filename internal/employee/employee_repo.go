package employee

import (
	"context"
	"database/sql"

	"go-hrdesk/internal/shared/dbtx"

	"gorm.io/gorm"
)

type EmployeeQueryFilter struct {
	Department string
	Status     string
	Limit      int
	Offset     int
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, filter EmployeeQueryFilter) ([]Employee, int64, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindOptions(ctx context.Context) ([]Option, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, filter EmployeeQueryFilter) ([]Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&Employee{})
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var empls []Employee
	err := query.
		Order("id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&empls).Error
	return empls, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

// FindOptions lists active employees only.
func (r *repository) FindOptions(ctx context.Context) ([]Option, error) {
	var options []Option
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("id, employee_number, name").
		Where("status = ?", StatusActive).
		Order("name ASC").
		Scan(&options).Error
	return options, err
}
