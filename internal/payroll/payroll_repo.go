package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-hrdesk/internal/shared/dbtx"

	"gorm.io/gorm"
)

type PayrollQueryFilter struct {
	Employee string
	Month    string
	Limit    int
	Offset   int
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, int64, error)
	FindByID(ctx context.Context, id int64) (*Payroll, error)
	UpdatePayslipPath(ctx context.Context, id int64, path string, generatedAt time.Time) error
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

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Create(payroll).Error
}

func (r *repository) FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, int64, error) {
	query := r.db.WithContext(ctx).Model(&Payroll{})
	if filter.Employee != "" {
		query = query.Where("employee ILIKE ?", "%"+filter.Employee+"%")
	}
	if filter.Month != "" {
		query = query.Where("month = ?", filter.Month)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payrolls []Payroll
	err := query.
		Order("id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&payrolls).Error
	return payrolls, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Payroll, error) {
	var payroll Payroll
	if err := r.db.WithContext(ctx).First(&payroll, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) UpdatePayslipPath(ctx context.Context, id int64, path string, generatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payslip_path":         path,
			"payslip_generated_at": generatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
