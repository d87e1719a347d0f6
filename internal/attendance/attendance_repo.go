package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-hrdesk/internal/shared/dbtx"
	"go-hrdesk/internal/shared/formfield"

	"gorm.io/gorm"
)

type AttendanceQueryFilter struct {
	Employee string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employee string, date time.Time) (*Attendance, error)
	FindAll(ctx context.Context, filter AttendanceQueryFilter) ([]Attendance, int64, error)
	FindByID(ctx context.Context, id int64) (*Attendance, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employee string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee = ?", employee).
		Where("date = ?", date.Format(formfield.DateLayout)).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context, filter AttendanceQueryFilter) ([]Attendance, int64, error) {
	query := r.db.WithContext(ctx).Model(&Attendance{})
	if filter.Employee != "" {
		query = query.Where("employee = ?", filter.Employee)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", filter.From.Format(formfield.DateLayout))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To.Format(formfield.DateLayout))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Attendance
	err := query.
		Order("date DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Attendance, error) {
	var a Attendance
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
