package interview

import (
	"context"
	"database/sql"
	"time"

	"go-hrdesk/internal/shared/dbtx"

	"gorm.io/gorm"
)

type InterviewQueryFilter struct {
	CandidateID int64
	Limit       int
	Offset      int
}

//go:generate mockgen -source=interview_repo.go -destination=mock/interview_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, interview *Interview) error
	FindAll(ctx context.Context, filter InterviewQueryFilter) ([]Interview, int64, error)
	FindByID(ctx context.Context, id int64) (*Interview, error)
	FindCandidate(ctx context.Context, candidateID int64) (*CandidateRef, error)
	UpdateReportPath(ctx context.Context, id int64, path string, generatedAt time.Time) error
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

func (r *repository) Create(ctx context.Context, interview *Interview) error {
	return r.db.WithContext(ctx).Omit("Candidate").Create(interview).Error
}

func (r *repository) FindAll(ctx context.Context, filter InterviewQueryFilter) ([]Interview, int64, error) {
	query := r.db.WithContext(ctx).Model(&Interview{})
	if filter.CandidateID > 0 {
		query = query.Where("candidate_id = ?", filter.CandidateID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var interviews []Interview
	err := query.
		Preload("Candidate").
		Order("id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&interviews).Error
	return interviews, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Interview, error) {
	var interview Interview
	err := r.db.WithContext(ctx).
		Preload("Candidate").
		First(&interview, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *repository) FindCandidate(ctx context.Context, candidateID int64) (*CandidateRef, error) {
	var c CandidateRef
	if err := r.db.WithContext(ctx).First(&c, "id = ?", candidateID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) UpdateReportPath(ctx context.Context, id int64, path string, generatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&Interview{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"report_path":         path,
			"report_generated_at": generatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
