package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "go-hrdesk/internal/attendance/errors"
	"go-hrdesk/internal/shared/apperror"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/dberror"
	"go-hrdesk/internal/shared/formfield"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, actor string, req RecordAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, filter GetAttendanceFilterRequest) ([]AttendanceResponse, int64, error)
	GetByID(ctx context.Context, id int64) (AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{db: db, repo: repo, logger: l.Named("attendance.service")}
}

// Record stores one attendance line. An employee has at most one line per
// date; the check and the insert share a transaction.
func (s *service) Record(ctx context.Context, actor string, req RecordAttendanceRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employee, err := formfield.Required("Employee", req.Employee)
	if err != nil {
		return AttendanceResponse{}, err
	}
	date, err := formfield.Date("Date", req.Date)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if req.Present == nil {
		return AttendanceResponse{}, apperror.RequiredField("Present")
	}

	leaveType := strings.TrimSpace(req.LeaveType)
	if leaveType == "" {
		leaveType = LeaveNone
	}
	if err := formfield.OneOf("Leave Type", leaveType, LeaveTypes); err != nil {
		return AttendanceResponse{}, err
	}
	if *req.Present && leaveType != LeaveNone {
		return AttendanceResponse{}, attendanceerrors.ErrLeaveWhilePresent
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, dberror.Map(err, nil)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDate(ctx, employee, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, dberror.Map(err, nil)
	}
	if err == nil && existing != nil {
		log.Warn("attendance already recorded",
			zap.String("employee", employee),
			zap.String("date", req.Date),
		)
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyRecorded
	}

	row := &Attendance{
		Employee:  employee,
		Date:      date,
		Present:   *req.Present,
		LeaveType: leaveType,
		CreatedBy: actor,
	}
	if err := qtx.Create(ctx, row); err != nil {
		log.Error("record attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, dberror.Map(err, nil)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, dberror.Map(err, nil)
	}

	log.Info("attendance recorded", zap.Int64("attendance_id", row.ID), zap.Bool("present", row.Present))
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter GetAttendanceFilterRequest) ([]AttendanceResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	q := AttendanceQueryFilter{
		Employee: strings.TrimSpace(filter.Employee),
		Limit:    filter.PageSize,
		Offset:   (filter.Page - 1) * filter.PageSize,
	}
	if filter.From != "" {
		from, err := formfield.Date("From", filter.From)
		if err != nil {
			return nil, 0, err
		}
		q.From = &from
	}
	if filter.To != "" {
		to, err := formfield.Date("To", filter.To)
		if err != nil {
			return nil, 0, err
		}
		q.To = &to
	}

	rows, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, 0, dberror.Map(err, nil)
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (AttendanceResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, dberror.Map(err, attendanceerrors.ErrAttendanceNotFound)
	}
	return mapToResponse(*row), nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		Employee:  a.Employee,
		Date:      a.Date.Format(formfield.DateLayout),
		Present:   a.Present,
		LeaveType: a.LeaveType,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
