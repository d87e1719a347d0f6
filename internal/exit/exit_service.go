package exit

import (
	"context"
	"strings"
	"time"

	exiterrors "go-hrdesk/internal/exit/errors"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/dberror"
	"go-hrdesk/internal/shared/formfield"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, actor string, req CreateExitRequest) (ExitResponse, error)
	GetAll(ctx context.Context, filter GetExitsFilterRequest) ([]ExitResponse, int64, error)
	GetByID(ctx context.Context, id int64) (ExitResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, logger: l.Named("exit.service")}
}

func (s *service) Create(ctx context.Context, actor string, req CreateExitRequest) (ExitResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employee, err := formfield.Required("Employee", req.Employee)
	if err != nil {
		return ExitResponse{}, err
	}
	exitDate, err := formfield.Date("Exit Date", req.ExitDate)
	if err != nil {
		return ExitResponse{}, err
	}

	e := &Exit{
		Employee:  employee,
		ExitDate:  exitDate,
		Reason:    strings.TrimSpace(req.Reason),
		CreatedBy: actor,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		log.Error("create exit persist failed", zap.Error(err))
		return ExitResponse{}, dberror.Map(err, nil)
	}

	log.Info("exit recorded", zap.Int64("exit_id", e.ID))
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, filter GetExitsFilterRequest) ([]ExitResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	exits, total, err := s.repo.FindAll(ctx, strings.TrimSpace(filter.Employee), filter.PageSize, (filter.Page-1)*filter.PageSize)
	if err != nil {
		return nil, 0, dberror.Map(err, nil)
	}

	resp := make([]ExitResponse, len(exits))
	for i, e := range exits {
		resp[i] = mapToResponse(e)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (ExitResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ExitResponse{}, dberror.Map(err, exiterrors.ErrExitNotFound)
	}
	return mapToResponse(*e), nil
}

func mapToResponse(e Exit) ExitResponse {
	return ExitResponse{
		ID:        e.ID,
		Employee:  e.Employee,
		ExitDate:  e.ExitDate.Format(formfield.DateLayout),
		Reason:    e.Reason,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
