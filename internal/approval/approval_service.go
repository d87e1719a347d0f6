package approval

import (
	"context"
	"strings"
	"time"

	approvalerrors "go-hrdesk/internal/approval/errors"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/dberror"
	"go-hrdesk/internal/shared/formfield"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, actor string, req CreateApprovalRequest) (ApprovalResponse, error)
	GetAll(ctx context.Context, filter GetApprovalsFilterRequest) ([]ApprovalResponse, int64, error)
	GetByID(ctx context.Context, id int64) (ApprovalResponse, error)
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
	return &service{repo: repo, logger: l.Named("approval.service")}
}

func (s *service) Create(ctx context.Context, actor string, req CreateApprovalRequest) (ApprovalResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if err := formfield.OneOf("Request Type", req.RequestType, RequestTypes); err != nil {
		return ApprovalResponse{}, err
	}
	requestedBy, err := formfield.Required("Requested By", req.RequestedBy)
	if err != nil {
		return ApprovalResponse{}, err
	}
	if err := formfield.OneOf("Status", req.Status, Statuses); err != nil {
		return ApprovalResponse{}, err
	}
	approvedBy := strings.TrimSpace(req.ApprovedBy)
	if req.Status != StatusPending && approvedBy == "" {
		return ApprovalResponse{}, approvalerrors.ErrApproverRequired
	}

	a := &Approval{
		RequestType: req.RequestType,
		RequestedBy: requestedBy,
		ApprovedBy:  approvedBy,
		Status:      req.Status,
		CreatedBy:   actor,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		log.Error("create approval persist failed", zap.Error(err))
		return ApprovalResponse{}, dberror.Map(err, nil)
	}

	log.Info("approval recorded",
		zap.Int64("approval_id", a.ID),
		zap.String("request_type", a.RequestType),
		zap.String("status", a.Status),
	)
	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, filter GetApprovalsFilterRequest) ([]ApprovalResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	approvals, total, err := s.repo.FindAll(ctx, ApprovalQueryFilter{
		RequestType: filter.RequestType,
		Status:      filter.Status,
		Limit:       filter.PageSize,
		Offset:      (filter.Page - 1) * filter.PageSize,
	})
	if err != nil {
		return nil, 0, dberror.Map(err, nil)
	}

	resp := make([]ApprovalResponse, len(approvals))
	for i, a := range approvals {
		resp[i] = mapToResponse(a)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (ApprovalResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ApprovalResponse{}, dberror.Map(err, approvalerrors.ErrApprovalNotFound)
	}
	return mapToResponse(*a), nil
}

func mapToResponse(a Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:          a.ID,
		RequestType: a.RequestType,
		RequestedBy: a.RequestedBy,
		ApprovedBy:  a.ApprovedBy,
		Status:      a.Status,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}
