package asset

import (
	"context"
	"time"

	asseterrors "go-hrdesk/internal/asset/errors"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/dberror"
	"go-hrdesk/internal/shared/formfield"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, actor string, req CreateAssetRequest) (AssetResponse, error)
	GetAll(ctx context.Context, filter GetAssetsFilterRequest) ([]AssetResponse, int64, error)
	GetByID(ctx context.Context, id int64) (AssetResponse, error)
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
	return &service{repo: repo, logger: l.Named("asset.service")}
}

func (s *service) Create(ctx context.Context, actor string, req CreateAssetRequest) (AssetResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employee, err := formfield.Required("Employee", req.Employee)
	if err != nil {
		return AssetResponse{}, err
	}
	item, err := formfield.Required("Asset or Request", req.Asset)
	if err != nil {
		return AssetResponse{}, err
	}
	if err := formfield.OneOf("Status", req.Status, Statuses); err != nil {
		return AssetResponse{}, err
	}

	a := &Asset{Employee: employee, Item: item, Status: req.Status, CreatedBy: actor}
	if err := s.repo.Create(ctx, a); err != nil {
		log.Error("create asset persist failed", zap.Error(err))
		return AssetResponse{}, dberror.Map(err, nil)
	}

	log.Info("asset recorded", zap.Int64("asset_id", a.ID), zap.String("status", a.Status))
	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, filter GetAssetsFilterRequest) ([]AssetResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	assets, total, err := s.repo.FindAll(ctx, AssetQueryFilter{
		Employee: filter.Employee,
		Status:   filter.Status,
		Limit:    filter.PageSize,
		Offset:   (filter.Page - 1) * filter.PageSize,
	})
	if err != nil {
		return nil, 0, dberror.Map(err, nil)
	}

	resp := make([]AssetResponse, len(assets))
	for i, a := range assets {
		resp[i] = mapToResponse(a)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (AssetResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AssetResponse{}, dberror.Map(err, asseterrors.ErrAssetNotFound)
	}
	return mapToResponse(*a), nil
}

func mapToResponse(a Asset) AssetResponse {
	return AssetResponse{
		ID:        a.ID,
		Employee:  a.Employee,
		Asset:     a.Item,
		Status:    a.Status,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
