package offer

import (
	"context"
	"time"

	offererrors "go-hrdesk/internal/offer/errors"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/dberror"
	"go-hrdesk/internal/shared/formfield"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, actor string, req CreateOfferRequest) (OfferResponse, error)
	GetAll(ctx context.Context, filter GetOffersFilterRequest) ([]OfferResponse, int64, error)
	GetByID(ctx context.Context, id int64) (OfferResponse, error)
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
	return &service{repo: repo, logger: l.Named("offer.service")}
}

func (s *service) Create(ctx context.Context, actor string, req CreateOfferRequest) (OfferResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	candidate, err := formfield.Required("Candidate", req.Candidate)
	if err != nil {
		return OfferResponse{}, err
	}
	offerDate, err := formfield.Date("Offer Date", req.OfferDate)
	if err != nil {
		return OfferResponse{}, err
	}
	offeredBy, err := formfield.Required("Offered By", req.OfferedBy)
	if err != nil {
		return OfferResponse{}, err
	}
	if err := formfield.OneOf("Status", req.Status, Statuses); err != nil {
		return OfferResponse{}, err
	}

	o := &Offer{
		Candidate: candidate,
		OfferDate: offerDate,
		OfferedBy: offeredBy,
		Status:    req.Status,
		CreatedBy: actor,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("create offer persist failed", zap.Error(err))
		return OfferResponse{}, dberror.Map(err, nil)
	}

	log.Info("offer recorded", zap.Int64("offer_id", o.ID), zap.String("status", o.Status))
	return mapToResponse(*o), nil
}

func (s *service) GetAll(ctx context.Context, filter GetOffersFilterRequest) ([]OfferResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	offers, total, err := s.repo.FindAll(ctx, OfferQueryFilter{
		Status: filter.Status,
		Limit:  filter.PageSize,
		Offset: (filter.Page - 1) * filter.PageSize,
	})
	if err != nil {
		return nil, 0, dberror.Map(err, nil)
	}

	resp := make([]OfferResponse, len(offers))
	for i, o := range offers {
		resp[i] = mapToResponse(o)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (OfferResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OfferResponse{}, dberror.Map(err, offererrors.ErrOfferNotFound)
	}
	return mapToResponse(*o), nil
}

func mapToResponse(o Offer) OfferResponse {
	return OfferResponse{
		ID:        o.ID,
		Candidate: o.Candidate,
		OfferDate: o.OfferDate.Format(formfield.DateLayout),
		OfferedBy: o.OfferedBy,
		Status:    o.Status,
		CreatedBy: o.CreatedBy,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}
