package candidate

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	candidateerrors "go-hrdesk/internal/candidate/errors"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/dberror"
	"go-hrdesk/internal/shared/formfield"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	OptionsVersionKey = "candidates:options:version"
	OptionsCacheTTL   = time.Hour
)

// OptionsCacheKey is the picker cache for one version of the candidate list.
// Create bumps the version, so a load that raced with it writes a key no
// reader asks for again.
func OptionsCacheKey(version int64) string {
	return "candidates:options:v" + strconv.FormatInt(version, 10)
}

//go:generate mockgen -source=candidate_service.go -destination=mock/candidate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor string, req CreateCandidateRequest) (CandidateResponse, error)
	GetAll(ctx context.Context, page, pageSize int) ([]CandidateResponse, int64, error)
	GetByID(ctx context.Context, id int64) (CandidateResponse, error)
	Options(ctx context.Context) ([]Option, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l.Named("candidate.service"),
	}
}

func (s *service) Create(ctx context.Context, actor string, req CreateCandidateRequest) (CandidateResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	name, err := formfield.Required("Name", req.Name)
	if err != nil {
		return CandidateResponse{}, err
	}
	designation, err := formfield.Required("Designation", req.Designation)
	if err != nil {
		return CandidateResponse{}, err
	}
	project, err := formfield.Required("Project", req.Project)
	if err != nil {
		return CandidateResponse{}, err
	}
	location, err := formfield.Required("Location", req.Location)
	if err != nil {
		return CandidateResponse{}, err
	}

	c := &Candidate{
		Name:        name,
		Designation: designation,
		Project:     project,
		Location:    location,
		CreatedBy:   actor,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		log.Error("create candidate persist failed", zap.Error(err))
		return CandidateResponse{}, dberror.Map(err, nil)
	}

	if s.rdb != nil {
		if err := s.rdb.Incr(ctx, OptionsVersionKey).Err(); err != nil {
			log.Warn("candidate options cache invalidation failed", zap.Error(err))
		}
	}

	log.Info("candidate recorded", zap.Int64("candidate_id", c.ID))
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, page, pageSize int) ([]CandidateResponse, int64, error) {
	candidates, total, err := s.repo.FindAll(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, dberror.Map(err, nil)
	}

	resp := make([]CandidateResponse, len(candidates))
	for i, c := range candidates {
		resp[i] = mapToResponse(c)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (CandidateResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CandidateResponse{}, dberror.Map(err, candidateerrors.ErrCandidateNotFound)
	}
	return mapToResponse(*c), nil
}

// Options serves the candidate picker from Redis, collapsing concurrent
// misses into one query. Without a usable cache it reads the store directly.
func (s *service) Options(ctx context.Context) ([]Option, error) {
	cacheKey, cached := s.optionsCacheKey(ctx)
	if cached {
		if raw, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var options []Option
			if err := json.Unmarshal([]byte(raw), &options); err == nil {
				return options, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		options, err := s.repo.ListOptions(ctx)
		if err != nil {
			return nil, dberror.Map(err, nil)
		}
		if options == nil {
			options = []Option{}
		}

		if cached {
			if data, err := json.Marshal(options); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, OptionsCacheTTL).Err(); err != nil {
					s.logger.Warn("candidate options cache write failed", zap.Error(err))
				}
			}
		}
		return options, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]Option), nil
}

// optionsCacheKey reports false when the version cannot be read.
func (s *service) optionsCacheKey(ctx context.Context) (string, bool) {
	if s.rdb == nil {
		return OptionsCacheKey(0), false
	}
	version, err := s.rdb.Get(ctx, OptionsVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return OptionsCacheKey(0), true
	}
	if err != nil {
		s.logger.Warn("candidate options version read failed", zap.Error(err))
		return OptionsCacheKey(0), false
	}
	return OptionsCacheKey(version), true
}

func mapToResponse(c Candidate) CandidateResponse {
	return CandidateResponse{
		ID:          c.ID,
		Name:        c.Name,
		Designation: c.Designation,
		Project:     c.Project,
		Location:    c.Location,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}
