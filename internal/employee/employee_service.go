package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/counter"
	"go-hrdesk/internal/shared/formfield"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsVersionKey = "employees:options:version"
	employeeOptionsTTL        = time.Hour
)

// EmployeeOptionsKey is the cached option list for one version. Create bumps
// the version instead of deleting, so a load that started earlier cannot
// repopulate the list the new employee is missing from.
func EmployeeOptionsKey(version int64) string {
	return fmt.Sprintf("employees:options:v%d", version)
}

// FormatEmployeeNumber renders a counter value as EMP-000001.
func FormatEmployeeNumber(v int64) string {
	return fmt.Sprintf("EMP-%06d", v)
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter GetEmployeesFilterRequest) ([]EmployeeResponse, int64, error)
	GetOptions(ctx context.Context) ([]Option, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, actor string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested",
		zap.String("department", req.Department),
		zap.String("status", req.Status),
	)

	name, err := formfield.Required("Name", req.Name)
	if err != nil {
		return EmployeeResponse{}, err
	}
	joinDate, err := formfield.Date("Join Date", req.JoinDate)
	if err != nil {
		log.Warn("create employee invalid join_date", zap.String("join_date", req.JoinDate))
		return EmployeeResponse{}, err
	}
	department, err := formfield.Required("Department", req.Department)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if err := formfield.OneOf("Status", req.Status, Statuses); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	// Drawn inside the transaction: a failed insert must not burn a number.
	nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.TypeEmployeeNumber)
	if err != nil {
		log.Error("create employee generate number failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl := &Employee{
		EmployeeNumber: FormatEmployeeNumber(nextVal),
		Name:           name,
		JoinDate:       joinDate,
		Department:     department,
		Status:         req.Status,
		CreatedBy:      actor,
	}
	if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.rdb != nil {
		if err := s.rdb.Incr(ctx, EmployeeOptionsVersionKey).Err(); err != nil {
			log.Error("failed to invalidate employee options cache",
				zap.Error(err),
				zap.String("key", EmployeeOptionsVersionKey),
			)
		}
	}

	log.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
		zap.String("employee_number", empl.EmployeeNumber),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, filter GetEmployeesFilterRequest) ([]EmployeeResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	empls, total, err := s.repo.FindAll(ctx, EmployeeQueryFilter{
		Department: filter.Department,
		Status:     filter.Status,
		Limit:      filter.PageSize,
		Offset:     (filter.Page - 1) * filter.PageSize,
	})
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		resp[i] = mapToResponse(e)
	}
	return resp, total, nil
}

func (s *service) GetOptions(ctx context.Context) ([]Option, error) {
	key, useCache := s.optionsKey(ctx)
	if useCache {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var options []Option
			if json.Unmarshal([]byte(cached), &options) == nil {
				return options, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		options, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		if options == nil {
			options = []Option{}
		}

		if useCache {
			if data, err := json.Marshal(options); err == nil {
				if err := s.rdb.Set(ctx, key, data, employeeOptionsTTL).Err(); err != nil {
					s.logger.Warn("employee options cache write failed", zap.Error(err))
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

func (s *service) optionsKey(ctx context.Context) (string, bool) {
	if s.rdb == nil {
		return EmployeeOptionsKey(0), false
	}
	version, err := s.rdb.Get(ctx, EmployeeOptionsVersionKey).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		return EmployeeOptionsKey(0), true
	case err != nil:
		s.logger.Warn("employee options version read failed", zap.Error(err))
		return EmployeeOptionsKey(0), false
	}
	return EmployeeOptionsKey(version), true
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID,
		EmployeeNumber: empl.EmployeeNumber,
		Name:           empl.Name,
		JoinDate:       empl.JoinDate.Format(formfield.DateLayout),
		Department:     empl.Department,
		Status:         empl.Status,
		CreatedBy:      empl.CreatedBy,
		CreatedAt:      empl.CreatedAt.Format(time.RFC3339),
	}
}
