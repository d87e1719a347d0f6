package payroll

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"time"

	"go-hrdesk/internal/events"
	"go-hrdesk/internal/messaging/kafka"
	payrollerrors "go-hrdesk/internal/payroll/errors"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/dberror"
	"go-hrdesk/internal/shared/storage"

	"go.uber.org/zap"
)

const monthLayout = "2006-01"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, req PreviewPayrollRequest) (Breakdown, error)
	Create(ctx context.Context, actor string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, int64, error)
	GetByID(ctx context.Context, id int64) (PayrollResponse, error)
	RenderPayslip(ctx context.Context, id int64) (Payslip, error)
	GeneratePayslip(ctx context.Context, id int64) (PayrollResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	payslips storage.FileStore
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	payslips storage.FileStore,
	logger ...*zap.Logger,
) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	return &service{
		db:       db,
		repo:     repo,
		outbox:   outbox,
		payslips: payslips,
		logger:   l.Named("payroll.service"),
		now:      time.Now,
	}
}

func (s *service) Preview(ctx context.Context, req PreviewPayrollRequest) (Breakdown, error) {
	if req.BaseSalary == nil {
		return Breakdown{}, payrollerrors.ErrInvalidBaseSalary
	}
	return Compute(*req.BaseSalary)
}

func (s *service) Create(ctx context.Context, actor string, req CreatePayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	employee := strings.TrimSpace(req.Employee)
	if employee == "" {
		return PayrollResponse{}, payrollerrors.ErrEmployeeRequired
	}
	month := strings.TrimSpace(req.Month)
	if _, err := time.Parse(monthLayout, month); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidMonth
	}
	if req.BaseSalary == nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidBaseSalary
	}

	breakdown, err := Compute(*req.BaseSalary)
	if err != nil {
		log.Warn("create payroll rejected", zap.Float64("base_salary", *req.BaseSalary), zap.Error(err))
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, dberror.Map(err, nil)
	}
	defer tx.Rollback()

	record := &Payroll{
		Employee:    employee,
		Month:       month,
		BaseSalary:  breakdown.BaseSalary,
		PF:          breakdown.ProvidentFund,
		ESIC:        breakdown.InsuranceContribution,
		TotalSalary: breakdown.NetSalary,
		CreatedBy:   actor,
	}

	if err := s.repo.WithTx(tx).Create(ctx, record); err != nil {
		log.Error("create payroll persist failed", zap.Error(err))
		return PayrollResponse{}, dberror.Map(err, nil)
	}

	if s.outbox != nil {
		event, err := kafka.NewPendingEvent(ctx, kafka.AggregatePayroll, record.ID, events.PayrollRecordedType, events.PayrollRecordedTopic, events.PayrollRecordedEvent{
			EventType:  events.PayrollRecordedType,
			RequestID:  rid,
			PayrollID:  record.ID,
			Employee:   record.Employee,
			Month:      record.Month,
			RecordedBy: actor,
			OccurredAt: s.now().UTC(),
		})
		if err != nil {
			return PayrollResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("create payroll outbox persist failed", zap.Error(err))
			return PayrollResponse{}, dberror.Map(err, nil)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("create payroll commit failed", zap.Error(err))
		return PayrollResponse{}, dberror.Map(err, nil)
	}

	log.Info("payroll recorded",
		zap.Int64("payroll_id", record.ID),
		zap.String("month", record.Month),
	)
	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, int64, error) {
	if filter.Month != "" {
		if _, err := time.Parse(monthLayout, filter.Month); err != nil {
			return nil, 0, payrollerrors.ErrInvalidMonth
		}
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	payrolls, total, err := s.repo.FindAll(ctx, PayrollQueryFilter{
		Employee: strings.TrimSpace(filter.Employee),
		Month:    filter.Month,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	})
	if err != nil {
		return nil, 0, dberror.Map(err, nil)
	}

	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (PayrollResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, dberror.Map(err, payrollerrors.ErrPayrollNotFound)
	}
	return mapToResponse(*record), nil
}

func (s *service) RenderPayslip(ctx context.Context, id int64) (Payslip, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Payslip{}, dberror.Map(err, payrollerrors.ErrPayrollNotFound)
	}
	return renderPayslip(*record)
}

// GeneratePayslip renders the payslip into the archive and records its path.
// Running it twice for the same record overwrites that record's file.
func (s *service) GeneratePayslip(ctx context.Context, id int64) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, dberror.Map(err, payrollerrors.ErrPayrollNotFound)
	}

	slip, err := renderPayslip(*record)
	if err != nil {
		return PayrollResponse{}, err
	}

	path, size, err := s.payslips.Save(ctx, ArchiveFileName(*record), bytes.NewReader(slip.Content))
	if err != nil {
		log.Error("store payslip failed", zap.Int64("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, err
	}

	generatedAt := s.now().UTC()
	if err := s.repo.UpdatePayslipPath(ctx, id, path, generatedAt); err != nil {
		return PayrollResponse{}, dberror.Map(err, payrollerrors.ErrPayrollNotFound)
	}

	record.PayslipPath = &path
	record.PayslipGeneratedAt = &generatedAt

	log.Info("payslip stored",
		zap.Int64("payroll_id", id),
		zap.String("path", path),
		zap.Int64("size_bytes", size),
	)
	return mapToResponse(*record), nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:                    p.ID,
		Employee:              p.Employee,
		Month:                 p.Month,
		BaseSalary:            p.BaseSalary,
		ProvidentFund:         p.PF,
		InsuranceContribution: p.ESIC,
		NetSalary:             p.TotalSalary,
		CreatedBy:             p.CreatedBy,
		PayslipPath:           p.PayslipPath,
		CreatedAt:             p.CreatedAt.Format(time.RFC3339),
	}
	if p.PayslipGeneratedAt != nil {
		v := p.PayslipGeneratedAt.Format(time.RFC3339)
		resp.PayslipGeneratedAt = &v
	}
	return resp
}
