package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-hrdesk/internal/events"
	"go-hrdesk/internal/messaging/kafka"
	"go-hrdesk/internal/payroll"
	payrollerrors "go-hrdesk/internal/payroll/errors"
	"go-hrdesk/internal/shared/apperror"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePayrollRepository struct {
	createFn            func(ctx context.Context, p *payroll.Payroll) error
	findAllFn           func(ctx context.Context, filter payroll.PayrollQueryFilter) ([]payroll.Payroll, int64, error)
	findByIDFn          func(ctx context.Context, id int64) (*payroll.Payroll, error)
	updatePayslipPathFn func(ctx context.Context, id int64, path string, at time.Time) error
	boundTx             *sql.Tx
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	f.boundTx = tx
	return f
}

func (f *fakePayrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) FindAll(ctx context.Context, filter payroll.PayrollQueryFilter) ([]payroll.Payroll, int64, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, 0, nil
}

func (f *fakePayrollRepository) FindByID(ctx context.Context, id int64) (*payroll.Payroll, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) UpdatePayslipPath(ctx context.Context, id int64, path string, at time.Time) error {
	if f.updatePayslipPathFn != nil {
		return f.updatePayslipPathFn(ctx, id, path, at)
	}
	return nil
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
	err     error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type payrollServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payroll.Service
	repo    *fakePayrollRepository
	outbox  *fakeOutboxRepository
	dir     string
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dir := t.TempDir()
	repo := &fakePayrollRepository{}
	outbox := &fakeOutboxRepository{}
	svc := payroll.NewService(db, repo, outbox, storage.NewLocalStore(dir))

	return &payrollServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, outbox: outbox, dir: dir}
}

func floatPtr(v float64) *float64 { return &v }

func TestPayrollService_Preview(t *testing.T) {
	deps := setupPayrollServiceTest(t)

	b, err := deps.service.Preview(context.Background(), payroll.PreviewPayrollRequest{BaseSalary: floatPtr(10000)})
	require.NoError(t, err)
	assert.InDelta(t, 8475, b.NetSalary, 1e-9)

	_, err = deps.service.Preview(context.Background(), payroll.PreviewPayrollRequest{BaseSalary: floatPtr(-5)})
	assert.ErrorIs(t, err, payroll.ErrNegativeBaseSalary)
}

func TestPayrollService_Create(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")

	t.Run("persists computed values and queues event", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.createFn = func(ctx context.Context, p *payroll.Payroll) error {
			assert.Equal(t, "Ravi Kumar", p.Employee)
			assert.Equal(t, "2024-03", p.Month)
			assert.InDelta(t, 1200, p.PF, 1e-9)
			assert.InDelta(t, 325, p.ESIC, 1e-9)
			assert.InDelta(t, 8475, p.TotalSalary, 1e-9)
			assert.Equal(t, "hr@example.com", p.CreatedBy)
			p.ID = 42
			return nil
		}

		resp, err := deps.service.Create(ctx, "hr@example.com", payroll.CreatePayrollRequest{
			Employee:   "  Ravi Kumar ",
			Month:      "2024-03",
			BaseSalary: floatPtr(10000),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.InDelta(t, 8475, resp.NetSalary, 1e-9)
		assert.NotNil(t, deps.repo.boundTx)

		require.Len(t, deps.outbox.created, 1)
		ev := deps.outbox.created[0]
		assert.Equal(t, events.PayrollRecordedTopic, ev.Topic)
		assert.Equal(t, "42", ev.AggregateID)
		assert.Equal(t, "req-1", ev.RequestID)
		assert.Equal(t, kafka.OutboxStatusPending, ev.Status)

		var payload events.PayrollRecordedEvent
		require.NoError(t, json.Unmarshal(ev.Payload, &payload))
		assert.Equal(t, int64(42), payload.PayrollID)
		assert.Equal(t, "hr@example.com", payload.RecordedBy)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("zero salary is valid", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(ctx, "hr@example.com", payroll.CreatePayrollRequest{
			Employee: "A", Month: "2024-01", BaseSalary: floatPtr(0),
		})

		require.NoError(t, err)
		assert.Zero(t, resp.NetSalary)
		assert.Zero(t, resp.ProvidentFund)
	})

	t.Run("validation failures never open a transaction", func(t *testing.T) {
		cases := []struct {
			name string
			req  payroll.CreatePayrollRequest
			err  error
		}{
			{"negative salary", payroll.CreatePayrollRequest{Employee: "A", Month: "2024-01", BaseSalary: floatPtr(-1)}, payrollerrors.ErrNegativeBaseSalary},
			{"blank employee", payroll.CreatePayrollRequest{Employee: "  ", Month: "2024-01", BaseSalary: floatPtr(1)}, payrollerrors.ErrEmployeeRequired},
			{"bad month", payroll.CreatePayrollRequest{Employee: "A", Month: "March", BaseSalary: floatPtr(1)}, payrollerrors.ErrInvalidMonth},
			{"missing salary", payroll.CreatePayrollRequest{Employee: "A", Month: "2024-01"}, payrollerrors.ErrInvalidBaseSalary},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				deps := setupPayrollServiceTest(t)

				_, err := deps.service.Create(ctx, "hr@example.com", tc.req)

				assert.ErrorIs(t, err, tc.err)
				assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
			})
		}
	})

	t.Run("store failure rolls back", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.createFn = func(ctx context.Context, p *payroll.Payroll) error {
			return errors.New("connection reset")
		}

		_, err := deps.service.Create(ctx, "hr@example.com", payroll.CreatePayrollRequest{
			Employee: "A", Month: "2024-01", BaseSalary: floatPtr(100),
		})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInternalError, appErr.Code)
		assert.Empty(t, deps.outbox.created)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.outbox.err = errors.New("insert failed")

		_, err := deps.service.Create(ctx, "hr@example.com", payroll.CreatePayrollRequest{
			Employee: "A", Month: "2024-01", BaseSalary: floatPtr(100),
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_GetAll(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	deps.repo.findAllFn = func(ctx context.Context, filter payroll.PayrollQueryFilter) ([]payroll.Payroll, int64, error) {
		assert.Equal(t, 10, filter.Limit)
		assert.Equal(t, 10, filter.Offset)
		assert.Equal(t, "2024-03", filter.Month)
		return []payroll.Payroll{{ID: 11, Employee: "A", Month: "2024-03", TotalSalary: 8475}}, 11, nil
	}

	resp, total, err := deps.service.GetAll(context.Background(), payroll.GetPayrollsFilterRequest{Month: "2024-03", Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	require.Len(t, resp, 1)
	assert.Equal(t, int64(11), resp[0].ID)

	_, _, err = deps.service.GetAll(context.Background(), payroll.GetPayrollsFilterRequest{Month: "2024/03"})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)
}

func TestPayrollService_GetByID_NotFound(t *testing.T) {
	deps := setupPayrollServiceTest(t)

	_, err := deps.service.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
}

func TestPayrollService_RenderPayslip(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	deps.repo.findByIDFn = func(ctx context.Context, id int64) (*payroll.Payroll, error) {
		return &payroll.Payroll{ID: id, Employee: "Ravi Kumar", Month: "2024-03", BaseSalary: 10000, PF: 1200, ESIC: 325, TotalSalary: 8475}, nil
	}

	slip, err := deps.service.RenderPayslip(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "payslip_Ravi_Kumar_2024-03.pdf", slip.FileName)
	assert.Contains(t, string(slip.Content), "%PDF-1.4")
	assert.Contains(t, string(slip.Content), "(Net Salary: 8475.00) Tj")
	assert.Contains(t, string(slip.Content), "(Provident Fund \\(12%\\): 1200.00) Tj")
}

func TestPayrollService_GeneratePayslip(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	deps.repo.findByIDFn = func(ctx context.Context, id int64) (*payroll.Payroll, error) {
		return &payroll.Payroll{ID: id, Employee: "Asha", Month: "2024-04", BaseSalary: 500, PF: 60, ESIC: 16.25, TotalSalary: 423.75}, nil
	}
	var storedPath string
	deps.repo.updatePayslipPathFn = func(ctx context.Context, id int64, path string, at time.Time) error {
		assert.Equal(t, int64(7), id)
		storedPath = path
		return nil
	}

	resp, err := deps.service.GeneratePayslip(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, resp.PayslipPath)
	assert.Equal(t, storedPath, *resp.PayslipPath)
	assert.Equal(t, filepath.Join(deps.dir, "7_payslip_Asha_2024-04.pdf"), storedPath)
	assert.NotNil(t, resp.PayslipGeneratedAt)

	content, err := os.ReadFile(storedPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "(Employee: Asha) Tj")
}

func TestPayrollService_GeneratePayslip_SameEmployeeAndMonth(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	records := map[int64]*payroll.Payroll{
		1: {ID: 1, Employee: "Asha", Month: "2024-04", BaseSalary: 1000, PF: 120, ESIC: 32.5, TotalSalary: 847.5},
		2: {ID: 2, Employee: "Asha", Month: "2024-04", BaseSalary: 2000, PF: 240, ESIC: 65, TotalSalary: 1695},
	}
	deps.repo.findByIDFn = func(ctx context.Context, id int64) (*payroll.Payroll, error) {
		return records[id], nil
	}
	deps.repo.updatePayslipPathFn = func(ctx context.Context, id int64, path string, at time.Time) error {
		return nil
	}

	first, err := deps.service.GeneratePayslip(context.Background(), 1)
	require.NoError(t, err)
	second, err := deps.service.GeneratePayslip(context.Background(), 2)
	require.NoError(t, err)

	require.NotNil(t, first.PayslipPath)
	require.NotNil(t, second.PayslipPath)
	assert.NotEqual(t, *first.PayslipPath, *second.PayslipPath)

	content, err := os.ReadFile(*first.PayslipPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "(Base Salary: 1000.00) Tj")

	content, err = os.ReadFile(*second.PayslipPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "(Base Salary: 2000.00) Tj")
}
