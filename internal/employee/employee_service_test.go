package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrdesk/internal/employee"
	employeeerrors "go-hrdesk/internal/employee/errors"
	"go-hrdesk/internal/shared/apperror"
	"go-hrdesk/internal/shared/counter"

	employeeMock "go-hrdesk/internal/employee/mock"
	counterMock "go-hrdesk/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   employee.NewService(db, repo, counterRepo, dbRedis),
		repo:      repo,
		counter:   counterRepo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:       "Ravi Kumar",
		JoinDate:   "2024-04-01",
		Department: "Finance",
		Status:     employee.StatusActive,
	}
}

func TestFormatEmployeeNumber(t *testing.T) {
	assert.Equal(t, "EMP-000001", employee.FormatEmployeeNumber(1))
	assert.Equal(t, "EMP-123456", employee.FormatEmployeeNumber(123456))
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - employee number from counter", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().
			GetNextValue(ctx, counter.TypeEmployeeNumber).
			Return(int64(123), nil)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP-000123", e.EmployeeNumber)
				assert.Equal(t, "Ravi Kumar", e.Name)
				assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), e.JoinDate)
				assert.Equal(t, "hr@example.com", e.CreatedBy)
				e.ID = 9
				return nil
			})

		deps.redismock.ExpectIncr(employee.EmployeeOptionsVersionKey).SetVal(1)

		resp, err := deps.service.Create(ctx, "hr@example.com", validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.ID)
		assert.Equal(t, "EMP-000123", resp.EmployeeNumber)
		assert.Equal(t, "2024-04-01", resp.JoinDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate employee number", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.TypeEmployeeNumber).Return(int64(5), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_employee_number"})

		_, err := deps.service.Create(ctx, "hr@example.com", validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("counter failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.TypeEmployeeNumber).Return(int64(0), errors.New("db down"))

		_, err := deps.service.Create(ctx, "hr@example.com", validCreateRequest())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInternalError, appErr.Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(r *employee.CreateEmployeeRequest)
			msg    string
		}{
			{"status", func(r *employee.CreateEmployeeRequest) { r.Status = "On Leave" }, "Status must be one of: Active, Inactive"},
			{"join date", func(r *employee.CreateEmployeeRequest) { r.JoinDate = "01/04/2024" }, "Join Date must be a date in YYYY-MM-DD format"},
			{"department", func(r *employee.CreateEmployeeRequest) { r.Department = " " }, "Department is required"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				deps := setupServiceTest(t)
				req := validCreateRequest()
				tc.mutate(&req)

				_, err := deps.service.Create(ctx, "hr@example.com", req)

				var appErr *apperror.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tc.msg, appErr.Message)
				assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
			})
		}
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()
	options := []employee.Option{{ID: 1, EmployeeNumber: "EMP-000001", Name: "Asha"}}

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		data, _ := json.Marshal(options)
		deps.redismock.ExpectGet(employee.EmployeeOptionsVersionKey).SetVal("4")
		deps.redismock.ExpectGet(employee.EmployeeOptionsKey(4)).SetVal(string(data))

		got, err := deps.service.GetOptions(ctx)

		require.NoError(t, err)
		assert.Equal(t, options, got)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		data, _ := json.Marshal(options)
		deps.redismock.ExpectGet(employee.EmployeeOptionsVersionKey).RedisNil()
		deps.redismock.ExpectGet(employee.EmployeeOptionsKey(0)).RedisNil()
		deps.repo.EXPECT().FindOptions(ctx).Return(options, nil)
		deps.redismock.ExpectSet(employee.EmployeeOptionsKey(0), data, time.Hour).SetVal("OK")

		got, err := deps.service.GetOptions(ctx)

		require.NoError(t, err)
		assert.Equal(t, options, got)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("redis down reads the store without caching", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(employee.EmployeeOptionsVersionKey).SetErr(errors.New("connection refused"))
		deps.repo.EXPECT().FindOptions(ctx).Return(options, nil)

		got, err := deps.service.GetOptions(ctx)

		require.NoError(t, err)
		assert.Equal(t, options, got)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	deps.repo.EXPECT().
		FindAll(gomock.Any(), employee.EmployeeQueryFilter{Department: "Finance", Limit: 10, Offset: 0}).
		Return([]employee.Employee{{ID: 1, Name: "Asha", Department: "Finance"}}, int64(1), nil)

	resp, total, err := deps.service.GetAll(context.Background(), employee.GetEmployeesFilterRequest{Department: "Finance"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Asha", resp[0].Name)
}

func TestEmployeeService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	deps.repo.EXPECT().FindByID(gomock.Any(), int64(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetByID(context.Background(), 4)

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
