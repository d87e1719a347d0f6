package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "go-hrdesk/internal/attendance/errors"
	"go-hrdesk/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	createFn                func(ctx context.Context, a *Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, employee string, date time.Time) (*Attendance, error)
	findAllFn               func(ctx context.Context, filter AttendanceQueryFilter) ([]Attendance, int64, error)
	findByIDFn              func(ctx context.Context, id int64) (*Attendance, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                   { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employee string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, employee, date)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter AttendanceQueryFilter) ([]Attendance, int64, error) {
	return f.findAllFn(ctx, filter)
}
func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*Attendance, error) {
	return f.findByIDFn(ctx, id)
}

func boolPtr(v bool) *bool { return &v }

// newMemoryRepo keeps rows in a slice and enforces nothing itself.
func newMemoryRepo() (*fakeRepo, *[]Attendance) {
	rows := &[]Attendance{}
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, a *Attendance) error {
		a.ID = int64(len(*rows) + 1)
		*rows = append(*rows, *a)
		return nil
	}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employee string, date time.Time) (*Attendance, error) {
		for _, r := range *rows {
			if r.Employee == employee && r.Date.Equal(date) {
				return &r, nil
			}
		}
		return nil, gorm.ErrRecordNotFound
	}
	return repo, rows
}

func TestService_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	repo, rows := newMemoryRepo()
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Record(ctx, "hr@example.com", RecordAttendanceRequest{
		Employee: "Ravi", Date: "2024-03-04", Present: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, LeaveNone, resp.LeaveType)
	assert.True(t, resp.Present)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err = svc.Record(ctx, "hr@example.com", RecordAttendanceRequest{
		Employee: "Ravi", Date: "2024-03-05", Present: boolPtr(false), LeaveType: LeaveSick,
	})
	require.NoError(t, err)
	assert.False(t, resp.Present)
	assert.Equal(t, LeaveSick, resp.LeaveType)

	assert.Len(t, *rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Record_Duplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, _ := newMemoryRepo()
	svc := NewService(db, repo)
	req := RecordAttendanceRequest{Employee: "Ravi", Date: "2024-03-04", Present: boolPtr(true)}

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Record(context.Background(), "hr@example.com", req)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Record(context.Background(), "hr@example.com", req)
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyRecorded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Record_Validation(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, rows := newMemoryRepo()
	svc := NewService(db, repo)

	tests := []struct {
		name string
		req  RecordAttendanceRequest
		want error
	}{
		{"present on leave", RecordAttendanceRequest{Employee: "A", Date: "2024-03-04", Present: boolPtr(true), LeaveType: LeaveCasual}, attendanceerrors.ErrLeaveWhilePresent},
		{"missing present", RecordAttendanceRequest{Employee: "A", Date: "2024-03-04"}, apperror.RequiredField("Present")},
		{"unknown leave", RecordAttendanceRequest{Employee: "A", Date: "2024-03-04", Present: boolPtr(false), LeaveType: "Maternity"}, nil},
		{"bad date", RecordAttendanceRequest{Employee: "A", Date: "04-03-2024", Present: boolPtr(true)}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), "hr@example.com", tc.req)
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPStatus)
		})
	}

	assert.Empty(t, *rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetAll_DateRange(t *testing.T) {
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, filter AttendanceQueryFilter) ([]Attendance, int64, error) {
			require.NotNil(t, filter.From)
			require.NotNil(t, filter.To)
			assert.Equal(t, "2024-03-01", filter.From.Format("2006-01-02"))
			assert.Equal(t, "2024-03-31", filter.To.Format("2006-01-02"))
			assert.Equal(t, "Ravi", filter.Employee)
			return []Attendance{{ID: 1, Employee: "Ravi", LeaveType: LeaveNone, Present: true}}, 1, nil
		},
	}

	res, total, err := NewService(nil, repo).GetAll(context.Background(), GetAttendanceFilterRequest{
		Employee: "Ravi", From: "2024-03-01", To: "2024-03-31",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, res, 1)

	_, _, err = NewService(nil, repo).GetAll(context.Background(), GetAttendanceFilterRequest{From: "March"})
	assert.Error(t, err)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id int64) (*Attendance, error) { return nil, gorm.ErrRecordNotFound },
	}

	_, err := NewService(nil, repo).GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
}
