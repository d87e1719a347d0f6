package document_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-hrdesk/internal/document"
	documenterrors "go-hrdesk/internal/document/errors"
	"go-hrdesk/internal/document/mock"
	"go-hrdesk/internal/shared/apperror"
	"go-hrdesk/internal/shared/storage"
	storagemock "go-hrdesk/internal/shared/storage/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_Upload_StoresBaseName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	dir := t.TempDir()

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, d *document.Document) error {
			assert.Equal(t, "offer_letter.pdf", d.FileName)
			assert.Equal(t, filepath.Join(dir, "offer_letter.pdf"), d.StoredPath)
			assert.Equal(t, int64(5), d.SizeBytes)
			assert.Equal(t, "hr@example.com", d.UploadedBy)
			d.ID = 4
			return nil
		})

	svc := document.NewService(repo, storage.NewLocalStore(dir))
	resp, err := svc.Upload(context.Background(), "hr@example.com", document.UploadInput{
		Employee:    " Ravi ",
		FileName:    "../../secret/offer_letter.pdf",
		ContentType: "application/pdf",
		Content:     strings.NewReader("hello"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ID)
	assert.Equal(t, "Ravi", resp.Employee)

	data, err := os.ReadFile(filepath.Join(dir, "offer_letter.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "secret"))
	assert.True(t, os.IsNotExist(err))
}

func TestService_Upload_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	store := storagemock.NewMockFileStore(ctrl)
	svc := document.NewService(repo, store)

	_, err := svc.Upload(context.Background(), "hr", document.UploadInput{FileName: "a.pdf", Content: strings.NewReader("x")})
	assert.ErrorIs(t, err, apperror.RequiredField("Employee"))

	_, err = svc.Upload(context.Background(), "hr", document.UploadInput{Employee: "Ravi", FileName: "a.pdf"})
	assert.ErrorIs(t, err, documenterrors.ErrFileRequired)

	_, err = svc.Upload(context.Background(), "hr", document.UploadInput{Employee: "Ravi", FileName: "../", Content: strings.NewReader("x")})
	assert.ErrorIs(t, err, documenterrors.ErrInvalidFileName)
}

func TestService_Upload_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	store := storagemock.NewMockFileStore(ctrl)

	store.EXPECT().
		Save(gomock.Any(), "cv.pdf", gomock.Any()).
		Return("", int64(0), errors.New("disk full"))

	_, err := document.NewService(repo, store).Upload(context.Background(), "hr", document.UploadInput{
		Employee: "Ravi", FileName: "cv.pdf", Content: strings.NewReader("x"),
	})
	assert.EqualError(t, err, "disk full")
}

func TestService_Upload_MetadataFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	store := storagemock.NewMockFileStore(ctrl)

	gomock.InOrder(
		store.EXPECT().Save(gomock.Any(), "cv.pdf", gomock.Any()).Return("/uploads/cv.pdf", int64(1), nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset")),
		store.EXPECT().Remove(gomock.Any(), "/uploads/cv.pdf").Return(nil),
	)

	_, err := document.NewService(repo, store).Upload(context.Background(), "hr", document.UploadInput{
		Employee: "Ravi", FileName: "cv.pdf", Content: strings.NewReader("x"),
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInternalError, appErr.Code)
}

func TestService_Upload_MetadataFailureLeavesNoFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	dir := t.TempDir()

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := document.NewService(repo, storage.NewLocalStore(dir)).Upload(context.Background(), "hr", document.UploadInput{
		Employee: "Ravi", FileName: "passport.png", Content: strings.NewReader("img"),
	})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	repo.EXPECT().
		FindAll(gomock.Any(), document.DocumentQueryFilter{Employee: "Ravi", Limit: 5, Offset: 5}).
		Return([]document.Document{{ID: 9, Employee: "Ravi", FileName: "id.png"}}, int64(6), nil)

	res, total, err := document.NewService(repo, nil).GetAll(context.Background(), document.GetDocumentsFilterRequest{
		Employee: "Ravi", Page: 2, PageSize: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	require.Len(t, res, 1)
	assert.Equal(t, "id.png", res[0].FileName)
}

func TestService_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := document.NewService(repo, nil).GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, documenterrors.ErrDocumentNotFound)
}
