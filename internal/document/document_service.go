package document

import (
	"context"
	"errors"
	"time"

	documenterrors "go-hrdesk/internal/document/errors"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/dberror"
	"go-hrdesk/internal/shared/formfield"
	"go-hrdesk/internal/shared/storage"

	"go.uber.org/zap"
)

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, actor string, in UploadInput) (DocumentResponse, error)
	GetAll(ctx context.Context, filter GetDocumentsFilterRequest) ([]DocumentResponse, int64, error)
	GetByID(ctx context.Context, id int64) (DocumentResponse, error)
}

type service struct {
	repo   Repository
	store  storage.FileStore
	logger *zap.Logger
}

func NewService(repo Repository, store storage.FileStore, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, store: store, logger: l.Named("document.service")}
}

// Upload keeps only the last element of the client's file name, so
// "../../etc/passwd" is stored as "passwd" inside the upload directory.
func (s *service) Upload(ctx context.Context, actor string, in UploadInput) (DocumentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employee, err := formfield.Required("Employee", in.Employee)
	if err != nil {
		return DocumentResponse{}, err
	}
	if in.Content == nil {
		return DocumentResponse{}, documenterrors.ErrFileRequired
	}
	name, err := storage.CleanName(in.FileName)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidFileName
	}

	path, size, err := s.store.Save(ctx, name, in.Content)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFileName) {
			return DocumentResponse{}, documenterrors.ErrInvalidFileName
		}
		log.Error("store upload failed", zap.String("file_name", name), zap.Error(err))
		return DocumentResponse{}, err
	}

	doc := &Document{
		Employee:    employee,
		FileName:    name,
		StoredPath:  path,
		SizeBytes:   size,
		ContentType: in.ContentType,
		UploadedBy:  actor,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		log.Error("document metadata persist failed",
			zap.String("stored_path", path),
			zap.Error(err),
		)
		if rmErr := s.store.Remove(ctx, path); rmErr != nil {
			log.Warn("remove orphaned upload failed", zap.String("stored_path", path), zap.Error(rmErr))
		}
		return DocumentResponse{}, dberror.Map(err, nil)
	}

	log.Info("document uploaded",
		zap.Int64("document_id", doc.ID),
		zap.String("employee", employee),
		zap.Int64("size_bytes", size),
	)
	return mapToResponse(*doc), nil
}

func (s *service) GetAll(ctx context.Context, filter GetDocumentsFilterRequest) ([]DocumentResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	docs, total, err := s.repo.FindAll(ctx, DocumentQueryFilter{
		Employee: filter.Employee,
		Limit:    filter.PageSize,
		Offset:   (filter.Page - 1) * filter.PageSize,
	})
	if err != nil {
		return nil, 0, dberror.Map(err, nil)
	}

	res := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		res[i] = mapToResponse(d)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (DocumentResponse, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DocumentResponse{}, dberror.Map(err, documenterrors.ErrDocumentNotFound)
	}
	return mapToResponse(*doc), nil
}

func mapToResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		Employee:    d.Employee,
		FileName:    d.FileName,
		SizeBytes:   d.SizeBytes,
		ContentType: d.ContentType,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}
