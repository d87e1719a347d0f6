package interview

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"go-hrdesk/internal/events"
	interviewerrors "go-hrdesk/internal/interview/errors"
	"go-hrdesk/internal/messaging/kafka"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/dberror"
	"go-hrdesk/internal/shared/formfield"
	"go-hrdesk/internal/shared/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interview_service.go -destination=mock/interview_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor string, req CreateInterviewRequest) (InterviewResponse, error)
	GetAll(ctx context.Context, filter GetInterviewsFilterRequest) ([]InterviewResponse, int64, error)
	GetByID(ctx context.Context, id int64) (InterviewResponse, error)
	RenderReport(ctx context.Context, id int64) (Report, error)
	ArchiveReport(ctx context.Context, id int64) (InterviewResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	outbox  kafka.OutboxRepository
	reports storage.FileStore
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	reports storage.FileStore,
	logger ...*zap.Logger,
) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		db:      db,
		repo:    repo,
		outbox:  outbox,
		reports: reports,
		logger:  l.Named("interview.service"),
		now:     time.Now,
	}
}

func validateCreateRequest(req CreateInterviewRequest) (Interview, error) {
	if req.CandidateID <= 0 {
		return Interview{}, interviewerrors.ErrInvalidCandidateID
	}

	date, err := formfield.Date("Date", req.Date)
	if err != nil {
		return Interview{}, err
	}
	interviewer, err := formfield.Required("Interviewer", req.Interviewer)
	if err != nil {
		return Interview{}, err
	}

	ratings := []struct {
		label string
		value int
	}{
		{"Qualification", req.Qualification},
		{"Experience", req.Experience},
		{"Written Communication", req.CommWritten},
		{"Oral Communication", req.CommOral},
		{"Problem Solving", req.ProblemSolving},
		{"Team Capabilities", req.TeamCapabilities},
	}
	for _, r := range ratings {
		if err := formfield.Rating(r.label, r.value); err != nil {
			return Interview{}, err
		}
	}

	if err := formfield.OneOf("Comparison", req.Comparison, Comparisons); err != nil {
		return Interview{}, err
	}
	if err := formfield.OneOf("Decision", req.Decision, Decisions); err != nil {
		return Interview{}, err
	}

	return Interview{
		CandidateID:      req.CandidateID,
		Date:             date,
		Interviewer:      interviewer,
		Strengths:        req.Strengths,
		Weaknesses:       req.Weaknesses,
		Qualification:    req.Qualification,
		Experience:       req.Experience,
		CommWritten:      req.CommWritten,
		CommOral:         req.CommOral,
		ProblemSolving:   req.ProblemSolving,
		TeamCapabilities: req.TeamCapabilities,
		Comparison:       req.Comparison,
		FinalRemarks:     req.FinalRemarks,
		Decision:         req.Decision,
	}, nil
}

func (s *service) Create(ctx context.Context, actor string, req CreateInterviewRequest) (InterviewResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	record, err := validateCreateRequest(req)
	if err != nil {
		log.Warn("create interview rejected", zap.Error(err))
		return InterviewResponse{}, err
	}
	record.CreatedBy = actor

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create interview begin tx failed", zap.Error(err))
		return InterviewResponse{}, dberror.Map(err, nil)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	candidate, err := qtx.FindCandidate(ctx, record.CandidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InterviewResponse{}, interviewerrors.ErrCandidateNotFound
		}
		return InterviewResponse{}, dberror.Map(err, nil)
	}

	if err := qtx.Create(ctx, &record); err != nil {
		log.Error("create interview persist failed", zap.Error(err))
		return InterviewResponse{}, dberror.Map(err, nil)
	}
	record.Candidate = candidate

	if s.outbox != nil {
		event, err := kafka.NewPendingEvent(ctx, kafka.AggregateInterview, record.ID, events.InterviewRecordedType, events.InterviewRecordedTopic, events.InterviewRecordedEvent{
			EventType:   events.InterviewRecordedType,
			RequestID:   rid,
			InterviewID: record.ID,
			CandidateID: record.CandidateID,
			Decision:    record.Decision,
			RecordedBy:  actor,
			OccurredAt:  s.now().UTC(),
		})
		if err != nil {
			return InterviewResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("create interview outbox persist failed", zap.Error(err))
			return InterviewResponse{}, dberror.Map(err, nil)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("create interview commit failed", zap.Error(err))
		return InterviewResponse{}, dberror.Map(err, nil)
	}

	log.Info("interview recorded",
		zap.Int64("interview_id", record.ID),
		zap.Int64("candidate_id", record.CandidateID),
		zap.String("decision", record.Decision),
	)
	return mapToResponse(record), nil
}

func (s *service) GetAll(ctx context.Context, filter GetInterviewsFilterRequest) ([]InterviewResponse, int64, error) {
	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	interviews, total, err := s.repo.FindAll(ctx, InterviewQueryFilter{
		CandidateID: filter.CandidateID,
		Limit:       pageSize,
		Offset:      (page - 1) * pageSize,
	})
	if err != nil {
		return nil, 0, dberror.Map(err, nil)
	}

	resp := make([]InterviewResponse, len(interviews))
	for i, iv := range interviews {
		resp[i] = mapToResponse(iv)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (InterviewResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return InterviewResponse{}, dberror.Map(err, interviewerrors.ErrInterviewNotFound)
	}
	return mapToResponse(*record), nil
}

func (s *service) RenderReport(ctx context.Context, id int64) (Report, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Report{}, dberror.Map(err, interviewerrors.ErrInterviewNotFound)
	}
	return renderReport(*record)
}

// ArchiveReport writes the scorecard PDF to the report store and records
// where it went.
func (s *service) ArchiveReport(ctx context.Context, id int64) (InterviewResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return InterviewResponse{}, dberror.Map(err, interviewerrors.ErrInterviewNotFound)
	}

	rep, err := renderReport(*record)
	if err != nil {
		return InterviewResponse{}, err
	}

	// Prefixed with the id: one candidate may have several interviews.
	name := strconv.FormatInt(record.ID, 10) + "_" + rep.FileName
	path, size, err := s.reports.Save(ctx, name, bytes.NewReader(rep.Content))
	if err != nil {
		log.Error("store interview report failed", zap.Int64("interview_id", id), zap.Error(err))
		return InterviewResponse{}, err
	}

	generatedAt := s.now().UTC()
	if err := s.repo.UpdateReportPath(ctx, id, path, generatedAt); err != nil {
		return InterviewResponse{}, dberror.Map(err, interviewerrors.ErrInterviewNotFound)
	}
	record.ReportPath = &path
	record.ReportGeneratedAt = &generatedAt

	log.Info("interview report stored",
		zap.Int64("interview_id", id),
		zap.String("path", path),
		zap.Int64("size_bytes", size),
	)
	return mapToResponse(*record), nil
}

func mapToResponse(i Interview) InterviewResponse {
	resp := InterviewResponse{
		ID:               i.ID,
		CandidateID:      i.CandidateID,
		CandidateName:    i.CandidateName(),
		Date:             i.Date.Format(formfield.DateLayout),
		Interviewer:      i.Interviewer,
		Strengths:        i.Strengths,
		Weaknesses:       i.Weaknesses,
		Qualification:    i.Qualification,
		Experience:       i.Experience,
		CommWritten:      i.CommWritten,
		CommOral:         i.CommOral,
		ProblemSolving:   i.ProblemSolving,
		TeamCapabilities: i.TeamCapabilities,
		Comparison:       i.Comparison,
		FinalRemarks:     i.FinalRemarks,
		Decision:         i.Decision,
		CreatedBy:        i.CreatedBy,
		ReportPath:       i.ReportPath,
		CreatedAt:        i.CreatedAt.Format(time.RFC3339),
	}
	if i.ReportGeneratedAt != nil {
		v := i.ReportGeneratedAt.Format(time.RFC3339)
		resp.ReportGeneratedAt = &v
	}
	return resp
}
