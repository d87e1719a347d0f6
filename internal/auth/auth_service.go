package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	autherrors "go-hrdesk/internal/auth/errors"
	"go-hrdesk/internal/bootstrap"
	"go-hrdesk/internal/domain"
	"go-hrdesk/internal/session"
	"go-hrdesk/internal/shared/apperror"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/dberror"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLength = 8

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
	Logout(ctx context.Context, identity session.Identity, sessionID string) error
	GetMe(ctx context.Context, userID int64) (AuthResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (AuthResponse, error)
	// EnsureUsers creates an HR account for every email that has none yet and
	// returns how many were created.
	EnsureUsers(ctx context.Context, emails []string, password string) (int, error)
}

type service struct {
	repo      Repository
	sessions  session.Store
	jwtSecret string
	audit     bootstrap.AuditLogger
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	repo Repository,
	sessions session.Store,
	jwtSecret string,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		repo:      repo,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		audit:     audit,
		logger:    l.Named("auth.service"),
		now:       time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	email := normalizeEmail(req.Email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResult{}, dberror.Map(err, nil)
		}
		log.Warn("login rejected", zap.String("email", email), zap.String("reason", "unknown email"))
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		log.Warn("login rejected", zap.String("email", email), zap.String("reason", "inactive"))
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn("login rejected", zap.String("email", email), zap.String("reason", "password mismatch"))
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	identity := session.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}
	sid, err := s.sessions.Create(ctx, identity)
	if err != nil {
		return LoginResult{}, err
	}

	now := s.now()
	ttl := s.sessions.TTL()
	token, err := session.IssueToken(s.jwtSecret, identity, sid, ttl, now)
	if err != nil {
		_ = s.sessions.Delete(ctx, sid)
		log.Error("sign access token failed", zap.Error(err))
		return LoginResult{}, apperror.Wrap(err, apperror.CodeInternalError, "failed to issue access token", http.StatusInternalServerError)
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LOGIN",
		Message: "HR user signed in",
		Meta:    map[string]any{"user_id": user.ID, "email": user.Email},
	})

	return LoginResult{
		User:        mapToResponse(user),
		AccessToken: token,
		ExpiresAt:   now.Add(ttl),
		SessionID:   sid,
	}, nil
}

func (s *service) Logout(ctx context.Context, identity session.Identity, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperror.Wrap(err, apperror.CodeServiceUnavailable, "session store unavailable", http.StatusServiceUnavailable)
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LOGOUT",
		Message: "HR user signed out",
		Meta:    map[string]any{"user_id": identity.UserID, "email": identity.Email},
	})
	return nil
}

func (s *service) GetMe(ctx context.Context, userID int64) (AuthResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return AuthResponse{}, dberror.Map(err, autherrors.ErrUserNotFound)
	}
	return mapToResponse(user), nil
}

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return AuthResponse{}, apperror.RequiredField("Email")
	}
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = domain.RoleHR
	}
	if !domain.IsKnownRole(role) {
		return AuthResponse{}, autherrors.ErrInvalidRole
	}
	if len(req.Password) < MinPasswordLength {
		return AuthResponse{}, autherrors.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = email
	}
	user := &User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if dberror.IsUniqueViolation(err, "uq_hr_users_email") {
			return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		return AuthResponse{}, dberror.Map(err, nil)
	}

	s.logger.Info("hr user created", zap.Int64("user_id", user.ID), zap.String("role", role))
	return mapToResponse(user), nil
}

func (s *service) EnsureUsers(ctx context.Context, emails []string, password string) (int, error) {
	if password == "" || len(emails) == 0 {
		return 0, nil
	}

	created := 0
	for _, email := range emails {
		email = normalizeEmail(email)
		if email == "" {
			continue
		}

		_, err := s.repo.GetByEmail(ctx, email)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, dberror.Map(err, nil)
		}

		if _, err := s.CreateUser(ctx, CreateUserRequest{Email: email, Password: password, Role: domain.RoleHR}); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func mapToResponse(u *User) AuthResponse {
	return AuthResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
