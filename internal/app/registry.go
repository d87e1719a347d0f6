package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go-hrdesk/internal/approval"
	"go-hrdesk/internal/asset"
	"go-hrdesk/internal/attendance"
	"go-hrdesk/internal/auth"
	"go-hrdesk/internal/bootstrap"
	"go-hrdesk/internal/candidate"
	"go-hrdesk/internal/config"
	"go-hrdesk/internal/document"
	"go-hrdesk/internal/employee"
	"go-hrdesk/internal/exit"
	"go-hrdesk/internal/export"
	"go-hrdesk/internal/interview"
	"go-hrdesk/internal/messaging/kafka"
	"go-hrdesk/internal/middleware"
	"go-hrdesk/internal/offer"
	"go-hrdesk/internal/payroll"
	"go-hrdesk/internal/rbac"
	"go-hrdesk/internal/rbac/infra"
	"go-hrdesk/internal/session"
	"go-hrdesk/internal/shared/counter"
	"go-hrdesk/internal/shared/response"
	"go-hrdesk/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every GORM entity, in migration order.
func Models() []any {
	return []any{
		&auth.User{},
		&candidate.Candidate{},
		&interview.Interview{},
		&offer.Offer{},
		&employee.Employee{},
		&attendance.Attendance{},
		&payroll.Payroll{},
		&exit.Exit{},
		&asset.Asset{},
		&approval.Approval{},
		&document.Document{},
	}
}

type moduleDeps struct {
	cfg    config.Config
	db     *sql.DB
	gormDB *gorm.DB
	rdb    *redis.Client
	audit  bootstrap.AuditLogger
	logger *zap.Logger
}

func registerModules(ctx context.Context, router *gin.Engine, deps moduleDeps) error {
	cfg, db, gormDB, rdb := deps.cfg, deps.db, deps.gormDB, deps.rdb

	// --- Repositories ---
	approvalRepo := approval.NewRepository(gormDB)
	assetRepo := asset.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	candidateRepo := candidate.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	exitRepo := exit.NewRepository(gormDB)
	exportRepo := export.NewRepository(gormDB)
	interviewRepo := interview.NewRepository(gormDB)
	offerRepo := offer.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewStaticRepository(), enforcer, deps.logger)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Session ---
	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret, sessions)

	// --- Services ---
	authService := auth.NewService(authRepo, sessions, cfg.JWTSecret, deps.audit, deps.logger)
	approvalService := approval.NewService(approvalRepo, deps.logger)
	assetService := asset.NewService(assetRepo, deps.logger)
	attendanceService := attendance.NewService(db, attendanceRepo, deps.logger)
	candidateService := candidate.NewService(candidateRepo, rdb, deps.logger)
	documentService := document.NewService(documentRepo, storage.NewLocalStore(cfg.UploadDir), deps.logger)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, rdb, deps.logger)
	exitService := exit.NewService(exitRepo, deps.logger)
	exportService := export.NewService(exportRepo, deps.logger)
	interviewService := interview.NewService(db, interviewRepo, outboxRepo, storage.NewLocalStore(cfg.ReportDir), deps.logger)
	offerService := offer.NewService(offerRepo, deps.logger)
	payrollService := payroll.NewService(db, payrollRepo, outboxRepo, storage.NewLocalStore(cfg.PayslipDir), deps.logger)

	created, err := authService.EnsureUsers(ctx, cfg.AllowedHREmails, cfg.BootstrapPassword)
	if err != nil {
		return err
	}
	if created > 0 {
		deps.logger.Info("seeded hr users", zap.Int("created", created))
	}

	// --- Handlers ---
	approvalHandler := approval.NewHandler(approvalService)
	assetHandler := asset.NewHandler(assetService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	candidateHandler := candidate.NewHandler(candidateService)
	documentHandler := document.NewHandler(documentService)
	employeeHandler := employee.NewHandler(employeeService, deps.logger)
	exitHandler := exit.NewHandler(exitService)
	exportHandler := export.NewHandler(exportService)
	interviewHandler := interview.NewHandler(interviewService)
	offerHandler := offer.NewHandler(offerService)
	payrollHandler := payroll.NewHandler(payrollService, rdb)
	rbacHandler := rbac.NewHandler(rbacService)

	router.GET("/healthz", healthz(db, rdb))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware)
		approval.RegisterRoutes(api, approvalHandler, authMiddleware, rbacService)
		asset.RegisterRoutes(api, assetHandler, authMiddleware, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, authMiddleware, rbacService)
		candidate.RegisterRoutes(api, candidateHandler, authMiddleware, rbacService)
		document.RegisterRoutes(api, documentHandler, authMiddleware, rbacService)
		employee.RegisterRoutes(api, employeeHandler, authMiddleware, rbacService)
		exit.RegisterRoutes(api, exitHandler, authMiddleware, rbacService)
		export.RegisterRoutes(api, exportHandler, authMiddleware, rbacService)
		interview.RegisterRoutes(api, interviewHandler, authMiddleware, rbacService)
		offer.RegisterRoutes(api, offerHandler, authMiddleware, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, authMiddleware, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, authMiddleware, rbacService)
	}

	return nil
}

func healthz(db *sql.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "ok", "redis": "ok"}
		healthy := true
		if err := db.PingContext(ctx); err != nil {
			status["database"] = err.Error()
			healthy = false
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			status["redis"] = err.Error()
			healthy = false
		}

		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency check failed", status)
			return
		}
		response.Success(c, http.StatusOK, status, nil)
	}
}
