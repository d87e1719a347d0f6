package app

import (
	"context"

	"go-hrdesk/internal/bootstrap"
	"go-hrdesk/internal/config"
	"go-hrdesk/internal/shared/connection"
	"go-hrdesk/internal/shared/migration"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const connectRetries = 5

// BuildApp connects the stores, brings the schema up to date and registers
// every module on router. The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg config.Config, audit bootstrap.AuditLogger) (func(), error) {
	logger := zap.L()
	ctx := context.Background()

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}

	if err := migration.Run(ctx, gormDB, Models()...); err != nil {
		cleanup()
		return nil, err
	}

	// 2. Register Modules & Routes
	if err := registerModules(ctx, router, moduleDeps{
		cfg:    cfg,
		db:     sqlDB,
		gormDB: gormDB,
		rdb:    rdb,
		audit:  audit,
		logger: logger,
	}); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}
