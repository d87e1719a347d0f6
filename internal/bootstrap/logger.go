package bootstrap

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the process logger and installs it as the zap global.
// Production gets JSON output at info level, everything else the
// development console encoder.
func NewLogger(appEnv, process string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if appEnv == "production" {
		cfg = zap.NewProductionConfig()
	}

	logger, err := cfg.Build(zap.Fields(zap.String("process", process)))
	if err != nil {
		return nil, fmt.Errorf("build %s logger: %w", process, err)
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
