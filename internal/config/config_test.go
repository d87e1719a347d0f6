package config_test

import (
	"testing"
	"time"

	"go-hrdesk/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("HR_ALLOWED_EMAILS", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg := config.Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.AllowedHREmails)
	assert.Equal(t, "uploads", cfg.UploadDir)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("HR_ALLOWED_EMAILS", " HR1@Example.com, ,hr2@example.com ")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "hr")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "hr")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "require")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"hr1@example.com", "hr2@example.com"}, cfg.AllowedHREmails)
	assert.Equal(t, "host=db user=hr password=secret dbname=hr port=5433 sslmode=require", cfg.DB.DSN())
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	assert.Equal(t, 8*time.Hour, config.Load().SessionTTL)
}

func TestValidate(t *testing.T) {
	assert.Error(t, config.Config{}.Validate())
	assert.NoError(t, config.Config{JWTSecret: "dev"}.Validate())
	assert.Error(t, config.Config{AppEnv: "production", JWTSecret: "short"}.Validate())
}
