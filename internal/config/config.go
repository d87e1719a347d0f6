package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type Config struct {
	AppEnv string
	Port   string

	DB          DBConfig
	RedisAddr   string
	KafkaBroker string

	JWTSecret  string
	SessionTTL time.Duration

	// Seed accounts: every allowed email becomes an HR user with the bootstrap password.
	AllowedHREmails   []string
	BootstrapPassword string

	UploadDir  string
	PayslipDir string
	ReportDir  string
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from the environment. Callers load .env first.
func Load() Config {
	return Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "3000"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "hrdesk"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:       os.Getenv("KAFKA_BROKER"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		SessionTTL:        getDuration("SESSION_TTL", 8*time.Hour),
		AllowedHREmails:   splitList(os.Getenv("HR_ALLOWED_EMAILS")),
		BootstrapPassword: os.Getenv("HR_BOOTSTRAP_PASSWORD"),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		PayslipDir:        getEnv("PAYSLIP_DIR", "storage/payslips"),
		ReportDir:         getEnv("REPORT_DIR", "storage/interviews"),
	}
}

// Validate checks the settings the API cannot run without.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.IsProduction() && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters in production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
