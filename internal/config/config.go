package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string `json:"appName"`
	AppEnv      string `json:"appEnv"`
	Port        string `json:"port"`
	DefaultUser string `json:"defaultUser"`
	SeedDemo    bool   `json:"seedDemo"`

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver        string        `json:"-"`
	DBConnection    string        `json:"-"`
	PersistDebounce time.Duration `json:"-"`

	// Security (auth is disabled when JWT_SECRET is empty)
	JWTSecret      string        `json:"-"`
	JWTExpiry      time.Duration `json:"-"`
	PostRateLimit  int           `json:"postRateLimit"`
	PostRateWindow time.Duration `json:"postRateWindow"`

	// Observability (optional)
	SentryDSN string `json:"-"`

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, DigitalOcean Spaces, etc.)
	S3Region      string        `json:"-"`
	S3Bucket      string        `json:"-"`
	S3AccessKey   string        `json:"-"`
	S3SecretKey   string        `json:"-"`
	S3Endpoint    string        `json:"s3Endpoint,omitempty"`
	MediaMaxBytes int64         `json:"mediaMaxBytes"`
	MediaURLTTL   time.Duration `json:"-"`
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Momentum"),
		AppEnv:      envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:        envString("PORT", "8090"),
		DefaultUser: envString("DEFAULT_USER", "You"),
		SeedDemo:    envBool("SEED_DEMO", envString("APP_ENV", "development") == "development"),

		// Database
		DBDriver:        envString("DB_DRIVER", "sqlite"),
		DBConnection:    envString("DB_CONNECTION", "./data/momentum.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),
		PersistDebounce: envDuration("PERSIST_DEBOUNCE", 250*time.Millisecond),

		// Security
		JWTSecret:      envString("JWT_SECRET", ""),
		JWTExpiry:      envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days
		PostRateLimit:  envInt("POST_RATE_LIMIT", 30),
		PostRateWindow: envDuration("POST_RATE_WINDOW", time.Minute),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage (optional, share media uploads are disabled without a bucket)
		S3Region:      envString("S3_REGION", "us-east-1"),
		S3Bucket:      envString("S3_BUCKET", ""),
		S3AccessKey:   envString("S3_ACCESS_KEY", ""),
		S3SecretKey:   envString("S3_SECRET_KEY", ""),
		S3Endpoint:    envString("S3_ENDPOINT", ""), // Optional: for non-AWS providers
		MediaMaxBytes: int64(envInt("MEDIA_MAX_BYTES", 10<<20)),
		MediaURLTTL:   envDuration("MEDIA_URL_TTL", 168*time.Hour),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction refuses to serve an unauthenticated API in production.
func validateProduction(cfg *Config) {
	if cfg.JWTSecret == "" {
		slog.Error("production deployment requires JWT_SECRET",
			"hint", "set APP_ENV=development to run the API without auth")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func (c *Config) MediaEnabled() bool {
	return c.S3Bucket != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and sensitive data are excluded.
// Safe to expose in ctx and the /api/meta response.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:     c.AppName,
		AppEnv:      c.AppEnv,
		Port:        c.Port,
		DefaultUser: c.DefaultUser,
		SeedDemo:    c.SeedDemo,

		PostRateLimit:  c.PostRateLimit,
		PostRateWindow: c.PostRateWindow,

		S3Endpoint:    c.S3Endpoint,
		MediaMaxBytes: c.MediaMaxBytes,
	}
}
