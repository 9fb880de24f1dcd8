// Package config loads runtime configuration from .env and environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Repeat apply policies.
const (
	ApplyPolicyIdempotent = "idempotent"
	ApplyPolicyConflict   = "conflict"
)

// Config is the root configuration of the service.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Log       LogConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Apply     ApplyConfig
}

type ServerConfig struct {
	Port           int
	Env            string
	RequestTimeout time.Duration
}

// DatabaseConfig selects the gorm driver and its connection parameters.
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	UseConnStr bool
	ConnStr    string
	SQLitePath string
}

type JWTConfig struct {
	Secret string
	Issuer string
	Expiry time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	Origins []string
}

// RateLimitConfig configures the limiter on unauthenticated endpoints.
// An empty RedisAddr keeps the counters in memory.
type RateLimitConfig struct {
	RequestsPerSecond uint
	RedisAddr         string
	RedisPassword     string
}

type ApplyConfig struct {
	RepeatPolicy string
}

// Load reads the .env file if present and builds a Config from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	rps := parseInt(getEnv("RATE_LIMIT_REQUESTS_PER_SECOND", "5"))
	if rps <= 0 {
		rps = 5
	}

	return &Config{
		Server: ServerConfig{
			Port:           parseInt(getEnv("PORT", "8080")),
			Env:            getEnv("ENV", "development"),
			RequestTimeout: parseDuration(getEnv("REQUEST_TIMEOUT", "10s"), 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USERNAME", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_DATABASE", "jobboard"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			UseConnStr: parseBool(getEnv("USE_CONNECTION_STR", "false")),
			ConnStr:    getEnv("DB_CONNECTION_STR", ""),
			SQLitePath: getEnv("SQLITE_PATH", "./data/jobboard.db"),
		},
		JWT: JWTConfig{
			Secret: getEnv("SECRET_KEY", ""),
			Issuer: getEnv("JWT_ISSUER", "JobBoard"),
			Expiry: parseDuration(getEnv("JWT_EXPIRY", "1h"), time.Hour),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		CORS: CORSConfig{
			Origins: splitList(getEnv("ALLOW_ORIGIN", "http://localhost:5173")),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: uint(rps),
			RedisAddr:         getEnv("REDIS_ADDR", ""),
			RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		},
		Apply: ApplyConfig{
			RepeatPolicy: normalizePolicy(getEnv("APPLY_REPEAT_POLICY", ApplyPolicyIdempotent)),
		},
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func normalizePolicy(p string) string {
	if strings.EqualFold(strings.TrimSpace(p), ApplyPolicyConflict) {
		return ApplyPolicyConflict
	}
	return ApplyPolicyIdempotent
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
