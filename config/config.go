package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Catalog sources.
const (
	CatalogBuiltin  = "builtin"
	CatalogFile     = "file"
	CatalogPostgres = "postgres"
)

// Session backends.
const (
	SessionFile   = "file"
	SessionRedis  = "redis"
	SessionMemory = "memory"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	CatalogSource string
	CatalogPath   string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	SessionBackend string
	SessionPath    string
	RedisAddr      string
	RedisPassword  string
	RedisKeyPrefix string

	SignInDelayMs int
	MaxRetries    int

	CSVOutputPath string
	LogLevel      string
	LogEncoding   string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] Could not read .env: %v", err)
	}

	return &Config{
		CatalogSource: getEnv("CATALOG_SOURCE", CatalogBuiltin),
		CatalogPath:   getEnv("CATALOG_PATH", "./catalog.yaml"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "realty"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "realty123"),
		PostgresDB:       getEnv("POSTGRES_DB", "realty_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		SessionBackend: getEnv("SESSION_BACKEND", SessionFile),
		SessionPath:    getEnv("SESSION_PATH", defaultSessionPath()),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisKeyPrefix: getEnv("REDIS_KEY_PREFIX", "realtyhub:session:"),

		SignInDelayMs: getEnvInt("SIGNIN_DELAY_MS", 1000),
		MaxRetries:    getEnvInt("MAX_RETRIES", 3),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/listings.csv"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogEncoding:   getEnv("LOG_ENCODING", "console"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// SignInDelay returns the simulated identity provider latency.
func (c *Config) SignInDelay() time.Duration {
	if c.SignInDelayMs < 0 {
		return 0
	}
	return time.Duration(c.SignInDelayMs) * time.Millisecond
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "realtyhub", "session.json")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
