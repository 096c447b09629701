package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	TelegramToken   string
	DatabasePath    string
	ExportDir       string
	PoolSize        int
	AcquireTimeout  time.Duration
	DefaultLanguage string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./spotbot.db"
	}

	exportDir := os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "."
	}

	poolSize := 10
	if v := os.Getenv("DB_POOL_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			poolSize = n
		}
	}

	acquireTimeout := 5 * time.Second
	if v := os.Getenv("DB_ACQUIRE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			acquireTimeout = d
		}
	}

	lang := os.Getenv("DEFAULT_LANGUAGE")
	if lang == "" {
		lang = "en"
	}

	return &Config{
		TelegramToken:   token,
		DatabasePath:    dbPath,
		ExportDir:       exportDir,
		PoolSize:        poolSize,
		AcquireTimeout:  acquireTimeout,
		DefaultLanguage: lang,
	}, nil
}
