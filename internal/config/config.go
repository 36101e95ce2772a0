package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Драйверы хранения снимков
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	TelegramToken string `mapstructure:"TELEGRAM_TOKEN"`
	Environment   string `mapstructure:"ENV"`

	StorageDriver  string `mapstructure:"STORAGE_DRIVER"`
	DBDSN          string `mapstructure:"DB_DSN"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`

	Web3FormsAccessKey string `mapstructure:"WEB3FORMS_ACCESS_KEY"`
	Web3FormsURL       string `mapstructure:"WEB3FORMS_URL"`
	FallbackPhone      string `mapstructure:"FALLBACK_PHONE"`

	AdminIDs []int64 `mapstructure:"ADMIN_IDS"`

	HTTPAddr       string        `mapstructure:"HTTP_ADDR"`
	HTTPRatePerMin int           `mapstructure:"HTTP_RATE_PER_MIN"`
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		TelegramToken:      os.Getenv("TELEGRAM_TOKEN"),
		Environment:        os.Getenv("ENV"),
		StorageDriver:      strings.ToLower(os.Getenv("STORAGE_DRIVER")),
		DBDSN:              os.Getenv("DB_DSN"),
		MigrationsPath:     os.Getenv("MIGRATIONS_PATH"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		Web3FormsAccessKey: os.Getenv("WEB3FORMS_ACCESS_KEY"),
		Web3FormsURL:       os.Getenv("WEB3FORMS_URL"),
		FallbackPhone:      os.Getenv("FALLBACK_PHONE"),
		HTTPAddr:           os.Getenv("HTTP_ADDR"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = StoragePostgres
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.FallbackPhone == "" {
		cfg.FallbackPhone = "+1 (227) 259-7780"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	var err error
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.HTTPRatePerMin, err = intEnv("HTTP_RATE_PER_MIN", 120); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.AdminIDs, err = parseIDs(os.Getenv("ADMIN_IDS")); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("Config loaded (env=%s, storage=%s, admins=%d)\n", cfg.Environment, cfg.StorageDriver, len(cfg.AdminIDs))

	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}

	switch c.StorageDriver {
	case StoragePostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required for postgres storage")
		}
	case StorageRedis, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.HTTPRatePerMin <= 0 {
		return fmt.Errorf("HTTP_RATE_PER_MIN must be positive")
	}

	return nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// IsAdmin проверяет что пользователь указан в ADMIN_IDS
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// parseIDs разбирает список id через запятую
func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_IDS: invalid id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
