package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"bookstore-api/internal/infrastructure/database"
)

// envParser gom lỗi parse để báo tất cả biến sai trong một lần
type envParser struct {
	errs []error
}

func (p *envParser) int(key, fallback string) int {
	v, err := strconv.Atoi(getEnv(key, fallback))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
	}
	return v
}

func (p *envParser) duration(key, fallback string) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
	}
	return v
}

// LoadDatabaseConfig đọc DB_* environment variables; giá trị không parse được là lỗi
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var p envParser

	cfg := &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              p.int("DB_PORT", "5432"),
		Username:          getEnv("DB_USER", "bookstore"),
		Password:          getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "bookstore"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(p.int("DB_MAX_CONNECTIONS", "25")),
		MinConns:          int32(p.int("DB_MIN_CONNECTIONS", "5")),
		MaxConnLifetime:   p.duration("DB_MAX_CONN_LIFETIME", "5m"),
		MaxConnIdleTime:   p.duration("DB_MAX_CONN_IDLE_TIME", "1m"),
		HealthCheckPeriod: p.duration("DB_HEALTH_CHECK_PERIOD", "1m"),
		MaxRetries:        p.int("DB_MAX_RETRIES", "5"),
		RetryDelay:        p.duration("DB_RETRY_DELAY", "1s"),
		ConnectTimeout:    p.duration("DB_CONNECT_TIMEOUT", "10s"),
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	return cfg, nil
}
