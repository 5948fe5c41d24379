// Package config collects all runtime configuration from the environment.
// Values come from process env vars (a .env file is loaded by the binaries
// before Load is called); every knob has a development-friendly default.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// ChatHistoryLimit is how many past exchanges the chatbot page shows.
	ChatHistoryLimit = 20
	// OversightChatLimit is how many recent exchanges the authority
	// dashboard shows across all users.
	OversightChatLimit = 10
)

type ServerConfig struct {
	Addr string
	Mode string // gin mode: debug, release, test
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
	BcryptCost int
}

type LogConfig struct {
	Level  string
	Format string
}

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Auth         AuthConfig
	Log          LogConfig
	ResponsesDir string // optional directory of canned response set files
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: envOr("SERVER_ADDR", ":8080"),
			Mode: envOr("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     envOr("DB_HOST", "localhost"),
			Port:     envOr("DB_PORT", "5432"),
			User:     envOr("DB_USER", "user"),
			Password: envOr("DB_PASSWORD", "password"),
			Name:     envOr("DB_NAME", "empathosdb"),
			SSLMode:  envOr("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     envOr("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envIntOr("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:  envOr("JWT_SECRET", "empathos-secret-key-2024"),
			SessionTTL: time.Duration(envIntOr("SESSION_TTL_HOURS", 72)) * time.Hour,
			BcryptCost: envIntOr("BCRYPT_COST", 0), // 0 means bcrypt.DefaultCost
		},
		Log: LogConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "console"),
		},
		ResponsesDir: os.Getenv("RESPONSES_DIR"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
