package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken string

	OpenAIKey   string
	OpenAIModel string
	LLMTimeout  time.Duration

	DefaultLanguage    string
	SupportedLanguages []string

	ContractsFile string

	Storage  string
	Database DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeoutSeconds, err := strconv.Atoi(getEnv("LLM_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("LLM_TIMEOUT_SECONDS must be a number: %w", err)
	}

	cfg := &Config{
		BotToken:           os.Getenv("BOT_TOKEN"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4"),
		LLMTimeout:         time.Duration(timeoutSeconds) * time.Second,
		DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", "Russian"),
		SupportedLanguages: splitList(getEnv("SUPPORTED_LANGUAGES", "English,Russian,Georgian,Chinese")),
		ContractsFile:      getEnv("CONTRACTS_FILE", "contracts.csv"),
		Storage:            getEnv("STORAGE", StorageMemory),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "intakebot"),
			User:     getEnv("DB_USER", "intakebot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.Storage != StorageMemory && cfg.Storage != StoragePostgres {
		return nil, fmt.Errorf("STORAGE must be %q or %q", StorageMemory, StoragePostgres)
	}
	if cfg.Storage == StoragePostgres && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if !contains(cfg.SupportedLanguages, cfg.DefaultLanguage) {
		return nil, fmt.Errorf("DEFAULT_LANGUAGE %q is not in SUPPORTED_LANGUAGES", cfg.DefaultLanguage)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
