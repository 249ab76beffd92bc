package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// EmailConfig holds settings for the optional run-completion notification.
type EmailConfig struct {
	Provider        string
	FromAddress     string
	FromName        string
	NotifyAddress   string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// Config holds all configuration for the exporter
type Config struct {
	Environment string
	EventID     string
	APIBaseURL  string
	OutputFile  string
	DBUrl       string
	Email       EmailConfig
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		EventID:     os.Getenv("SESSIONIZE_EVENT_ID"),
		APIBaseURL:  os.Getenv("SESSIONIZE_API_BASE"),
		OutputFile:  os.Getenv("OUTPUT_FILE"),
		DBUrl:       os.Getenv("DATABASE_URL"),
		Email: EmailConfig{
			Provider:        os.Getenv("EMAIL_PROVIDER"),
			FromAddress:     os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:        os.Getenv("EMAIL_FROM_NAME"),
			NotifyAddress:   os.Getenv("NOTIFY_EMAIL"),
			Region:          os.Getenv("AWS_REGION"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	// Set defaults
	if cfg.EventID == "" {
		cfg.EventID = "xhudniix"
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "https://sessionize.com/api/v2"
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = "devbcn-speakers.csv"
	}

	// DBUrl stays empty when unset: the run archive is optional and main
	// only opens a connection when a URL is configured.

	return cfg, nil
}
