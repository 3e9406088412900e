package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Quotes    QuotesConfig
	Scheduler SchedulerConfig
	Log       LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// QuotesConfig holds configuration for the external quote/metadata lookup.
// APIKey is a bootstrap value from the environment; a key stored through the
// settings endpoint takes precedence. FernetKey is the base64 key used to
// encrypt the stored API key at rest.
type QuotesConfig struct {
	BaseURL   string
	APIKey    string
	FernetKey string
}

// SchedulerConfig holds configuration for the background price refresh job.
// An empty CronSpec disables the job.
type SchedulerConfig struct {
	CronSpec string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/portfolio_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:5173",
				"http://localhost",
			},
		},
		Quotes: QuotesConfig{
			BaseURL:   getEnv("QUOTES_BASE_URL", "https://www.alphavantage.co"),
			APIKey:    getEnv("QUOTES_API_KEY", ""),
			FernetKey: getEnv("FERNET_KEY", ""),
		},
		Scheduler: SchedulerConfig{
			CronSpec: getEnv("PRICE_REFRESH_CRON", "0 18 * * MON-FRI"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnv("LOG_PRETTY", "") != "",
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
