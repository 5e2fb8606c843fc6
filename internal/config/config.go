package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Advisor  AdvisorConfig
	Provider ProviderConfig
	Demo     DemoConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

// AdvisorConfig holds credentials and tuning for the external advisory model.
// The API key is read once at startup and must never be logged.
type AdvisorConfig struct {
	APIKey string
	Model  string
}

// ProviderConfig holds the bank-data provider credentials (sandbox mode only).
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
}

type DemoConfig struct {
	// ExtraTransactions is the number of generated demo records seeded on top
	// of the canned dataset. Zero keeps only the canned records.
	ExtraTransactions int
}

type SecurityConfig struct {
	RateLimitPerSecond int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Advisor: AdvisorConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("ADVISOR_MODEL", "gemini-2.0-flash"),
		},
		Provider: ProviderConfig{
			ClientID:     getEnv("BANK_CLIENT_ID", ""),
			ClientSecret: getEnv("BANK_CLIENT_SECRET", ""),
		},
		Demo: DemoConfig{
			ExtraTransactions: getIntEnv("DEMO_TRANSACTIONS", 0),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
		},
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins()

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// HasAdvisorKey reports whether the advisory service is configured. Missing
// credentials degrade insight generation to its fallback tiers instead of
// failing startup.
func (c *Config) HasAdvisorKey() bool {
	return c.Advisor.APIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
