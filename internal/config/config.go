package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port              string
	Env               string
	RequestTimeout    time.Duration
	CORSAllowedOrigin string

	// Audit database
	DBDriver   string // sqlite, postgres or none
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Sentiment
	GeminiAPIKey string
	GeminiModel  string

	// News
	NewsBaseURL     string
	NewsMaxArticles int
	ArticleMaxChars int

	// Forecasting
	ForecastStartDate     time.Time
	ForecastReservoirSize int
	ForecastSeed          uint64

	// Loss averaging
	Currency string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port:              getEnv("PORT", "5000"),
		Env:               getEnv("ENV", "development"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),

		// Audit database
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:     getEnv("DB_PATH", "file::memory:?cache=shared"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "stockinsight"),
		DBPassword: getEnv("DB_PASSWORD", "stockinsight"),
		DBName:     getEnv("DB_NAME", "stockinsight"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Sentiment
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		// News
		NewsBaseURL: getEnv("NEWS_BASE_URL", "https://news.google.com/rss/search"),

		// Loss averaging
		Currency: strings.ToUpper(getEnv("CURRENCY", "INR")),
	}

	var err error
	if config.RequestTimeout, err = parseTimeout(os.Getenv("REQUEST_TIMEOUT")); err != nil {
		return nil, err
	}
	if config.NewsMaxArticles, err = parsePositiveInt("NEWS_MAX_ARTICLES", 5); err != nil {
		return nil, err
	}
	if config.ArticleMaxChars, err = parsePositiveInt("ARTICLE_MAX_CHARS", 4000); err != nil {
		return nil, err
	}
	if config.ForecastReservoirSize, err = parsePositiveInt("FORECAST_RESERVOIR_SIZE", 200); err != nil {
		return nil, err
	}

	seed, err := strconv.ParseUint(getEnv("FORECAST_SEED", "42"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FORECAST_SEED: %w", err)
	}
	config.ForecastSeed = seed

	startStr := getEnv("FORECAST_START_DATE", "2019-01-01")
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FORECAST_START_DATE %q: %w", startStr, err)
	}
	config.ForecastStartDate = start

	if money.GetCurrency(config.Currency) == nil {
		return nil, fmt.Errorf("invalid CURRENCY %q: not an ISO 4217 code", config.Currency)
	}

	switch config.DBDriver {
	case "sqlite", "postgres", "none":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: must be sqlite, postgres, or none", config.DBDriver)
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// PostgresURL returns the migrate-compatible connection URL for the audit database.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", d)
	}
	return d, nil
}

func parsePositiveInt(key string, defaultVal int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
