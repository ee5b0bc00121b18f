package database

import (
	"fmt"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/config"
)

// Config holds database configuration
type Config struct {
	Driver   string
	Path     string // sqlite only
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig creates a new database configuration from the application config
func NewConfig(app *config.Config) *Config {
	return &Config{
		Driver:   app.DBDriver,
		Path:     app.DBPath,
		Host:     app.DBHost,
		Port:     app.DBPort,
		User:     app.DBUser,
		Password: app.DBPassword,
		DBName:   app.DBName,
		SSLMode:  app.DBSSLMode,
	}
}

// Enabled reports whether an audit database should be opened at all.
func (c *Config) Enabled() bool {
	return c.Driver != "none"
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL returns the golang-migrate connection URL for PostgreSQL.
func (c *Config) MigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}
