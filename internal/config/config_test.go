package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.DBDriver)
	}
	if cfg.NewsMaxArticles != 5 {
		t.Errorf("expected 5 articles, got %d", cfg.NewsMaxArticles)
	}
	want := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	if !cfg.ForecastStartDate.Equal(want) {
		t.Errorf("expected start date %v, got %v", want, cfg.ForecastStartDate)
	}
	if cfg.Currency != "INR" {
		t.Errorf("expected currency INR, got %s", cfg.Currency)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("FORECAST_RESERVOIR_SIZE", "64")
	t.Setenv("CURRENCY", "usd")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.RequestTimeout)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DBDriver)
	}
	if cfg.ForecastReservoirSize != 64 {
		t.Errorf("expected reservoir 64, got %d", cfg.ForecastReservoirSize)
	}
	if cfg.Currency != "USD" {
		t.Errorf("expected USD, got %s", cfg.Currency)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative timeout", "REQUEST_TIMEOUT", "-1s"},
		{"garbage timeout", "REQUEST_TIMEOUT", "soon"},
		{"zero articles", "NEWS_MAX_ARTICLES", "0"},
		{"bad start date", "FORECAST_START_DATE", "01/01/2019"},
		{"bad seed", "FORECAST_SEED", "-3"},
		{"unknown driver", "DB_DRIVER", "mysql"},
		{"unknown currency", "CURRENCY", "RUPEES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestPostgresURL(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBSSLMode: "disable"}
	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := cfg.PostgresURL(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
