package config

import (
	"time"
)

type (
	Config struct {
		App                App                      `json:"app"`
		Bank               Bank                     `json:"bank"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`
	}

	App struct {
		Env      string `json:"env"`
		Name     string `json:"name"`
		LogLevel string `json:"log_level"`
	}

	// Bank holds the remote API parameters. The statement window and gap are
	// dictated by the bank: at most 10 days per statement request, and a
	// 1 millisecond gap between windows so a boundary instant is never
	// fetched twice.
	Bank struct {
		BaseURL             string        `json:"base_url" validate:"required,url"`
		AppVersion          string        `json:"app_version" validate:"required"`
		HTTPTimeout         time.Duration `json:"http_timeout"`
		StatementWindowDays int           `json:"statement_window_days" validate:"gt=0"`
		StatementGap        time.Duration `json:"statement_gap"`
		MaxInFlightRequests int64         `json:"max_in_flight_requests" validate:"gt=0"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}
)

// StatementWindow returns the per-request window size as a duration.
func (b Bank) StatementWindow() time.Duration {
	return time.Duration(b.StatementWindowDays) * 24 * time.Hour
}
