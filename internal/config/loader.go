package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const envPrefix = "MTBANK_SYNC"

// Load reads config.yaml from the usual search paths (or the explicit file
// when given), applies MTBANK_SYNC_* environment overrides and fills in the
// defaults for everything the file leaves out.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("app.env", "local")
	v.SetDefault("app.name", "mtbank-sync")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("bank.base_url", "https://mybank.by/api/v1/")
	v.SetDefault("bank.app_version", "2.0.19")
	v.SetDefault("bank.http_timeout", 30*time.Second)
	v.SetDefault("bank.statement_window_days", 10)
	v.SetDefault("bank.statement_gap", time.Millisecond)
	v.SetDefault("bank.max_in_flight_requests", 8)
	v.SetDefault("exponential_backoff.max_retries", 3)
	v.SetDefault("exponential_backoff.max_backoff_time", 15*time.Second)
	v.SetDefault("exponential_backoff.backoff_multiplier", 1.5)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// defaults plus env overrides are a valid configuration on their own
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	decode := func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	}
	if err := v.Unmarshal(&cfg, decode); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
