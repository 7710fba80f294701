// Package config loads service settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default upstream locations. All overridable for local mirrors.
const (
	defaultCaseBaseURL = "https://raw.githubusercontent.com/datasets/covid-19/main/data"
	defaultVaccineURL  = "https://raw.githubusercontent.com/owid/covid-19-data/master/public/data/vaccinations/vaccinations.csv"
	defaultNewsFeedURL = "https://rsshub.app/telegram/channel/nCov2019"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	DataDir         string
	CORSOrigin      string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	CaseBaseURL string
	VaccineURL  string
	NewsFeedURL string

	FetchTimeout   time.Duration
	FetchRetryCap  int
	FetchRetryBase time.Duration

	CheckInterval time.Duration
	CheckRetries  int

	// Publication hours (UTC) of the upstream sources; they drive both the
	// refresh schedule and response freshness.
	CovidPublishHour   int
	VaccinePublishHour int

	// MaxAgeMargin is an extra safety margin added to computed cache
	// freshness windows.
	MaxAgeMargin time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	fetchTimeout, err := parseDuration("FETCH_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	fetchRetryBase, err := parseDuration("FETCH_RETRY_BASE", "3.5s")
	if err != nil {
		return nil, err
	}
	checkInterval, err := parseDuration("CHECK_INTERVAL", "30m")
	if err != nil {
		return nil, err
	}
	maxAgeMargin, err := parseNonNegativeDuration("MAXAGE_MARGIN", "0s")
	if err != nil {
		return nil, err
	}

	fetchRetryCap, err := parseIntInRange("FETCH_RETRY_CAP", 10, 1, 100)
	if err != nil {
		return nil, err
	}
	checkRetries, err := parseIntInRange("CHECK_RETRIES", 6, 1, 100)
	if err != nil {
		return nil, err
	}
	covidHour, err := parseIntInRange("COVID_PUBLISH_HOUR", 6, 0, 23)
	if err != nil {
		return nil, err
	}
	vaccineHour, err := parseIntInRange("VACCINE_PUBLISH_HOUR", 13, 0, 23)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":3100"),
		DataDir:         envOrDefault("DATA_DIR", "./response"),
		CORSOrigin:      envOrDefault("CORS_ORIGIN", "*"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		CaseBaseURL: envOrDefault("CASE_BASE_URL", defaultCaseBaseURL),
		VaccineURL:  envOrDefault("VACCINE_URL", defaultVaccineURL),
		NewsFeedURL: envOrDefault("NEWS_FEED_URL", defaultNewsFeedURL),

		FetchTimeout:   fetchTimeout,
		FetchRetryCap:  fetchRetryCap,
		FetchRetryBase: fetchRetryBase,

		CheckInterval: checkInterval,
		CheckRetries:  checkRetries,

		CovidPublishHour:   covidHour,
		VaccinePublishHour: vaccineHour,
		MaxAgeMargin:       maxAgeMargin,
	}

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("DATA_DIR is required")
	}
	if cfg.CaseBaseURL == "" {
		return nil, fmt.Errorf("CASE_BASE_URL is required")
	}
	if cfg.VaccineURL == "" {
		return nil, fmt.Errorf("VACCINE_URL is required")
	}

	return cfg, nil
}

// WorldURL is the worldwide-aggregate CSV location.
func (c *Config) WorldURL() string { return c.CaseBaseURL + "/worldwide-aggregate.csv" }

// CountriesURL is the countries-aggregated CSV location.
func (c *Config) CountriesURL() string { return c.CaseBaseURL + "/countries-aggregated.csv" }

// TimeSeriesURL is the combined per-province time-series CSV location.
func (c *Config) TimeSeriesURL() string { return c.CaseBaseURL + "/time-series-19-covid-combined.csv" }

// GetLogLevel implements observability.LoggerConfig.
func (c *Config) GetLogLevel() string { return c.LogLevel }

// GetLogFormat implements observability.LoggerConfig.
func (c *Config) GetLogFormat() string { return c.LogFormat }

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseNonNegativeDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseIntInRange(key string, fallback, minVal, maxVal int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < minVal || n > maxVal {
		return 0, fmt.Errorf("invalid %s: must be %d-%d", key, minVal, maxVal)
	}
	return n, nil
}
