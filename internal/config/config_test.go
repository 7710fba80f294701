package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3100", cfg.HTTPAddr)
	assert.Equal(t, "./response", cfg.DataDir)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 10, cfg.FetchRetryCap)
	assert.Equal(t, 3500*time.Millisecond, cfg.FetchRetryBase)
	assert.Equal(t, 30*time.Minute, cfg.CheckInterval)
	assert.Equal(t, 6, cfg.CheckRetries)
	assert.Equal(t, 6, cfg.CovidPublishHour)
	assert.Equal(t, 13, cfg.VaccinePublishHour)
	assert.Equal(t, time.Duration(0), cfg.MaxAgeMargin)
}

func TestLoad_SourceURLs(t *testing.T) {
	t.Setenv("CASE_BASE_URL", "http://localhost:3100")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3100/worldwide-aggregate.csv", cfg.WorldURL())
	assert.Equal(t, "http://localhost:3100/countries-aggregated.csv", cfg.CountriesURL())
	assert.Equal(t, "http://localhost:3100/time-series-19-covid-combined.csv", cfg.TimeSeriesURL())
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATA_DIR", "/var/lib/covid")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("FETCH_RETRY_CAP", "3")
	t.Setenv("CHECK_INTERVAL", "5m")
	t.Setenv("CHECK_RETRIES", "2")
	t.Setenv("COVID_PUBLISH_HOUR", "7")
	t.Setenv("VACCINE_PUBLISH_HOUR", "14")
	t.Setenv("MAXAGE_MARGIN", "60s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "/var/lib/covid", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 3, cfg.FetchRetryCap)
	assert.Equal(t, 5*time.Minute, cfg.CheckInterval)
	assert.Equal(t, 2, cfg.CheckRetries)
	assert.Equal(t, 7, cfg.CovidPublishHour)
	assert.Equal(t, 14, cfg.VaccinePublishHour)
	assert.Equal(t, time.Minute, cfg.MaxAgeMargin)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidPublishHour(t *testing.T) {
	t.Setenv("COVID_PUBLISH_HOUR", "24")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COVID_PUBLISH_HOUR")
}

func TestLoad_InvalidRetryCap(t *testing.T) {
	t.Setenv("FETCH_RETRY_CAP", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_RETRY_CAP")
}

func TestLoad_NegativeMargin(t *testing.T) {
	t.Setenv("MAXAGE_MARGIN", "-5s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAXAGE_MARGIN")
}
