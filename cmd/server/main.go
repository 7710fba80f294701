package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/carloworks/covid-data-api/internal/adapter/httpapi"
	"github.com/carloworks/covid-data-api/internal/adapter/upstream"
	"github.com/carloworks/covid-data-api/internal/config"
	"github.com/carloworks/covid-data-api/internal/filestore"
	"github.com/carloworks/covid-data-api/internal/observability"
	"github.com/carloworks/covid-data-api/internal/pipeline"
	"github.com/carloworks/covid-data-api/internal/schedule"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clk := clockwork.NewRealClock()

	store := filestore.New(cfg.DataDir, logger)
	if err := store.EnsureLayout(); err != nil {
		logger.Error("failed to prepare data directory", "error", err)
		os.Exit(1)
	}

	fetcher := upstream.NewFetcher(cfg.FetchTimeout, cfg.FetchRetryCap, cfg.FetchRetryBase, clk, logger)
	fetcher.OnRetry(metrics.FetchRetries.Inc)

	covidChecker := upstream.NewChecker(cfg.WorldURL(), cfg.CheckInterval, cfg.CheckRetries, fetcher, clk, logger)
	vaccineChecker := upstream.NewChecker(cfg.VaccineURL, cfg.CheckInterval, cfg.CheckRetries, fetcher, clk, logger)

	covidCycle := pipeline.NewCovidCycle(covidChecker, fetcher, store, pipeline.CaseSourceURLs{
		Countries:  cfg.CountriesURL(),
		TimeSeries: cfg.TimeSeriesURL(),
	}, logger, metrics)
	vaccineCycle := pipeline.NewVaccineCycle(vaccineChecker, store, logger, metrics)
	newsCycle := pipeline.NewNewsCycle(fetcher, cfg.NewsFeedURL, store, logger, metrics)

	srv := httpapi.New(cfg.HTTPAddr, store, httpapi.Options{
		CovidPublishHour:   cfg.CovidPublishHour,
		VaccinePublishHour: cfg.VaccinePublishHour,
		MaxAgeMargin:       cfg.MaxAgeMargin,
		CORSOrigin:         cfg.CORSOrigin,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("http server error", "error", err)
		}
	}()

	// Every cycle also runs once at startup so a fresh deployment serves data
	// without waiting for the next publication hour.
	scheduler := schedule.New(clk, logger)
	scheduler.Start(ctx, schedule.Task{Name: "covid", Run: covidCycle.Run}, schedule.DailyAtHour(cfg.CovidPublishHour), true)
	scheduler.Start(ctx, schedule.Task{Name: "vaccine", Run: vaccineCycle.Run}, schedule.DailyAtHour(cfg.VaccinePublishHour), true)
	scheduler.Start(ctx, schedule.Task{Name: "news", Run: newsCycle.Run}, schedule.Hourly, true)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	scheduler.Wait()

	logger.Info("shutdown complete")
}
