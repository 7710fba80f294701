// Package pipeline orchestrates the per-category refresh cycles:
// change-gate, fetch, parse, normalize, persist.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carloworks/covid-data-api/internal/adapter/upstream"
	"github.com/carloworks/covid-data-api/internal/domain"
	"github.com/carloworks/covid-data-api/internal/filestore"
	"github.com/carloworks/covid-data-api/internal/observability"
)

// UpdateChecker gates a cycle on remote content change.
type UpdateChecker interface {
	CheckUpdate(ctx context.Context) (string, error)
}

// TextFetcher retrieves a text resource.
type TextFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// CaseSourceURLs locates the three case-data CSVs. The world-aggregate URL
// doubles as the change-detection resource and is fetched by the checker.
type CaseSourceURLs struct {
	Countries  string
	TimeSeries string
}

// CovidCycle is one full case-data refresh: world CSV gates the cycle, the
// other two sources are fetched concurrently, and the normalized snapshot
// replaces the persisted files.
type CovidCycle struct {
	checker UpdateChecker
	fetcher TextFetcher
	store   *filestore.Store
	urls    CaseSourceURLs
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewCovidCycle wires a case-data refresh cycle.
func NewCovidCycle(checker UpdateChecker, fetcher TextFetcher, store *filestore.Store, urls CaseSourceURLs, logger *slog.Logger, metrics *observability.Metrics) *CovidCycle {
	return &CovidCycle{
		checker: checker,
		fetcher: fetcher,
		store:   store,
		urls:    urls,
		logger:  logger,
		metrics: metrics,
	}
}

// Run executes one refresh cycle.
func (c *CovidCycle) Run(ctx context.Context) error {
	start := time.Now()

	worldCSV, err := c.checker.CheckUpdate(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotModified) {
			c.logger.Info("case data not updated yet")
			c.metrics.CyclesTotal.WithLabelValues("covid", "unchanged").Inc()
			return nil
		}
		c.metrics.CyclesTotal.WithLabelValues("covid", "error").Inc()
		return fmt.Errorf("covid cycle: %w", err)
	}

	worldRows, err := upstream.ParseWorldRows(worldCSV)
	if err != nil {
		c.metrics.CyclesTotal.WithLabelValues("covid", "error").Inc()
		return fmt.Errorf("covid cycle: %w", err)
	}

	// The remaining sources have no shared state; fetch and parse them
	// concurrently. Normalization itself stays a synchronous fold.
	var countryRows []domain.CountryRow
	var provinceRows []domain.ProvinceRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := c.fetcher.FetchText(gctx, c.urls.Countries)
		if err != nil {
			return err
		}
		countryRows, err = upstream.ParseCountryRows(text)
		return err
	})
	g.Go(func() error {
		text, err := c.fetcher.FetchText(gctx, c.urls.TimeSeries)
		if err != nil {
			return err
		}
		provinceRows, err = upstream.ParseProvinceRows(text)
		return err
	})
	if err := g.Wait(); err != nil {
		c.metrics.CyclesTotal.WithLabelValues("covid", "error").Inc()
		return fmt.Errorf("covid cycle: %w", err)
	}

	snap := domain.Normalize(worldRows, countryRows, provinceRows)

	if err := c.store.WriteCaseSnapshot(snap); err != nil {
		c.metrics.CyclesTotal.WithLabelValues("covid", "error").Inc()
		return fmt.Errorf("covid cycle: %w", err)
	}
	if err := c.store.WriteCaseLatest(snap.Latest()); err != nil {
		c.metrics.CyclesTotal.WithLabelValues("covid", "error").Inc()
		return fmt.Errorf("covid cycle: %w", err)
	}

	c.metrics.CyclesTotal.WithLabelValues("covid", "updated").Inc()
	c.metrics.CycleDuration.WithLabelValues("covid").Observe(time.Since(start).Seconds())
	c.metrics.FilesWritten.WithLabelValues("covid").Add(float64(len(snap)))
	c.metrics.LastRefreshTime.WithLabelValues("covid").SetToCurrentTime()
	c.logger.Info("case snapshot refreshed",
		"entities", len(snap),
		"duration", time.Since(start),
	)
	return nil
}
