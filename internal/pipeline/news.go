package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/carloworks/covid-data-api/internal/adapter/upstream"
	"github.com/carloworks/covid-data-api/internal/filestore"
	"github.com/carloworks/covid-data-api/internal/observability"
)

// NewsCycle refreshes the news file. The feed has no change detection; it
// is refetched every cycle and the file rewritten wholesale.
type NewsCycle struct {
	fetcher TextFetcher
	url     string
	store   *filestore.Store
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewNewsCycle wires a news refresh cycle.
func NewNewsCycle(fetcher TextFetcher, url string, store *filestore.Store, logger *slog.Logger, metrics *observability.Metrics) *NewsCycle {
	return &NewsCycle{
		fetcher: fetcher,
		url:     url,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// Run executes one news refresh cycle.
func (c *NewsCycle) Run(ctx context.Context) error {
	start := time.Now()

	xml, err := c.fetcher.FetchText(ctx, c.url)
	if err != nil {
		c.metrics.CyclesTotal.WithLabelValues("news", "error").Inc()
		return fmt.Errorf("news cycle: %w", err)
	}

	items, err := upstream.ParseNews(xml)
	if err != nil {
		c.metrics.CyclesTotal.WithLabelValues("news", "error").Inc()
		return fmt.Errorf("news cycle: %w", err)
	}

	if err := c.store.WriteNews(items); err != nil {
		c.metrics.CyclesTotal.WithLabelValues("news", "error").Inc()
		return fmt.Errorf("news cycle: %w", err)
	}

	c.metrics.CyclesTotal.WithLabelValues("news", "updated").Inc()
	c.metrics.CycleDuration.WithLabelValues("news").Observe(time.Since(start).Seconds())
	c.metrics.LastRefreshTime.WithLabelValues("news").SetToCurrentTime()
	c.logger.Info("news refreshed", "items", len(items))
	return nil
}
