package upstream

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/carloworks/covid-data-api/internal/domain"
)

// TextFetcher is the fetch capability the checker polls with.
type TextFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// Checker decides whether a remote resource changed since the last
// successful check. It fingerprints the content and polls up to a retry
// budget, waiting the configured interval between unchanged fetches.
type Checker struct {
	url      string
	interval time.Duration
	retries  int
	fetcher  TextFetcher
	clock    clockwork.Clock
	logger   *slog.Logger

	mu      sync.Mutex
	lastSum string
	seen    bool
}

// NewChecker creates a Checker for one resource URL.
func NewChecker(url string, interval time.Duration, retries int, fetcher TextFetcher, clk clockwork.Clock, logger *slog.Logger) *Checker {
	return &Checker{
		url:      url,
		interval: interval,
		retries:  retries,
		fetcher:  fetcher,
		clock:    clk,
		logger:   logger,
	}
}

// CheckUpdate fetches the resource and returns its content if the
// fingerprint differs from the previous check. Unchanged content is
// refetched after the polling interval, up to the retry budget; exhausting
// it returns domain.ErrNotModified. Fetch failures propagate.
func (c *Checker) CheckUpdate(ctx context.Context) (string, error) {
	for attempt := 1; ; attempt++ {
		body, err := c.fetcher.FetchText(ctx, c.url)
		if err != nil {
			return "", fmt.Errorf("check update: %w", err)
		}
		if c.changed(body) {
			return body, nil
		}
		c.logger.Info("source not updated yet", "url", c.url, "attempt", attempt)
		if err := c.wait(ctx); err != nil {
			return "", err
		}
		if attempt >= c.retries {
			return "", fmt.Errorf("check update %s: %w", c.url, domain.ErrNotModified)
		}
	}
}

// changed compares the content fingerprint against the stored one. The
// stored fingerprint is replaced on every check, changed or not; comparing
// against stale state would make the next check meaningless.
func (c *Checker) changed(body string) bool {
	sum := sha256.Sum256([]byte(body))
	current := hex.EncodeToString(sum[:])

	c.mu.Lock()
	defer c.mu.Unlock()
	same := c.seen && current == c.lastSum
	c.lastSum = current
	c.seen = true
	return !same
}

func (c *Checker) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.clock.After(c.interval):
		return nil
	}
}
