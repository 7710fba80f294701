// Package upstream talks to the remote data providers: resilient text
// fetching, change detection, and the CSV/RSS parsing boundaries.
package upstream

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/carloworks/covid-data-api/internal/domain"
)

// Fetcher retrieves text resources over HTTP with bounded, linearly
// increasing retry. Each FetchText call owns its own attempt counter, so
// concurrent fetches of different URLs never interfere.
type Fetcher struct {
	client    *http.Client
	retryCap  int
	retryBase time.Duration
	clock     clockwork.Clock
	logger    *slog.Logger
	onRetry   func()
}

// NewFetcher creates a Fetcher. retryCap is the total number of attempts;
// the wait before attempt n+1 is retryBase * n.
func NewFetcher(timeout time.Duration, retryCap int, retryBase time.Duration, clk clockwork.Clock, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		retryCap:  retryCap,
		retryBase: retryBase,
		clock:     clk,
		logger:    logger,
	}
}

// OnRetry registers a hook invoked once per retry, used for metrics.
func (f *Fetcher) OnRetry(fn func()) { f.onRetry = fn }

// FetchText GETs the URL and returns the response body. On a transport
// failure or non-2xx status it retries up to the cap, then fails with an
// error wrapping domain.ErrNetwork.
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= f.retryCap; attempt++ {
		body, err := f.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		if attempt == f.retryCap {
			break
		}
		f.logger.Warn("fetch failed, retrying",
			"url", url,
			"attempt", attempt,
			"error", err,
		)
		if f.onRetry != nil {
			f.onRetry()
		}
		if err := f.sleep(ctx, f.retryBase*time.Duration(attempt)); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("fetch %s after %d attempts: %w: %w", url, f.retryCap, domain.ErrNetwork, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse
		return "", fmt.Errorf("request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}

func (f *Fetcher) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.clock.After(d):
		return nil
	}
}
