package upstream

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloworks/covid-data-api/internal/domain"
)

func newTestFetcher(retryCap int) *Fetcher {
	// Zero base skips the inter-attempt wait entirely.
	return NewFetcher(time.Second, retryCap, 0, clockwork.NewRealClock(), slog.Default())
}

func TestFetchText_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Date,Confirmed\n2021-01-01,10\n")) //nolint:errcheck
	}))
	defer srv.Close()

	body, err := newTestFetcher(3).FetchText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, body, "2021-01-01")
}

func TestFetchText_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok")) //nolint:errcheck
	}))
	defer srv.Close()

	body, err := newTestFetcher(5).FetchText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", body)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchText_ExhaustsRetryCap(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestFetcher(4).FetchText(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNetwork))
	assert.Equal(t, int32(4), calls.Load())
}

func TestFetchText_CounterResetsBetweenCalls(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := newTestFetcher(2)
	_, err := f.FetchText(context.Background(), srv.URL)
	require.Error(t, err)
	_, err = f.FetchText(context.Background(), srv.URL)
	require.Error(t, err)

	// Each call owns its own attempt counter: two full retry rounds.
	assert.Equal(t, int32(4), calls.Load())
}

func TestFetchText_LinearBackoffWaits(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	clk := clockwork.NewFakeClock()
	f := NewFetcher(time.Second, 3, time.Minute, clk, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := f.FetchText(ctx, srv.URL)
		done <- err
	}()

	// First wait is base*1, second base*2.
	require.NoError(t, clk.BlockUntilContext(ctx, 1))
	clk.Advance(time.Minute)
	require.NoError(t, clk.BlockUntilContext(ctx, 1))
	clk.Advance(2 * time.Minute)

	err := <-done
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNetwork))
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchText_ContextCancelDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	clk := clockwork.NewFakeClock()
	f := NewFetcher(time.Second, 5, time.Minute, clk, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := f.FetchText(ctx, srv.URL)
		done <- err
	}()

	require.NoError(t, clk.BlockUntilContext(context.Background(), 1))
	cancel()

	err := <-done
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
