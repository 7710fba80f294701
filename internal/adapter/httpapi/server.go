// Package httpapi serves the persisted snapshot files over HTTP.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store is the read side of the snapshot file store.
type Store interface {
	CaseEntityBytes(code string) ([]byte, time.Time, error)
	CaseLatestBytes() ([]byte, time.Time, error)
	VaccineEntityBytes(code string) ([]byte, time.Time, error)
	VaccineLatestBytes() ([]byte, time.Time, error)
	NewsBytes() ([]byte, time.Time, error)
}

// Options tunes response freshness and CORS.
type Options struct {
	// Publication hours (UTC) of the two daily sources; responses are
	// cacheable until the next expected publication.
	CovidPublishHour   int
	VaccinePublishHour int
	MaxAgeMargin       time.Duration
	CORSOrigin         string
}

// Server is the HTTP front of the service.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New builds the server with all routes registered.
func New(addr string, store Store, opts Options, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), corsMiddleware(opts.CORSOrigin))

	h := &handler{store: store, opts: opts, logger: logger}
	h.registerRoutes(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start blocks serving requests until Shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP exposes the router for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Max-Age", "60")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
