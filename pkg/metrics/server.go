package metrics

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gtriggiano/geoip-lookup/pkg/config"
)

const (
	// Server timeouts
	defaultGracefulShutdownTimeout = 5 * time.Second
	readinessCheckTimeout          = 5 * time.Second
)

// HealthChecker is a dependency consulted by the readiness check.
type HealthChecker interface {
	Name() string
	HealthCheck(ctx context.Context) error
}

// Server exposes Prometheus metrics and health checks.
type Server struct {
	cfg                config.MetricsConfig
	logger             *zap.Logger
	registry           *prometheus.Registry
	instrumentation    *Instrumentation
	httpServer         *http.Server
	checkers           []HealthChecker
	serviceServerReady atomic.Bool
}

// NewServer builds a metrics server instance.
func NewServer(cfg config.MetricsConfig, logger *zap.Logger, checkers ...HealthChecker) *Server {
	reg := prometheus.NewRegistry()
	inst := NewInstrumentation(reg)

	return &Server{
		cfg:             cfg,
		logger:          logger,
		registry:        reg,
		instrumentation: inst,
		checkers:        checkers,
	}
}

// Instrumentation returns the metrics instrumentation helper.
func (s *Server) Instrumentation() *Instrumentation {
	return s.instrumentation
}

// Registry returns the underlying Prometheus registry.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// Handler returns the mux serving metrics and health checks.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(s.cfg.HealthPath, s.livenessHandler())
	mux.Handle(s.cfg.ReadinessPath, s.readinessHandler())
	gatherer := prometheus.Gatherers{ // include default registry but filter out configured prefixes
		s.registry,
		filteringGatherer{prometheus.DefaultGatherer, s.cfg.DropPrefixes},
	}
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Start launches the HTTP endpoints and blocks until context cancellation.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Address,
		Handler: s.Handler(),
	}
	s.httpServer = srv

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("metrics server shutdown", zap.Error(err))
		}
	}()

	s.logger.Info("metrics server listening", zap.String("addr", s.cfg.Address))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// AddHealthCheckers registers further readiness dependencies. It must be
// called before Start.
func (s *Server) AddHealthCheckers(checkers ...HealthChecker) {
	s.checkers = append(s.checkers, checkers...)
}

// SetReady toggles readiness probing state.
func (s *Server) SetReady(ready bool) {
	s.serviceServerReady.Store(ready)
}

// livenessHandler exposes a simple OK response for Kubernetes-style health checks.
func (s *Server) livenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

// readinessHandler reports readiness based on the service state and the health checks of
// the loaded databases, which run in parallel.
func (s *Server) readinessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.serviceServerReady.Load() {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readinessCheckTimeout)
		defer cancel()

		var g errgroup.Group
		for _, checker := range s.checkers {
			g.Go(func() error {
				if err := checker.HealthCheck(ctx); err != nil {
					s.logger.Warn("health check failed", zap.String("checker", checker.Name()), zap.Error(err))
					return err
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			http.Error(w, "health check failed", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
}
