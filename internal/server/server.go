// Package server serves the collaboration dashboard over HTTP: the rendered
// network, the analytics views as JSON, the what-if scenario and Prometheus
// metrics.
package server

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
	"github.com/toshiksharma271/collab-insight-engine/internal/graph"
	"github.com/toshiksharma271/collab-insight-engine/internal/metrics"
	"github.com/toshiksharma271/collab-insight-engine/internal/scenario"
	"go.uber.org/zap"
)

// Loader produces a fresh, validated dataset. It is called once at startup
// and again on every reload.
type Loader func() (*dataset.Dataset, error)

// Options configures a Server.
type Options struct {
	Addr           string
	Width          float64
	Height         float64
	Style          graph.Style
	Baseline       scenario.Baseline
	AllowedOrigins []string
}

// Server holds the live dataset and the HTTP surface built on it.
type Server struct {
	opts    Options
	load    Loader
	data    atomic.Pointer[dataset.Dataset]
	metrics *metrics.Collector
	log     *zap.Logger
}

// New loads the initial dataset and returns a ready server.
func New(opts Options, load Loader, m *metrics.Collector, log *zap.Logger) (*Server, error) {
	if load == nil {
		return nil, errors.New("server: nil loader")
	}
	if m == nil {
		m = metrics.NewCollector("insight")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := graph.CheckDimensions(opts.Width, opts.Height); err != nil {
		return nil, errors.Wrap(err, "default canvas")
	}

	s := &Server{opts: opts, load: load, metrics: m, log: log}
	ds, err := load()
	if err != nil {
		return nil, errors.Wrap(err, "loading dataset")
	}
	s.data.Store(ds)
	return s, nil
}

// Dataset returns the dataset currently being served.
func (s *Server) Dataset() *dataset.Dataset {
	return s.data.Load()
}

// Reload swaps in a freshly loaded dataset. On failure the previous dataset
// stays live and the error is returned.
func (s *Server) Reload() error {
	ds, err := s.load()
	s.metrics.RecordReload(err)
	if err != nil {
		s.log.Warn("dataset reload failed, keeping previous data", zap.Error(err))
		return err
	}
	s.data.Store(ds)
	s.log.Info("dataset reloaded",
		zap.Int("people", len(ds.People)),
		zap.Int("links", len(ds.Links)),
		zap.Int("projects", len(ds.Projects)),
	)
	return nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.opts.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return errors.Wrapf(err, "listening on %s", s.opts.Addr)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
