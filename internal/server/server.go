package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	footballapp "github.com/preston-bernstein/superliga-data-service/internal/app/football"
	newsapp "github.com/preston-bernstein/superliga-data-service/internal/app/news"
	standingsapp "github.com/preston-bernstein/superliga-data-service/internal/app/standings"
	teamsapp "github.com/preston-bernstein/superliga-data-service/internal/app/teams"
	"github.com/preston-bernstein/superliga-data-service/internal/cache"
	"github.com/preston-bernstein/superliga-data-service/internal/config"
	httpserver "github.com/preston-bernstein/superliga-data-service/internal/http"
	"github.com/preston-bernstein/superliga-data-service/internal/http/handlers"
	"github.com/preston-bernstein/superliga-data-service/internal/http/middleware"
	"github.com/preston-bernstein/superliga-data-service/internal/logging"
	"github.com/preston-bernstein/superliga-data-service/internal/metrics"
	"github.com/preston-bernstein/superliga-data-service/internal/poller"
	"github.com/preston-bernstein/superliga-data-service/internal/providers/apifootball"
	"github.com/preston-bernstein/superliga-data-service/internal/revalidate"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	providers     providerSet
	cache         cacheComponents
	football      *footballapp.Service
	revalidator   *revalidate.Revalidator
	handler       *handlers.Handler
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured providers, cache backend and poller.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	set := newProviderFactory(logger, recorder).build(cfg)
	return assemble(cfg, logger, recorder, set, metricsSrv, metricsShutdown)
}

// assemble wires services, HTTP and poller around an already decorated provider set.
func assemble(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, set providerSet, metricsSrv httpServer, metricsShutdown func(context.Context) error) *Server {
	caches := buildCache(context.Background(), cfg.Cache, logger)
	loader := cache.NewLoader(caches.store, recorder, logger)

	football := footballapp.NewService(set.football, loader, apifootball.TTLPolicy{
		Standings: cfg.Revalidation.Standings,
		Teams:     cfg.Revalidation.Teams,
	})
	rv := revalidate.New(caches.store, cfg.Revalidation.Secret, recorder, logger)

	var plr Poller = noopPoller{since: time.Now()}
	if cfg.PollEnabled {
		plr = poller.New(football, logger, recorder, cfg.PollInterval)
	}

	handler := handlers.NewHandler(handlers.Deps{
		Football:    football,
		Standings:   standingsapp.NewService(football),
		Teams:       teamsapp.NewService(football),
		News:        newsapp.NewService(set.news, loader, cfg.Revalidation.News),
		Revalidator: rv,
		Status:      plr.Status,
		Logger:      logger,
	})

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		providers:     set,
		cache:         caches,
		football:      football,
		revalidator:   rv,
		handler:       handler,
		httpServer:    buildHTTPServer(cfg, handler, rv, logger, recorder),
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, handler *handlers.Handler, rv *revalidate.Revalidator, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var admin *handlers.AdminHandler
	if cfg.Revalidation.AdminToken != "" {
		admin = handlers.NewAdminHandler(rv, cfg.Revalidation.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	if s.handler != nil {
		s.handler.BeginShutdown()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Rate limiter tickers live in the decorator chain.
	s.providers.close()

	if s.cache.stop != nil {
		if err := s.cache.stop(); err != nil {
			logging.Warn(s.logger, "cache shutdown failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
