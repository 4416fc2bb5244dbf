package bootstrap

import (
	"log/slog"

	"github.com/finmetrics/credit-gateway/internal/config"
	"github.com/finmetrics/credit-gateway/internal/core/usecase"
	"github.com/finmetrics/credit-gateway/internal/infrastructure/resilience"
	"github.com/finmetrics/credit-gateway/internal/infrastructure/scoring"
	"github.com/finmetrics/credit-gateway/internal/infrastructure/similarity"
	"github.com/finmetrics/credit-gateway/internal/infrastructure/state/memstore"
	"github.com/finmetrics/credit-gateway/internal/observability/logging"
	"github.com/finmetrics/credit-gateway/internal/observability/metrics"
)

const serviceName = "credit-gateway"

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.GatewayMetrics
	Store   *memstore.Store
	Submit  *usecase.SubmissionOrchestrator
}

func New(cfg config.Config) *App {
	logger := logging.NewJSONLogger(serviceName, cfg.LogLevel)
	slog.SetDefault(logger)

	gatewayMetrics := metrics.NewGatewayMetrics(serviceName)

	policy := resilience.DefaultPolicy()
	policy.MaxAttempts = cfg.RetryMaxAttempts
	policy.BreakerEnabled = cfg.BreakerEnabled
	executor := resilience.NewExecutor(policy)

	scorer := scoring.New(cfg.ScoringURL, scoring.Options{
		Timeout:  cfg.ScoringTimeout,
		Executor: executor,
	})
	finder := similarity.New(cfg.SimilarityURL, similarity.Options{
		Timeout: cfg.EnrichmentTimeout,
		Logger:  logger,
	})

	store := memstore.New()
	submit := usecase.NewSubmissionOrchestrator(scorer, finder, store, logger, usecase.Options{
		EnrichmentTimeout: cfg.EnrichmentTimeout,
		Metrics:           gatewayMetrics,
	})

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: gatewayMetrics,
		Store:   store,
		Submit:  submit,
	}
}

// Close waits for detached enrichment calls before shutdown.
func (a *App) Close() {
	a.Submit.Drain()
}
