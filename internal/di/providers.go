package di

import (
	"StockSage/internal/domain/models"
	"StockSage/internal/domain/repository"
	domsvc "StockSage/internal/domain/service"
	"StockSage/internal/handler/api"
	"StockSage/internal/service/coingecko"
	"StockSage/internal/services/classify"
	"StockSage/internal/services/features"
	"StockSage/internal/services/pricing"
	"StockSage/internal/usecase"
	"StockSage/pkg/config"
	xhttp "StockSage/pkg/http"
	applogger "StockSage/pkg/logger"
	"StockSage/pkg/metrics"
	"StockSage/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideLiveFeed creates the CoinGecko price feed client.
func ProvideLiveFeed(cfg *config.Config) pricing.LiveFeed {
	return coingecko.New(cfg.Feed.BaseURL, cfg.Feed.APIKey, cfg.Feed.Timeout)
}

// ProvideResolver creates the price fallback chain.
func ProvideResolver(cfg *config.Config, feed pricing.LiveFeed, log *applogger.Logger) domsvc.PriceResolver {
	return pricing.NewResolver(cfg, feed, log)
}

// ProvideDeriver creates the indicator deriver.
func ProvideDeriver(cfg *config.Config) *features.Deriver {
	return features.NewDeriver(cfg.Features)
}

// ProvideClassifier selects the classification strategy at startup: the
// trained forest when its artifact loads, the rule engine otherwise.
func ProvideClassifier(cfg *config.Config, log *applogger.Logger) domsvc.Classifier {
	return classify.Select(cfg, log)
}

// ProvideAccuracy loads the model accuracy report, falling back to the
// built-in defaults.
func ProvideAccuracy(cfg *config.Config, log *applogger.Logger) models.AccuracyReport {
	return classify.LoadAccuracy(cfg.Model.AccuracyPath, log)
}

// ProvideAnalyzer creates the analysis use case.
func ProvideAnalyzer(
	resolver domsvc.PriceResolver,
	deriver *features.Deriver,
	classifier domsvc.Classifier,
	accuracy models.AccuracyReport,
	m repository.Metrics,
	log *applogger.Logger,
) *usecase.Analyzer {
	return usecase.NewAnalyzer(resolver, deriver, classifier, accuracy, m, log)
}

// ProvideHandler creates the HTTP handler for the analysis API.
func ProvideHandler(log *applogger.Logger, analyzer *usecase.Analyzer) xhttp.Handler {
	return api.NewAnalysisEchoHandler(log, analyzer)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, log *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, log, handler)
}
