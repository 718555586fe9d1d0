package usecase

import (
	"context"
	"fmt"
	"time"

	"StockSage/internal/domain/models"
	domrepo "StockSage/internal/domain/repository"
	domsvc "StockSage/internal/domain/service"
	"StockSage/internal/services/classify"
	"StockSage/internal/services/features"
	"StockSage/internal/services/recommend"
	applogger "StockSage/pkg/logger"
	"StockSage/pkg/util"

	"github.com/google/uuid"
)

// Analyzer runs the full analysis pipeline for one symbol: resolve price,
// derive features, classify, compose the recommendation. Stateless per call;
// the classifier and accuracy report are fixed at construction.
type Analyzer struct {
	resolver   domsvc.PriceResolver
	deriver    *features.Deriver
	classifier domsvc.Classifier
	accuracy   models.AccuracyReport
	modelUsed  bool
	metrics    domrepo.Metrics
	log        *applogger.Logger
}

func NewAnalyzer(
	resolver domsvc.PriceResolver,
	deriver *features.Deriver,
	classifier domsvc.Classifier,
	accuracy models.AccuracyReport,
	metrics domrepo.Metrics,
	log *applogger.Logger,
) *Analyzer {
	return &Analyzer{
		resolver:   resolver,
		deriver:    deriver,
		classifier: classifier,
		accuracy:   accuracy,
		modelUsed:  classifier.Name() == classify.StrategyForest,
		metrics:    metrics,
		log:        log,
	}
}

// Analyze produces a recommendation for the symbol. Internal faults are
// converted to errors at this boundary; nothing escapes as a panic.
func (a *Analyzer) Analyze(ctx context.Context, symbol string) (result models.RecommendationResult, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			a.metrics.RecordError("panic")
			a.log.Error("analysis panicked",
				applogger.String("symbol", symbol),
				applogger.Any("cause", r),
			)
			result = models.RecommendationResult{}
			err = fmt.Errorf("analysis failed for %s: %v", symbol, r)
		}
	}()

	sym := models.NormalizeSymbol(symbol)

	obs := a.resolver.Resolve(ctx, sym)
	vec := a.deriver.Derive(sym, obs.Price, obs.PercentChange)

	cls, cerr := a.classifier.Classify(vec)
	if cerr != nil {
		a.metrics.RecordError("classify")
		return models.RecommendationResult{}, fmt.Errorf("classify %s: %w", sym, cerr)
	}

	rec, rerr := recommend.Compose(cls.Level)
	if rerr != nil {
		a.metrics.RecordError("compose")
		return models.RecommendationResult{}, fmt.Errorf("compose %s: %w", sym, rerr)
	}

	a.metrics.RecordAnalysis(string(obs.Source), rec.Label)
	a.metrics.RecordLastPrice(sym, obs.Price)
	a.metrics.RecordLatency("analyze", time.Since(start).Seconds())

	a.log.Debug("analysis complete",
		applogger.String("symbol", sym),
		applogger.String("recommendation", rec.Label),
		applogger.String("source", string(obs.Source)),
	)

	return models.RecommendationResult{
		AnalysisID:      uuid.NewString(),
		Symbol:          sym,
		Price:           util.Round(obs.Price, 2),
		PriceChange:     util.Round(obs.PercentChange, 2),
		RSI:             util.Round(vec.RSI, 1),
		PredictionScore: util.Round(cls.Confidence, 3),
		Recommendation:  rec.Label,
		Confidence:      rec.Tier,
		Reasoning:       rec.Reasoning,
		DataSource:      obs.Source,
		ModelUsed:       a.modelUsed,
		ModelAccuracy:   a.accuracy.OverallAccuracy,
		Timestamp:       time.Now().UTC(),
	}, nil
}

// Accuracy returns the process-wide accuracy report.
func (a *Analyzer) Accuracy() models.AccuracyReport {
	return a.accuracy
}
