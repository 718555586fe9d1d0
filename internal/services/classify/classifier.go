package classify

import (
	"StockSage/internal/domain/service"
	"StockSage/pkg/config"
	applogger "StockSage/pkg/logger"
)

// Select picks the classification strategy once at startup. A missing or
// incompatible model artifact degrades to the rule engine; callers never see
// the difference, only operators do via the log.
func Select(cfg *config.Config, log *applogger.Logger) service.Classifier {
	f, err := LoadForest(cfg.Model.Path)
	if err != nil {
		log.Warn("model artifact unavailable, using rule engine",
			applogger.String("path", cfg.Model.Path),
			applogger.Error(err),
		)
		return NewRuleEngine(cfg.Rules)
	}

	log.Info("trained model loaded",
		applogger.String("path", cfg.Model.Path),
		applogger.Int("trees", len(f.Trees)),
	)
	return NewForestClassifier(f)
}
