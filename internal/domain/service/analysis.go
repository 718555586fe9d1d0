package service

import (
	"context"

	"StockSage/internal/domain/models"
)

// PriceResolver produces a usable price observation for any symbol. Total:
// implementations fall back through cheaper sources instead of failing.
type PriceResolver interface {
	Resolve(ctx context.Context, symbol string) models.PriceObservation
}

// Classifier maps a feature vector to a recommendation level with confidence.
type Classifier interface {
	Classify(v models.FeatureVector) (models.ClassificationResult, error)
	Name() string
}
