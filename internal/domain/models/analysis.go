package models

import (
	"hash/fnv"
	"strings"
	"time"
)

// PriceSource tags the data path that produced a price observation.
type PriceSource string

const (
	SourceLiveFeed    PriceSource = "CoinGecko Live"
	SourceStaticTable PriceSource = "Market Data"
	SourceSimulated   PriceSource = "Simulated"
)

// PriceObservation is a single price reading with provenance. Produced fresh
// per call, never cached.
type PriceObservation struct {
	Symbol        string
	Price         float64
	PercentChange float64
	Source        PriceSource
}

// FeatureCount is the fixed width of a FeatureVector.
const FeatureCount = 9

// FeatureVector holds the nine technical indicators, in training order.
type FeatureVector struct {
	RSI          float64
	VolumeChange float64
	Momentum5D   float64
	Momentum20D  float64
	Volatility   float64
	SMA20Ratio   float64
	SMA50Ratio   float64
	MACD         float64
	BBPosition   float64
}

// Values returns the indicators as an ordered slice, matching the order the
// model artifact was trained on.
func (v FeatureVector) Values() []float64 {
	return []float64{
		v.RSI, v.VolumeChange, v.Momentum5D, v.Momentum20D,
		v.Volatility, v.SMA20Ratio, v.SMA50Ratio, v.MACD, v.BBPosition,
	}
}

// Level is the discrete recommendation strength.
type Level int

const (
	StrongSell Level = -2
	Sell       Level = -1
	Hold       Level = 0
	Buy        Level = 1
	StrongBuy  Level = 2
)

// Valid reports whether l is within the legal range.
func (l Level) Valid() bool {
	return l >= StrongSell && l <= StrongBuy
}

// ClassificationResult pairs a level with the classifier's confidence in it.
type ClassificationResult struct {
	Level      Level
	Confidence float64
}

// Recommendation is the human-readable triple for a level.
type Recommendation struct {
	Label     string
	Tier      string
	Reasoning string
}

// AccuracyReport describes the trained model's offline validation results.
// Loaded once at startup and read-only thereafter.
type AccuracyReport struct {
	OverallAccuracy   float64            `json:"overall_accuracy"`
	TrainingAccuracy  float64            `json:"training_accuracy,omitempty"`
	ModelType         string             `json:"model_type"`
	TrainingSamples   int                `json:"training_samples"`
	FeatureCount      int                `json:"feature_count"`
	FeatureImportance map[string]float64 `json:"feature_importance,omitempty"`
}

// RecommendationResult is the externally visible analysis record.
type RecommendationResult struct {
	AnalysisID      string      `json:"analysis_id"`
	Symbol          string      `json:"symbol"`
	Price           float64     `json:"price"`
	PriceChange     float64     `json:"price_change"`
	RSI             float64     `json:"rsi"`
	PredictionScore float64     `json:"prediction_score"`
	Recommendation  string      `json:"recommendation"`
	Confidence      string      `json:"confidence"`
	Reasoning       string      `json:"reasoning"`
	DataSource      PriceSource `json:"data_source"`
	ModelUsed       bool        `json:"model_used"`
	ModelAccuracy   float64     `json:"model_accuracy"`
	Timestamp       time.Time   `json:"timestamp"`
}

// NormalizeSymbol uppercases and trims a raw symbol.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// SymbolSeed derives a deterministic PRNG seed from a symbol, so repeated
// derivations for the same symbol reproduce the same jitter.
func SymbolSeed(symbol string) int64 {
	h := fnv.New32a()
	h.Write([]byte(symbol))
	return int64(h.Sum32() % 10000)
}
