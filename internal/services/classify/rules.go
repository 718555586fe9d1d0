package classify

import (
	"StockSage/internal/domain/models"
	"StockSage/pkg/config"
)

// StrategyRules names the rule-engine classification strategy.
const StrategyRules = "rules"

// RuleEngine is the always-available classification strategy: an integer score
// accumulated from weighted threshold checks on RSI, momentum and trend
// ratios, mapped to a level with a fixed per-level confidence.
type RuleEngine struct {
	cfg config.RuleConfig
}

// NewRuleEngine creates a rule engine with the given thresholds.
func NewRuleEngine(cfg config.RuleConfig) *RuleEngine {
	return &RuleEngine{cfg: cfg}
}

func (e *RuleEngine) Name() string { return StrategyRules }

// Score accumulates the signal score for a feature vector.
func (e *RuleEngine) Score(v models.FeatureVector) int {
	c := e.cfg
	score := 0

	switch {
	case v.RSI < c.RSIStrongBuy:
		score += 2
	case v.RSI < c.RSIBuy:
		score++
	case v.RSI > c.RSIStrongSell:
		score -= 2
	case v.RSI > c.RSISell:
		score--
	}

	switch {
	case v.Momentum5D > c.MomentumShortStrong && v.Momentum20D > c.MomentumLongStrong:
		score += 2
	case v.Momentum5D > c.MomentumShortWeak:
		score++
	case v.Momentum5D < -c.MomentumShortStrong && v.Momentum20D < -c.MomentumLongStrong:
		score -= 2
	case v.Momentum5D < -c.MomentumShortWeak:
		score--
	}

	if v.SMA20Ratio > c.TrendShortUp && v.SMA50Ratio > c.TrendLongUp {
		score++
	} else if v.SMA20Ratio < c.TrendShortDown && v.SMA50Ratio < c.TrendLongDown {
		score--
	}

	return score
}

// Classify maps the score to a level via the configured cutoffs. Never fails.
func (e *RuleEngine) Classify(v models.FeatureVector) (models.ClassificationResult, error) {
	c := e.cfg
	score := e.Score(v)

	var res models.ClassificationResult
	switch {
	case score >= c.StrongCutoff:
		res = models.ClassificationResult{Level: models.StrongBuy, Confidence: c.StrongConfidence}
	case score >= c.WeakCutoff:
		res = models.ClassificationResult{Level: models.Buy, Confidence: c.WeakConfidence}
	case score <= -c.StrongCutoff:
		res = models.ClassificationResult{Level: models.StrongSell, Confidence: c.StrongConfidence}
	case score <= -c.WeakCutoff:
		res = models.ClassificationResult{Level: models.Sell, Confidence: c.WeakConfidence}
	default:
		res = models.ClassificationResult{Level: models.Hold, Confidence: c.HoldConfidence}
	}
	return res, nil
}
