package features

import (
	"math"
	"math/rand"

	"StockSage/internal/domain/models"
	"StockSage/pkg/config"
	"StockSage/pkg/util"
)

// Deriver turns a raw price observation into the nine-indicator vector.
// Jitter comes from a PRNG seeded by the symbol, so derivation is a pure
// function of (symbol, price, change).
type Deriver struct {
	cfg config.FeaturesConfig
}

// NewDeriver creates a deriver with the given clamp bounds and jitter scale.
func NewDeriver(cfg config.FeaturesConfig) *Deriver {
	return &Deriver{cfg: cfg}
}

// Derive computes the indicator vector. Draw order is fixed: changing it
// changes every derived vector.
func (d *Deriver) Derive(symbol string, price, percentChange float64) models.FeatureVector {
	_ = price // indicators are closed-form in the percent change only
	rng := rand.New(rand.NewSource(models.SymbolSeed(symbol)))

	rsi := util.Clamp(50+percentChange*0.3+rng.NormFloat64()*d.cfg.RSIJitter,
		d.cfg.RSIMin, d.cfg.RSIMax)
	volumeChange := percentChange*1.5 + uniform(rng, -15, 25)
	momentum5 := percentChange/80 + uniform(rng, -0.02, 0.02)
	momentum20 := percentChange/40 + uniform(rng, -0.03, 0.03)
	volatility := math.Abs(percentChange/15) + uniform(rng, 0.01, 0.04)
	sma20 := 1.0 + percentChange/150
	sma50 := 1.0 + percentChange/100
	macd := percentChange/60 + uniform(rng, -0.01, 0.01)
	bb := util.Clamp(0.5+percentChange/200, d.cfg.BBMin, d.cfg.BBMax)

	return models.FeatureVector{
		RSI:          rsi,
		VolumeChange: volumeChange,
		Momentum5D:   momentum5,
		Momentum20D:  momentum20,
		Volatility:   volatility,
		SMA20Ratio:   sma20,
		SMA50Ratio:   sma50,
		MACD:         macd,
		BBPosition:   bb,
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
