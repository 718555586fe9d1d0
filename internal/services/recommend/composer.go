package recommend

import (
	"fmt"

	"StockSage/internal/domain/models"
)

// recommendations is the total level→triple mapping. Every legal level must
// resolve here.
var recommendations = map[models.Level]models.Recommendation{
	models.StrongBuy: {
		Label:     "STRONG BUY",
		Tier:      "Very High",
		Reasoning: "Multiple strong bullish signals detected",
	},
	models.Buy: {
		Label:     "BUY",
		Tier:      "High",
		Reasoning: "Favorable market conditions with bullish bias",
	},
	models.Hold: {
		Label:     "HOLD",
		Tier:      "Medium",
		Reasoning: "Market in consolidation phase",
	},
	models.Sell: {
		Label:     "SELL",
		Tier:      "High",
		Reasoning: "Bearish signals emerging",
	},
	models.StrongSell: {
		Label:     "STRONG SELL",
		Tier:      "Very High",
		Reasoning: "Multiple strong bearish signals",
	},
}

// Compose maps a classification level to its label, confidence tier and
// reasoning. A level outside -2..2 is a broken classifier contract and is
// rejected rather than guessed at.
func Compose(level models.Level) (models.Recommendation, error) {
	rec, ok := recommendations[level]
	if !ok {
		return models.Recommendation{}, fmt.Errorf("recommendation level %d out of range", level)
	}
	return rec, nil
}
