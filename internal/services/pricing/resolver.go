package pricing

import (
	"context"
	"math/rand"
	"time"

	"StockSage/internal/domain/models"
	"StockSage/pkg/config"
	applogger "StockSage/pkg/logger"
)

// LiveFeed is the outbound price feed contract.
type LiveFeed interface {
	SimplePrice(ctx context.Context, coinID string) (price, change float64, err error)
}

// Resolver walks the price fallback chain: live feed for aliased assets,
// static reference table, then a deterministic simulated quote. It never
// fails; a dead feed only costs one bounded attempt.
type Resolver struct {
	feed    LiveFeed
	aliases map[string]string
	table   map[string]config.StaticQuote
	timeout time.Duration

	simMinPrice    float64
	simMaxPrice    float64
	simChangeRange float64

	log *applogger.Logger
}

// NewResolver creates a resolver from config. feed may be nil to disable the
// live path entirely.
func NewResolver(cfg *config.Config, feed LiveFeed, log *applogger.Logger) *Resolver {
	return &Resolver{
		feed:           feed,
		aliases:        cfg.Feed.Aliases,
		table:          cfg.Resolver.StaticTable,
		timeout:        cfg.Feed.Timeout,
		simMinPrice:    cfg.Resolver.SimMinPrice,
		simMaxPrice:    cfg.Resolver.SimMaxPrice,
		simChangeRange: cfg.Resolver.SimChangeRange,
		log:            log,
	}
}

// Resolve returns a price observation for the symbol. The live feed is tried
// once with a bounded timeout; any failure falls through to the next source.
func (r *Resolver) Resolve(ctx context.Context, symbol string) models.PriceObservation {
	if coinID, ok := r.aliases[symbol]; ok && r.feed != nil {
		fctx, cancel := context.WithTimeout(ctx, r.timeout)
		price, change, err := r.feed.SimplePrice(fctx, coinID)
		cancel()
		if err == nil {
			return models.PriceObservation{
				Symbol:        symbol,
				Price:         price,
				PercentChange: change,
				Source:        models.SourceLiveFeed,
			}
		}
		r.log.Warn("live feed unavailable, falling back",
			applogger.String("symbol", symbol),
			applogger.Error(err),
		)
	}

	if q, ok := r.table[symbol]; ok {
		return models.PriceObservation{
			Symbol:        symbol,
			Price:         q.Price,
			PercentChange: q.Change,
			Source:        models.SourceStaticTable,
		}
	}

	return r.simulate(symbol)
}

// simulate synthesizes a plausible quote. Seeded by the symbol, so the same
// unknown symbol always resolves to the same observation.
func (r *Resolver) simulate(symbol string) models.PriceObservation {
	rng := rand.New(rand.NewSource(models.SymbolSeed(symbol)))
	price := r.simMinPrice + rng.Float64()*(r.simMaxPrice-r.simMinPrice)
	change := -r.simChangeRange + rng.Float64()*2*r.simChangeRange
	return models.PriceObservation{
		Symbol:        symbol,
		Price:         price,
		PercentChange: change,
		Source:        models.SourceSimulated,
	}
}
