package pricing

import (
	"context"
	"errors"
	"testing"

	"StockSage/internal/domain/models"
	"StockSage/pkg/config"
	applogger "StockSage/pkg/logger"
)

type stubFeed struct {
	price  float64
	change float64
	err    error
	coinID string
}

func (s *stubFeed) SimplePrice(_ context.Context, coinID string) (float64, float64, error) {
	s.coinID = coinID
	return s.price, s.change, s.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	return cfg
}

func TestResolveLiveFeed(t *testing.T) {
	feed := &stubFeed{price: 65000, change: 1.2}
	r := NewResolver(testConfig(t), feed, applogger.Nop())

	obs := r.Resolve(context.Background(), "BTC")
	if obs.Source != models.SourceLiveFeed {
		t.Fatalf("source = %q, want live feed", obs.Source)
	}
	if feed.coinID != "bitcoin" {
		t.Errorf("coin id = %q, want bitcoin (alias lookup)", feed.coinID)
	}
	if obs.Price != 65000 || obs.PercentChange != 1.2 {
		t.Errorf("unexpected observation %+v", obs)
	}
}

func TestResolveFeedErrorFallsThrough(t *testing.T) {
	feed := &stubFeed{err: errors.New("connection refused")}
	r := NewResolver(testConfig(t), feed, applogger.Nop())

	obs := r.Resolve(context.Background(), "BTC")
	if obs.Source == models.SourceLiveFeed {
		t.Fatal("feed error must not produce a live feed observation")
	}
	// BTC has a static table entry, so the chain stops there.
	if obs.Source != models.SourceStaticTable {
		t.Fatalf("source = %q, want static table", obs.Source)
	}
	if obs.Price != 65000 {
		t.Errorf("price = %v, want static table entry 65000", obs.Price)
	}
}

func TestResolveStaticTable(t *testing.T) {
	r := NewResolver(testConfig(t), nil, applogger.Nop())

	obs := r.Resolve(context.Background(), "AAPL")
	if obs.Source != models.SourceStaticTable {
		t.Fatalf("source = %q, want static table", obs.Source)
	}
	if obs.Price != 178.25 || obs.PercentChange != 0.8 {
		t.Errorf("unexpected observation %+v", obs)
	}
}

func TestResolveUnknownSymbolSimulated(t *testing.T) {
	cfg := testConfig(t)
	r := NewResolver(cfg, nil, applogger.Nop())

	obs := r.Resolve(context.Background(), "ZZZZ")
	if obs.Source != models.SourceSimulated {
		t.Fatalf("source = %q, want simulated", obs.Source)
	}
	if obs.Price <= 0 {
		t.Fatalf("simulated price must be positive, got %v", obs.Price)
	}
	if obs.Price < cfg.Resolver.SimMinPrice || obs.Price > cfg.Resolver.SimMaxPrice {
		t.Errorf("simulated price %v outside configured range", obs.Price)
	}
	if obs.PercentChange < -cfg.Resolver.SimChangeRange || obs.PercentChange > cfg.Resolver.SimChangeRange {
		t.Errorf("simulated change %v outside configured range", obs.PercentChange)
	}
}

func TestResolveSimulatedDeterministic(t *testing.T) {
	r := NewResolver(testConfig(t), nil, applogger.Nop())

	a := r.Resolve(context.Background(), "ZZZZ")
	b := r.Resolve(context.Background(), "ZZZZ")
	if a != b {
		t.Errorf("simulated observations differ for the same symbol: %+v vs %+v", a, b)
	}

	c := r.Resolve(context.Background(), "YYYY")
	if a.Price == c.Price && a.PercentChange == c.PercentChange {
		t.Error("different symbols should simulate different quotes")
	}
}
