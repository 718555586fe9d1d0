package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// StaticQuote is a reference price entry for symbols without a live feed.
type StaticQuote struct {
	Price  float64 `yaml:"price"`
	Change float64 `yaml:"change"`
}

// RuleConfig holds the rule-engine thresholds, score cutoffs and per-level
// confidences. Cutoff values differ between historical variants of the system,
// so they are configuration, not hard-coded invariants.
type RuleConfig struct {
	RSIStrongBuy  float64 `yaml:"rsi_strong_buy" default:"35"`
	RSIBuy        float64 `yaml:"rsi_buy" default:"45"`
	RSIStrongSell float64 `yaml:"rsi_strong_sell" default:"70"`
	RSISell       float64 `yaml:"rsi_sell" default:"60"`

	MomentumShortStrong float64 `yaml:"momentum_short_strong" default:"0.03"`
	MomentumLongStrong  float64 `yaml:"momentum_long_strong" default:"0.05"`
	MomentumShortWeak   float64 `yaml:"momentum_short_weak" default:"0.01"`

	TrendShortUp   float64 `yaml:"trend_short_up" default:"1.02"`
	TrendLongUp    float64 `yaml:"trend_long_up" default:"1.01"`
	TrendShortDown float64 `yaml:"trend_short_down" default:"0.98"`
	TrendLongDown  float64 `yaml:"trend_long_down" default:"0.99"`

	StrongCutoff int `yaml:"strong_cutoff" default:"3"`
	WeakCutoff   int `yaml:"weak_cutoff" default:"1"`

	StrongConfidence float64 `yaml:"strong_confidence" default:"0.85"`
	WeakConfidence   float64 `yaml:"weak_confidence" default:"0.75"`
	HoldConfidence   float64 `yaml:"hold_confidence" default:"0.65"`
}

// FeaturesConfig holds the indicator clamp bounds and jitter scale.
type FeaturesConfig struct {
	RSIMin    float64 `yaml:"rsi_min" default:"15"`
	RSIMax    float64 `yaml:"rsi_max" default:"85"`
	RSIJitter float64 `yaml:"rsi_jitter" default:"4"`
	BBMin     float64 `yaml:"bb_min" default:"0.1"`
	BBMax     float64 `yaml:"bb_max" default:"0.9"`
}

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logging"`
	Feed struct {
		BaseURL string            `yaml:"base_url" default:"https://api.coingecko.com/api/v3"`
		APIKey  string            `yaml:"api_key"`
		Timeout time.Duration     `yaml:"timeout" default:"8s"`
		Aliases map[string]string `yaml:"aliases"`
	} `yaml:"feed"`
	Resolver struct {
		StaticTable    map[string]StaticQuote `yaml:"static_table"`
		SimMinPrice    float64                `yaml:"sim_min_price" default:"10"`
		SimMaxPrice    float64                `yaml:"sim_max_price" default:"500"`
		SimChangeRange float64                `yaml:"sim_change_range" default:"3"`
	} `yaml:"resolver"`
	Features FeaturesConfig `yaml:"features"`
	Rules    RuleConfig     `yaml:"rules"`
	Model    struct {
		Path         string `yaml:"path" default:"professional_model.json"`
		AccuracyPath string `yaml:"accuracy_path" default:"model_accuracy.json"`
	} `yaml:"model"`
}

// defaultAliases maps common crypto tickers and names to the live feed's
// canonical coin identifiers.
var defaultAliases = map[string]string{
	"BTC": "bitcoin", "BITCOIN": "bitcoin",
	"ETH": "ethereum", "ETHEREUM": "ethereum",
}

// defaultStaticTable is the built-in reference table used when the config
// file does not provide one.
var defaultStaticTable = map[string]StaticQuote{
	"AAPL":   {Price: 178.25, Change: 0.8},
	"TSLA":   {Price: 252.80, Change: -1.2},
	"MSFT":   {Price: 331.40, Change: 1.5},
	"GOOGL":  {Price: 139.85, Change: 0.3},
	"AMZN":   {Price: 130.50, Change: 2.1},
	"NVDA":   {Price: 450.75, Change: 3.2},
	"META":   {Price: 300.25, Change: -0.5},
	"NFLX":   {Price: 485.20, Change: 1.8},
	"SPY":    {Price: 454.20, Change: 0.6},
	"QQQ":    {Price: 372.65, Change: 0.9},
	"GOLD":   {Price: 1985.50, Change: 0.4},
	"SILVER": {Price: 23.15, Change: -0.2},
	"OIL":    {Price: 82.30, Change: -1.5},
	"BTC":    {Price: 65000, Change: 1.2},
	"ETH":    {Price: 3500, Change: -0.8},
}

// Load reads and parses a YAML configuration file, applies struct defaults
// and validates the result.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.applyDefaults(); err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		c.Feed.APIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, perr := strconv.Atoi(v); perr == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MODEL_PATH"); v != "" {
		c.Model.Path = v
	}

	return c, nil
}

// Default returns a config built purely from struct defaults and the built-in
// tables, without reading a file.
func Default() (*Config, error) {
	var c Config
	if err := c.applyDefaults(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() error {
	if err := defaults.Set(c); err != nil {
		return err
	}
	// Struct tag defaults do not cover maps.
	if len(c.Feed.Aliases) == 0 {
		c.Feed.Aliases = defaultAliases
	}
	if len(c.Resolver.StaticTable) == 0 {
		c.Resolver.StaticTable = defaultStaticTable
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.Feed.Timeout <= 0 {
		return fmt.Errorf("feed.timeout must be positive")
	}
	if c.Resolver.SimMinPrice <= 0 || c.Resolver.SimMaxPrice <= c.Resolver.SimMinPrice {
		return fmt.Errorf("resolver simulated price range invalid: [%v, %v]",
			c.Resolver.SimMinPrice, c.Resolver.SimMaxPrice)
	}
	if c.Features.RSIMin >= c.Features.RSIMax {
		return fmt.Errorf("features rsi clamp invalid: [%v, %v]", c.Features.RSIMin, c.Features.RSIMax)
	}
	if c.Features.BBMin >= c.Features.BBMax {
		return fmt.Errorf("features bb clamp invalid: [%v, %v]", c.Features.BBMin, c.Features.BBMax)
	}
	if c.Rules.WeakCutoff < 1 || c.Rules.StrongCutoff <= c.Rules.WeakCutoff {
		return fmt.Errorf("rules cutoffs invalid: weak=%d strong=%d",
			c.Rules.WeakCutoff, c.Rules.StrongCutoff)
	}
	if c.Model.Path == "" {
		return fmt.Errorf("model.path is required")
	}
	return nil
}
