package coingecko

import (
	"context"
	"fmt"
	"time"

	xhttp "StockSage/pkg/http"
)

// Client queries the CoinGecko simple price API. Best-effort: single attempt,
// bounded by the client timeout, no retries.
type Client struct {
	baseURL string
	apiKey  string
	client  *xhttp.Client
}

// New creates a new CoinGecko client.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type coinQuote struct {
	USD          float64 `json:"usd"`
	USD24hChange float64 `json:"usd_24h_change"`
}

// SimplePrice fetches the last USD price and 24h percent change for a
// CoinGecko coin identifier (e.g. "bitcoin").
func (c *Client) SimplePrice(ctx context.Context, coinID string) (price, change float64, err error) {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["x-cg-demo-api-key"] = c.apiKey
	}

	var out map[string]coinQuote
	err = c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/simple/price",
		QueryParams: map[string][]string{
			"ids":                 {coinID},
			"vs_currencies":       {"usd"},
			"include_24hr_change": {"true"},
		},
		Headers: headers,
	}, &out)
	if err != nil {
		return 0, 0, fmt.Errorf("coingecko simple price: %w", err)
	}

	q, ok := out[coinID]
	if !ok {
		return 0, 0, fmt.Errorf("coingecko: no quote for %s", coinID)
	}
	if q.USD <= 0 {
		return 0, 0, fmt.Errorf("coingecko: non-positive price for %s", coinID)
	}

	return q.USD, q.USD24hChange, nil
}
