package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
)

// HTTPMarketDataClient 通过 HTTP JSON 接口访问行情服务
type HTTPMarketDataClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPMarketDataClient 创建行情服务客户端
func NewHTTPMarketDataClient(baseURL string, timeout time.Duration) *HTTPMarketDataClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPMarketDataClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type quoteResponse struct {
	Symbol    string  `json:"symbol"`
	LastPrice float64 `json:"last_price"`
}

type closesResponse struct {
	Symbol string    `json:"symbol"`
	Closes []float64 `json:"closes"`
}

// GetSpotPrice 获取标的最新价格
func (c *HTTPMarketDataClient) GetSpotPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	var resp quoteResponse
	endpoint := fmt.Sprintf("%s/api/v1/quotes/%s", c.baseURL, url.PathEscape(symbol))
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return decimal.Zero, err
	}
	if resp.LastPrice <= 0 {
		return decimal.Zero, fmt.Errorf("market data returned non-positive price %v for %s", resp.LastPrice, symbol)
	}
	return decimal.NewFromFloat(resp.LastPrice), nil
}

// GetDailyCloses 获取最近 days 个交易日的收盘价序列
func (c *HTTPMarketDataClient) GetDailyCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	var resp closesResponse
	endpoint := fmt.Sprintf("%s/api/v1/closes/%s?days=%d", c.baseURL, url.PathEscape(symbol), days)
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if len(resp.Closes) < 3 {
		return nil, domain.ErrInsufficientData
	}
	return resp.Closes, nil
}

func (c *HTTPMarketDataClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling market data service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("market data service returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding market data response: %w", err)
	}
	return nil
}
