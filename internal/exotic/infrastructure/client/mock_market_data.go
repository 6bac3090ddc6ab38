package client

import (
	"context"
	"math/rand"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
)

// MockMarketDataClient 模拟行情客户端，用于本地运行与离线工具
type MockMarketDataClient struct {
	rng *rand.Rand
}

func NewMockMarketDataClient(seed int64) domain.MarketDataClient {
	return &MockMarketDataClient{rng: rand.New(rand.NewSource(seed))}
}

// GetSpotPrice 返回围绕 100 波动的模拟价格
func (c *MockMarketDataClient) GetSpotPrice(_ context.Context, _ string) (decimal.Decimal, error) {
	price := 100.0 + (c.rng.Float64()-0.5)*10
	return decimal.NewFromFloat(price), nil
}

// GetDailyCloses 返回由随机游走生成的模拟收盘价序列
func (c *MockMarketDataClient) GetDailyCloses(_ context.Context, _ string, days int) ([]float64, error) {
	if days < 3 {
		days = 3
	}
	closes := make([]float64, days)
	price := 100.0
	for i := range closes {
		price *= 1 + (c.rng.Float64()-0.5)*0.02
		closes[i] = price
	}
	return closes, nil
}
