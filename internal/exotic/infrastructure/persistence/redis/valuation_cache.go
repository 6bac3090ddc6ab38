package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
)

const (
	keyPrefix  = "exoticpricing:valuation:"
	defaultTTL = 10 * time.Minute
)

type valuationCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewValuationCache 创建基于 Redis 的估值缓存
func NewValuationCache(client *goredis.Client) domain.ValuationCache {
	return &valuationCache{client: client, ttl: defaultTTL}
}

func (c *valuationCache) SetLatest(ctx context.Context, run *domain.ValuationRun) error {
	if run == nil {
		return nil
	}
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshaling valuation: %w", err)
	}
	return c.client.Set(ctx, keyPrefix+run.Symbol, data, c.ttl).Err()
}

func (c *valuationCache) GetLatest(ctx context.Context, symbol string) (*domain.ValuationRun, error) {
	data, err := c.client.Get(ctx, keyPrefix+symbol).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrValuationNotFound
	}
	if err != nil {
		return nil, err
	}
	var run domain.ValuationRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("unmarshaling valuation: %w", err)
	}
	return &run, nil
}
