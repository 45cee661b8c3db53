package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// KeyRateSource returns the current reference rate in percent
type KeyRateSource interface {
	GetKeyRate(ctx context.Context) (float64, error)
}

// RateCache keeps the last known reference loan rate as an annual fraction
type RateCache struct {
	source   KeyRateSource
	fallback float64
	log      *logrus.Logger

	mu        sync.RWMutex
	rate      float64
	updatedAt time.Time
}

// NewRateCache creates a cache that reports fallback until the first refresh succeeds
func NewRateCache(source KeyRateSource, fallback float64, log *logrus.Logger) *RateCache {
	return &RateCache{source: source, fallback: fallback, log: log}
}

// Refresh pulls a new rate from the source. On failure the previous value is kept.
func (c *RateCache) Refresh(ctx context.Context) error {
	percent, err := c.source.GetKeyRate(ctx)
	if err != nil {
		c.log.Warnf("Failed to refresh reference rate, keeping %.4f: %v", c.Rate(), err)
		return fmt.Errorf("failed to refresh reference rate: %w", err)
	}

	c.mu.Lock()
	c.rate = percent / 100
	c.updatedAt = time.Now()
	c.mu.Unlock()

	c.log.Infof("Reference rate updated: %.4f", percent/100)
	return nil
}

// Rate returns the cached rate, or the fallback if none was fetched yet
func (c *RateCache) Rate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.updatedAt.IsZero() {
		return c.fallback
	}
	return c.rate
}

// UpdatedAt reports when the rate was last refreshed
func (c *RateCache) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt
}
