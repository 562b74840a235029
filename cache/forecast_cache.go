package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"weather-cli/datasource"
	"weather-cli/models"
)

// CachedForecastProvider wraps a ForecastProvider and adds caching functionality
type CachedForecastProvider struct {
	provider       datasource.ForecastProvider
	cache          map[string]forecastCacheEntry // key is lat:lon:units:days
	mutex          sync.RWMutex
	cacheDuration  time.Duration
	cacheHitCount  int
	cacheMissCount int
}

// forecastCacheEntry represents a cached forecast with its timestamp
type forecastCacheEntry struct {
	Bundle    models.ForecastBundle
	Timestamp time.Time
}

// NewCachedForecastProvider creates a new cached wrapper around a forecast provider
func NewCachedForecastProvider(provider datasource.ForecastProvider, cacheDuration time.Duration) *CachedForecastProvider {
	return &CachedForecastProvider{
		provider:      provider,
		cache:         make(map[string]forecastCacheEntry),
		cacheDuration: cacheDuration,
	}
}

// Name returns the name of the underlying provider with [Cached] suffix
func (c *CachedForecastProvider) Name() string {
	return c.provider.Name() + " [Cached]"
}

// FetchForecast fetches forecast data, using the cache when available
func (c *CachedForecastProvider) FetchForecast(ctx context.Context, loc models.Location, units models.Units, days int) (models.ForecastBundle, error) {
	// Coordinates plus unit system plus horizon identify a response
	cacheKey := fmt.Sprintf("%.4f:%.4f:%s:%d", loc.Latitude, loc.Longitude, units, days)

	// First check if we have this forecast in the cache
	c.mutex.RLock()
	entry, found := c.cache[cacheKey]
	c.mutex.RUnlock()

	// If found and not expired, return the cached forecast
	if found && time.Since(entry.Timestamp) < c.cacheDuration {
		c.mutex.Lock()
		c.cacheHitCount++
		c.mutex.Unlock()
		return entry.Bundle, nil
	}

	// Cache miss or expired, fetch fresh forecast
	c.mutex.Lock()
	c.cacheMissCount++
	c.mutex.Unlock()

	bundle, err := c.provider.FetchForecast(ctx, loc, units, days)
	if err != nil {
		return models.ForecastBundle{}, err
	}

	// Store in cache
	c.mutex.Lock()
	c.cache[cacheKey] = forecastCacheEntry{
		Bundle:    bundle,
		Timestamp: time.Now(),
	}
	c.mutex.Unlock()

	return bundle, nil
}

// CacheStats returns statistics about cache hits and misses
func (c *CachedForecastProvider) CacheStats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cacheHitCount, c.cacheMissCount
}

// Ensure CachedForecastProvider implements ForecastProvider
var _ datasource.ForecastProvider = (*CachedForecastProvider)(nil)
