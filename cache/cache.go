package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"weather-cli/datasource"
	"weather-cli/models"
)

// CachedGeocoder wraps a Geocoder and memoizes resolved locations for a TTL.
// City coordinates effectively never change, so embedding callers that look
// up the same place repeatedly can skip the network round trip.
type CachedGeocoder struct {
	geocoder       datasource.Geocoder
	cache          map[string]geocodeEntry
	mutex          sync.RWMutex
	cacheDuration  time.Duration
	cacheHitCount  int
	cacheMissCount int
}

// geocodeEntry represents a cached location with its timestamp
type geocodeEntry struct {
	Location  models.Location
	Timestamp time.Time
}

// NewCachedGeocoder creates a new cached wrapper around a geocoder
func NewCachedGeocoder(geocoder datasource.Geocoder, cacheDuration time.Duration) *CachedGeocoder {
	return &CachedGeocoder{
		geocoder:      geocoder,
		cache:         make(map[string]geocodeEntry),
		cacheDuration: cacheDuration,
	}
}

// Name returns the name of the underlying geocoder with [Cached] suffix
func (c *CachedGeocoder) Name() string {
	return c.geocoder.Name() + " [Cached]"
}

// Geocode resolves a place name, using the cache when available
func (c *CachedGeocoder) Geocode(ctx context.Context, name string) (models.Location, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	// First check if we have this place in the cache
	c.mutex.RLock()
	entry, found := c.cache[key]
	c.mutex.RUnlock()

	// If found and not expired, return the cached location
	if found && time.Since(entry.Timestamp) < c.cacheDuration {
		c.mutex.Lock()
		c.cacheHitCount++
		c.mutex.Unlock()
		return entry.Location, nil
	}

	// Cache miss or expired, resolve fresh
	c.mutex.Lock()
	c.cacheMissCount++
	c.mutex.Unlock()

	loc, err := c.geocoder.Geocode(ctx, name)
	if err != nil {
		return models.Location{}, err
	}

	// Store in cache
	c.mutex.Lock()
	c.cache[key] = geocodeEntry{
		Location:  loc,
		Timestamp: time.Now(),
	}
	c.mutex.Unlock()

	return loc, nil
}

// CacheStats returns statistics about cache hits and misses
func (c *CachedGeocoder) CacheStats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cacheHitCount, c.cacheMissCount
}

// Ensure CachedGeocoder implements the Geocoder interface
var _ datasource.Geocoder = (*CachedGeocoder)(nil)
