package server

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/michoacana/antojo/internal/recommend"
)

// WeatherCache stores weather categories per city for a limited time.
type WeatherCache interface {
	Get(ctx context.Context, city string) (recommend.Weather, bool)
	Set(ctx context.Context, city string, w recommend.Weather, ttl time.Duration)
}

// RedisWeatherCache keeps entries under antojo:weather:<city>.
type RedisWeatherCache struct {
	client *redis.Client
}

// NewRedisWeatherCache wraps an existing client.
func NewRedisWeatherCache(client *redis.Client) *RedisWeatherCache {
	return &RedisWeatherCache{client: client}
}

func (r *RedisWeatherCache) Get(ctx context.Context, city string) (recommend.Weather, bool) {
	v, err := r.client.Get(ctx, weatherKey(city)).Result()
	if err != nil {
		return "", false
	}
	return recommend.Weather(v), true
}

func (r *RedisWeatherCache) Set(ctx context.Context, city string, w recommend.Weather, ttl time.Duration) {
	// best-effort; a miss only costs one more lookup
	_ = r.client.Set(ctx, weatherKey(city), string(w), ttl).Err()
}

func weatherKey(city string) string {
	return "antojo:weather:" + strings.ToLower(strings.TrimSpace(city))
}

// MemoryWeatherCache is the in-process cache used when Redis is not configured.
type MemoryWeatherCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	weather recommend.Weather
	expires time.Time
}

// NewMemoryWeatherCache returns an empty cache.
func NewMemoryWeatherCache() *MemoryWeatherCache {
	return &MemoryWeatherCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryWeatherCache) Get(_ context.Context, city string) (recommend.Weather, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := weatherKey(city)
	e, ok := m.entries[key]
	if !ok {
		return "", false
	}
	if !m.now().Before(e.expires) {
		delete(m.entries, key)
		return "", false
	}
	return e.weather, true
}

func (m *MemoryWeatherCache) Set(_ context.Context, city string, w recommend.Weather, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[weatherKey(city)] = memoryEntry{weather: w, expires: m.now().Add(ttl)}
}

// Logger is the subset of a logger the server reports to.
type Logger interface {
	Printf(format string, args ...any)
}

// CachedWeather answers from cache and falls back to sunny when the
// lookup fails. Failed lookups are not cached.
type CachedWeather struct {
	lookup WeatherLookup
	cache  WeatherCache
	ttl    time.Duration
	logger Logger
}

// NewCachedWeather combines a lookup with a cache. cache may be nil.
func NewCachedWeather(lookup WeatherLookup, cache WeatherCache, ttl time.Duration, logger Logger) *CachedWeather {
	return &CachedWeather{lookup: lookup, cache: cache, ttl: ttl, logger: logger}
}

func (c *CachedWeather) Current(ctx context.Context, city string) recommend.Weather {
	if c.cache != nil {
		if w, ok := c.cache.Get(ctx, city); ok {
			return w
		}
	}

	w, err := c.lookup.Lookup(ctx, city)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("weather lookup for %q failed, assuming %s: %v", city, recommend.WeatherSunny, err)
		}
		return recommend.WeatherSunny
	}

	if c.cache != nil && c.ttl > 0 {
		c.cache.Set(ctx, city, w, c.ttl)
	}
	return w
}
