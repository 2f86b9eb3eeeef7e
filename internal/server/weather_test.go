package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michoacana/antojo/internal/recommend"
)

func TestCategorize(t *testing.T) {
	tests := map[string]recommend.Weather{
		"Clouds":       recommend.WeatherCloudy,
		"Rain":         recommend.WeatherRainy,
		"Clear":        recommend.WeatherSunny,
		"Thunderstorm": recommend.WeatherSunny,
		"":             recommend.WeatherSunny,
	}
	for in, want := range tests {
		assert.Equal(t, want, Categorize(in), "main=%q", in)
	}
}

func TestOpenWeatherMapLookup(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Mexico City", r.URL.Query().Get("q"))
		assert.Equal(t, "k", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{"cod":200,"weather":[{"main":"Rain","description":"light rain"}]}`))
	}))
	defer ts.Close()

	w, err := NewOpenWeatherMap("k", ts.URL).Lookup(context.Background(), "Mexico City")
	require.NoError(t, err)
	assert.Equal(t, recommend.WeatherRainy, w)
}

func TestOpenWeatherMapErrorCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer ts.Close()

	_, err := NewOpenWeatherMap("k", ts.URL).Lookup(context.Background(), "Atlantis")
	assert.Error(t, err)
}

func TestOpenWeatherMapNoKey(t *testing.T) {
	_, err := NewOpenWeatherMap("", "http://127.0.0.1:1").Lookup(context.Background(), "x")
	assert.Error(t, err)
}

type countingLookup struct {
	weather recommend.Weather
	err     error
	calls   int
}

func (c *countingLookup) Lookup(context.Context, string) (recommend.Weather, error) {
	c.calls++
	return c.weather, c.err
}

func TestCachedWeatherRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	lookup := &countingLookup{weather: recommend.WeatherCloudy}
	cw := NewCachedWeather(lookup, NewRedisWeatherCache(client), time.Minute, nil)
	ctx := context.Background()

	assert.Equal(t, recommend.WeatherCloudy, cw.Current(ctx, "Mexico City"))
	assert.Equal(t, recommend.WeatherCloudy, cw.Current(ctx, "Mexico City"))
	assert.Equal(t, 1, lookup.calls)
	if !mr.Exists("antojo:weather:mexico city") {
		t.Fatalf("expected redis key to be set")
	}

	mr.FastForward(2 * time.Minute)
	cw.Current(ctx, "Mexico City")
	assert.Equal(t, 2, lookup.calls)
}

func TestCachedWeatherFailureNotCached(t *testing.T) {
	lookup := &countingLookup{err: errors.New("timeout")}
	cache := NewMemoryWeatherCache()
	cw := NewCachedWeather(lookup, cache, time.Minute, discard{})
	ctx := context.Background()

	assert.Equal(t, recommend.WeatherSunny, cw.Current(ctx, "x"))
	assert.Equal(t, recommend.WeatherSunny, cw.Current(ctx, "x"))
	assert.Equal(t, 2, lookup.calls)
	_, ok := cache.Get(ctx, "x")
	assert.False(t, ok)
}

func TestMemoryWeatherCacheExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryWeatherCache()
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	cache.Set(ctx, "CDMX", recommend.WeatherRainy, time.Minute)
	w, ok := cache.Get(ctx, "cdmx")
	require.True(t, ok)
	assert.Equal(t, recommend.WeatherRainy, w)

	now = now.Add(time.Minute)
	_, ok = cache.Get(ctx, "cdmx")
	assert.False(t, ok)
}
