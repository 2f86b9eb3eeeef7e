package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/michoacana/antojo/internal/recommend"
)

// DefaultWeatherURL is the OpenWeatherMap current weather endpoint.
const DefaultWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// WeatherLookup fetches the current weather category for a city.
type WeatherLookup interface {
	Lookup(ctx context.Context, city string) (recommend.Weather, error)
}

// WeatherSource always answers with a category, falling back to sunny.
type WeatherSource interface {
	Current(ctx context.Context, city string) recommend.Weather
}

// OpenWeatherMap queries the OpenWeatherMap current weather API.
type OpenWeatherMap struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMap creates a client with a 5s request timeout.
func NewOpenWeatherMap(apiKey, baseURL string) *OpenWeatherMap {
	if baseURL == "" {
		baseURL = DefaultWeatherURL
	}
	return &OpenWeatherMap{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type owmResponse struct {
	// cod is a number on success and a string on errors.
	Cod     json.RawMessage `json:"cod"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

func (o *OpenWeatherMap) Lookup(ctx context.Context, city string) (recommend.Weather, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("weather api key not configured")
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", o.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build weather request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	var body owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode weather response: %w", err)
	}
	if cod := strings.Trim(string(body.Cod), `"`); cod != "200" {
		return "", fmt.Errorf("weather api returned cod %s", cod)
	}
	if len(body.Weather) == 0 {
		return recommend.WeatherSunny, nil
	}
	return Categorize(body.Weather[0].Main), nil
}

// Categorize maps an OpenWeatherMap condition to a weather category.
func Categorize(main string) recommend.Weather {
	m := strings.ToLower(main)
	switch {
	case strings.Contains(m, "cloud"):
		return recommend.WeatherCloudy
	case strings.Contains(m, "rain"):
		return recommend.WeatherRainy
	case strings.Contains(m, "clear"):
		return recommend.WeatherSunny
	}
	return recommend.WeatherSunny
}
