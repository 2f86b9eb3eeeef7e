package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every setting of the quiz client and the reference backend.
type Config struct {
	Client ClientConfig `yaml:"client"`
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
}

// ClientConfig configures the submission client and the result card.
type ClientConfig struct {
	BaseURL  string `yaml:"base_url"`
	Endpoint string `yaml:"endpoint"`
	// Timeout of "" or "0" leaves the transport default in place.
	Timeout   string `yaml:"timeout"`
	ImageBase string `yaml:"image_base"`
}

// ServerConfig configures the reference backend.
type ServerConfig struct {
	Addr          string `yaml:"addr"`
	ImageDir      string `yaml:"image_dir"`
	WeatherAPIKey string `yaml:"weather_api_key"`
	WeatherURL    string `yaml:"weather_url"`
	City          string `yaml:"city"`
	WeatherTTL    string `yaml:"weather_ttl"`
}

// RedisConfig configures the weather cache. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// StoreConfig configures the submission history database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LogConfig configures the diagnostic log file. An empty Path disables it.
type LogConfig struct {
	Path string `yaml:"path"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Client: ClientConfig{
			BaseURL:   "http://localhost:8080",
			Endpoint:  "/recommend",
			ImageBase: "/static/images/",
		},
		Server: ServerConfig{
			Addr:       ":8080",
			WeatherURL: "https://api.openweathermap.org/data/2.5/weather",
			City:       "Mexico City",
			WeatherTTL: "10m",
		},
	}
}

// Load builds a Config from defaults, then the YAML file at path (if
// path is non-empty), then a .env file and the process environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// A missing .env file is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Client.BaseURL, "ANTOJO_BASE_URL")
	setString(&cfg.Client.Endpoint, "ANTOJO_ENDPOINT")
	setString(&cfg.Client.Timeout, "ANTOJO_TIMEOUT")
	setString(&cfg.Client.ImageBase, "ANTOJO_IMAGE_BASE")

	if p := os.Getenv("PORT"); p != "" {
		cfg.Server.Addr = ":" + p
	}
	setString(&cfg.Server.Addr, "ANTOJO_ADDR")
	setString(&cfg.Server.ImageDir, "ANTOJO_IMAGE_DIR")
	setString(&cfg.Server.WeatherAPIKey, "WEATHER_API_KEY")
	setString(&cfg.Server.WeatherAPIKey, "ANTOJO_WEATHER_API_KEY")
	setString(&cfg.Server.WeatherURL, "ANTOJO_WEATHER_URL")
	setString(&cfg.Server.City, "ANTOJO_CITY")
	setString(&cfg.Server.WeatherTTL, "ANTOJO_WEATHER_TTL")

	setString(&cfg.Redis.Addr, "ANTOJO_REDIS_ADDR")
	setString(&cfg.Redis.Password, "ANTOJO_REDIS_PASSWORD")
	if v := os.Getenv("ANTOJO_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = n
		}
	}

	setString(&cfg.Store.Path, "ANTOJO_DB")
	setString(&cfg.Log.Path, "ANTOJO_LOG")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks that the client can build a request URL.
func (c Config) Validate() error {
	if c.Client.Endpoint == "" {
		return fmt.Errorf("client endpoint is required")
	}
	ep, err := url.Parse(c.Client.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Client.Endpoint, err)
	}
	if !ep.IsAbs() {
		base, err := url.Parse(c.Client.BaseURL)
		if err != nil || !base.IsAbs() {
			return fmt.Errorf("base url %q must be absolute when the endpoint is relative", c.Client.BaseURL)
		}
	}
	if c.Client.Timeout != "" {
		if _, err := time.ParseDuration(c.Client.Timeout); err != nil {
			return fmt.Errorf("invalid client timeout %q: %w", c.Client.Timeout, err)
		}
	}
	return nil
}

// ClientTimeout returns the parsed client timeout, zero when unset.
func (c Config) ClientTimeout() time.Duration {
	return Duration(c.Client.Timeout, 0)
}

// WeatherTTL returns the parsed weather cache TTL.
func (c Config) WeatherTTL() time.Duration {
	return Duration(c.Server.WeatherTTL, 10*time.Minute)
}

// Duration parses a duration string or returns the fallback if empty or invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
