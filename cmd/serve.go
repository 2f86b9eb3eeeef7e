package cmd

import (
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/michoacana/antojo/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recommendation backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var cache server.WeatherCache = server.NewMemoryWeatherCache()
		if cfg.Redis.Addr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
			}
			cache = server.NewRedisWeatherCache(rdb)
		}

		if cfg.Server.WeatherAPIKey == "" {
			log.Printf("WEATHER_API_KEY not set, weather defaults to soleado")
		}
		weather := server.NewCachedWeather(
			server.NewOpenWeatherMap(cfg.Server.WeatherAPIKey, cfg.Server.WeatherURL),
			cache,
			cfg.WeatherTTL(),
			log.Default(),
		)

		srv := server.New(server.Options{
			Addr:     cfg.Server.Addr,
			ImageDir: cfg.Server.ImageDir,
			City:     cfg.Server.City,
			Weather:  weather,
			Logger:   log.Default(),
		})
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PORT and ANTOJO_ADDR)")
}
