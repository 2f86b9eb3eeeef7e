package cmd

import (
	"github.com/spf13/cobra"

	"github.com/michoacana/antojo/internal/config"
	"github.com/michoacana/antojo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "antojo",
	Short: "Find today's antojo",
	Long:  "Antojo asks four quick questions and recommends a paleta, helado, agua or especialidad for today's weather.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ANTOJO_DB env var)")
	rootCmd.PersistentFlags().String("endpoint", "", "Recommendation endpoint, a path on the base URL or an absolute URL")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config and applies the
// flag overrides on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if ep, _ := cmd.Flags().GetString("endpoint"); ep != "" {
		cfg.Client.Endpoint = ep
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Store.Path = db
	}
	return cfg, nil
}

// resolveDBPath returns the database path from --db or the config
// (highest priority), then ANTOJO_DB env var, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if p := cfg.Store.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
