package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/michoacana/antojo/internal/app"
	"github.com/michoacana/antojo/internal/logging"
	"github.com/michoacana/antojo/internal/recommend"
	"github.com/michoacana/antojo/internal/store"
)

// runApp loads config, builds the submission client and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "antojo.log")
	}
	logger, err := logging.Open(logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	defer logger.Close()

	client, err := recommend.NewClient(recommend.Config{
		BaseURL:  cfg.Client.BaseURL,
		Endpoint: cfg.Client.Endpoint,
		Timeout:  cfg.ClientTimeout(),
	}, recommend.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build client: %w", err)
	}

	// History is optional; the quiz works without it.
	var submitter recommend.Submitter = client
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: submission history unavailable:", err)
	} else {
		defer st.Close()
		submitter = recommend.WithRecording(client, st.SubmissionRepo(), client.URL(), logger)
	}

	imageBase := cfg.Client.ImageBase
	if imageBase != "" {
		if resolved, err := recommend.ResolveEndpoint(cfg.Client.BaseURL, imageBase); err == nil {
			imageBase = resolved
		}
	}

	logger.Printf("starting quiz against %s", client.URL())
	ctrl := app.NewController(app.Options{
		Submitter: submitter,
		ImageBase: imageBase,
		Logger:    logger,
		Context:   cmd.Context(),
	})
	return app.Run(ctrl)
}
