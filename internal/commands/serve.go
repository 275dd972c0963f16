package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/config"
	"github.com/spendlens-dev/spendlens/internal/server"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "path to spendlens.yaml")

	return cmd
}

func runServe(configPath string) error {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	applyEnvOverrides(cfg)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	srv := server.New(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// loadConfig reads the config file, falling back to defaults when the
// default file is absent. An explicit path that does not exist is an error.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == config.DefaultFile {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *config.Config) {
	if addr := os.Getenv("SPENDLENS_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if path := os.Getenv("SPENDLENS_STATEMENT"); path != "" {
		cfg.Statement.Path = path
	}
}
