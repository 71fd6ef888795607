// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/markdown-server/internal/config"
	"github.com/pdiddy/markdown-server/internal/container"
	"github.com/pdiddy/markdown-server/internal/convert"
	"github.com/pdiddy/markdown-server/internal/logging"
	"github.com/pdiddy/markdown-server/internal/server"
	"github.com/pdiddy/markdown-server/pkg/types"
)

// shutdownGrace bounds how long in-flight conversions may drain after a
// termination signal.
const shutdownGrace = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the conversion HTTP server",
	Long: `Serve starts the HTTP server with the /, /health, /docs, and
/process_file endpoints. The conversion backend is either the markitdown
binary on PATH or the markitdown container image run via docker/podman.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log := logging.New(cfg.LogLevel)

	converter, err := buildConverter(cfg)
	if err != nil {
		return err
	}

	srv := server.New(cfg, converter, log, version)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: srv.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	log.Infof("Starting server on %s (backend=%s, max_file_size=%d, workers=%d)",
		cfg.Server.Addr(), cfg.Conversion.Backend, cfg.Upload.MaxFileSize, cfg.Server.Workers)
	if cfg.RateLimit.Enabled {
		log.Infof("Rate limiting enabled: %s per client", cfg.RateLimit.Limit)
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Infoln("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// buildConverter constructs the configured conversion backend.
func buildConverter(cfg *types.Config) (convert.Converter, error) {
	switch cfg.Conversion.Backend {
	case types.BackendMarkitdown:
		return convert.NewCommandConverter()
	case types.BackendContainer:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		return convert.NewMarkitdownConverter(rt, cfg.Conversion.MarkitdownImage)
	default:
		return nil, fmt.Errorf("unknown conversion backend %q", cfg.Conversion.Backend)
	}
}
