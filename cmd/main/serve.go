package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	serverhttp "dogbreed-service/server/http"
)

const (
	shutdownTimeout = 10 * time.Second
	reloadDebounce  = 500 * time.Millisecond
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	e, err := setup(true)
	if err != nil {
		return err
	}
	logger := e.logger

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if e.cfg.Catalog.Watch {
		if err := e.catalogs.Watch(ctx, e.cfg.Catalog.Path, reloadDebounce); err != nil {
			logger.Warn().Err(err).Msg("catalog watch disabled")
		}
	}

	r := serverhttp.NewRouter(e.cfg, e.catalogs, e.aliases, logger)
	srv := &http.Server{
		Addr:              e.cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().
		Str("addr", e.cfg.Addr()).
		Int("breeds", e.catalogs.Current().Len()).
		Int("aliases", e.aliases.Len()).
		Msg("server starting")

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			logger.Error().Err(err).Msg("listen")
			return err
		}
	case <-ctx.Done():
	}

	// graceful shutdown
	logger.Info().Msg("server shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Warn().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("bye")
	return nil
}
