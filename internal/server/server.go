// Package server boots the application: configuration, database, cache,
// storage, then the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/bholemart/config"
	"github.com/shashiranjanraj/bholemart/internal/kernel"
	"github.com/shashiranjanraj/bholemart/pkg/cache"
	"github.com/shashiranjanraj/bholemart/pkg/database"
	"github.com/shashiranjanraj/bholemart/pkg/logger"
	"github.com/shashiranjanraj/bholemart/pkg/storage"
)

// Start brings up every subsystem and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init()

	if err := database.Connect(); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	// Redis is optional: sessions fall back to the in-process store and
	// the catalogue cache becomes a no-op.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, using in-process fallbacks", "error", err)
	}

	storage.Connect()

	srv := &http.Server{
		Addr:         ":" + config.AppPort(),
		Handler:      kernel.NewHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("bholemart listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
