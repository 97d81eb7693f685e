package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shanyraq/internal/config"
	"shanyraq/internal/middleware"
	"shanyraq/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		middleware.Logger.Error("Failed to load config", "error", err.Error())
		os.Exit(1)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		middleware.Logger.Error("Failed to initialize server", "error", err.Error())
		os.Exit(1)
	}

	// Run the server in a goroutine so shutdown signals can be handled
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			middleware.Logger.Error("Server error", "error", err.Error())
			os.Exit(1)
		}
	case sig := <-quit:
		middleware.Logger.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		middleware.Logger.Error("Shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
