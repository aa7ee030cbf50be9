package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/niksmo/product-feed/config"
	"github.com/niksmo/product-feed/internal/app"
)

func main() {
	sigCtx, closeApp := signalContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	feedApp := app.New(cfg)
	if err := feedApp.Run(sigCtx); err != nil {
		slog.Error("feed export failed", "err", err)
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
}
