package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/niksmo/product-feed/config"
	"github.com/niksmo/product-feed/internal/adapter/manifest"
	"github.com/niksmo/product-feed/internal/core/port"
	"github.com/niksmo/product-feed/internal/core/service"
	"github.com/niksmo/product-feed/pkg/schema"
	"github.com/niksmo/product-feed/pkg/serializer"
)

type App struct {
	cfg      config.Config
	exporter port.ProductsExporter
}

func New(cfg config.Config) App {
	initLogger(cfg.SlogLevel())

	feedWriter := newFeedWriter(cfg.Format)
	exporter := service.New(feedWriter)

	return App{cfg: cfg, exporter: exporter}
}

func initLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func newFeedWriter(format string) port.FeedFileWriter {
	const op = "app.newFeedWriter"

	switch format {
	case config.FormatCSV:
		return serializer.NewCSV()
	case config.FormatJSONLines:
		return serializer.NewJSONLines()
	case config.FormatAvro:
		return schema.NewFeedWriter()
	default:
		fallDown(op, fmt.Errorf("unknown feed format: %q", format))
		return nil
	}
}

// Run loads the product manifest and exports it once.
func (app App) Run(ctx context.Context) error {
	const op = "App.Run"

	ps, err := manifest.Load(app.cfg.Manifest)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = app.exporter.ExportProducts(ctx, ps, app.cfg.Output, app.cfg.Compress)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
