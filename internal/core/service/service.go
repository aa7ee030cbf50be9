package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/product-feed/internal/core/port"
	"github.com/niksmo/product-feed/pkg/feed"
)

var _ port.ProductsExporter = (*Service)(nil)

type Service struct {
	feedWriter port.FeedFileWriter
}

func New(feedWriter port.FeedFileWriter) Service {
	return Service{feedWriter}
}

// ExportProducts renders the products through the configured feed
// writer and writes the result to path.
func (s Service) ExportProducts(
	ctx context.Context, ps []feed.Product, path string, compress bool,
) error {
	const op = "Service.ExportProducts"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("exporting products",
		"count", len(ps), "path", path, "compress", compress)

	if err := s.feedWriter.SerializeToFile(ps, path, compress); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("feed exported", "count", len(ps), "path", path)
	return nil
}
