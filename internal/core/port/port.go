package port

import (
	"context"

	"github.com/niksmo/product-feed/pkg/feed"
)

// FeedFileWriter is the outbound port every feed format satisfies:
// the CSV and JSON Lines serializers and the Avro container writer.
type FeedFileWriter interface {
	SerializeToFile(ps []feed.Product, path string, compress bool) error
}

// ProductsExporter is the inbound port of the export service.
type ProductsExporter interface {
	ExportProducts(ctx context.Context, ps []feed.Product, path string, compress bool) error
}
