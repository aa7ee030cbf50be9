package schema

import (
	"fmt"
	"os"

	"github.com/hamba/avro/v2/ocf"

	"github.com/niksmo/product-feed/pkg/feed"
	"github.com/niksmo/product-feed/pkg/serializer"
)

// FeedWriter exports product records as an Avro object container
// file. It satisfies the same file-writing shape as the text
// serializers; compress selects the deflate codec instead of gzip,
// which is the container format's own compression channel.
type FeedWriter struct{}

func NewFeedWriter() FeedWriter { return FeedWriter{} }

func (FeedWriter) SerializeToFile(ps []feed.Product, path string, compress bool) (err error) {
	const op = "FeedWriter.SerializeToFile"

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: failed to open %s: %w", op, path, err)
	}
	defer func() {
		cerr := f.Close()
		if err == nil && cerr != nil {
			err = fmt.Errorf("%s: failed to close %s: %w", op, path, cerr)
		}
	}()

	codec := ocf.Null
	if compress {
		codec = ocf.Deflate
	}

	enc, err := ocf.NewEncoder(FeedRecordSchemaTextV1, f, ocf.WithCodec(codec))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range ps {
		if err := enc.Encode(serializer.NewRecord(p)); err != nil {
			return fmt.Errorf("%s: failed to write %s: %w", op, path, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: failed to write %s: %w", op, path, err)
	}
	return nil
}
