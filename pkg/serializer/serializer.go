// Package serializer renders product feed records into interchange
// formats. All serializers are stateless: one value may be reused and
// shared between goroutines, the only shared resource is the target
// file path of SerializeToFile.
package serializer

import "github.com/niksmo/product-feed/pkg/feed"

// Serializer is the capability shared by the text feed formats.
type Serializer interface {
	// Serialize renders a single record.
	Serialize(p feed.Product) (string, error)

	// SerializeMany renders a whole feed. The result carries no
	// trailing newline.
	SerializeMany(ps []feed.Product) (string, error)

	// SerializeToFile writes the SerializeMany output to path,
	// gzip-compressed when compress is true. A failed write may leave
	// a truncated file behind; cleanup is the caller's concern.
	SerializeToFile(ps []feed.Product, path string, compress bool) error
}
