package serializer

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// writeFeedFile writes content to path, gzip-compressed when compress
// is set. Open, write and close failures all surface to the caller
// with the target path; a failed write may leave a partial file.
func writeFeedFile(path string, content []byte, compress bool) (err error) {
	const op = "serializer.writeFeedFile"

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

	var w io.Writer = f
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(f)
		w = gz
	}

	if _, werr := w.Write(content); werr != nil {
		return fmt.Errorf("%s: failed to write %s: %w", op, path, werr)
	}

	if gz != nil {
		if cerr := gz.Close(); cerr != nil {
			return fmt.Errorf("%s: failed to write %s: %w", op, path, cerr)
		}
	}
	return nil
}
