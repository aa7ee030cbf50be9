package serializer_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niksmo/product-feed/pkg/feed"
	"github.com/niksmo/product-feed/pkg/serializer"
)

func gunzipFile(t *testing.T, path string) []byte {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer r.Close()

	content, err := io.ReadAll(r)
	require.NoError(t, err)
	return content
}

func TestSerializeToFile(t *testing.T) {
	ps := []feed.Product{sampleProduct(), {}}

	t.Run("Plain", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feed.csv")

		csv := serializer.NewCSV()
		require.NoError(t, csv.SerializeToFile(ps, path, false))

		want, err := csv.SerializeMany(ps)
		require.NoError(t, err)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	})

	t.Run("Compressed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feed.csv.gz")

		csv := serializer.NewCSV()
		require.NoError(t, csv.SerializeToFile(ps, path, true))

		want, err := csv.SerializeMany(ps)
		require.NoError(t, err)

		assert.Equal(t, want, string(gunzipFile(t, path)))
	})

	t.Run("CompressedJSONLines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feed.jsonl.gz")

		jl := serializer.NewJSONLines()
		require.NoError(t, jl.SerializeToFile(ps, path, true))

		want, err := jl.SerializeMany(ps)
		require.NoError(t, err)

		assert.Equal(t, want, string(gunzipFile(t, path)))
	})

	t.Run("UnwritablePath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "feed.csv")

		err := serializer.NewCSV().SerializeToFile(ps, path, false)
		require.Error(t, err)
		assert.ErrorContains(t, err, path)
	})
}
