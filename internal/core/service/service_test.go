package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/niksmo/product-feed/internal/core/service"
	"github.com/niksmo/product-feed/pkg/feed"
)

type MockFeedWriter struct {
	mock.Mock
}

func (m *MockFeedWriter) SerializeToFile(
	ps []feed.Product, path string, compress bool,
) error {
	args := m.Called(ps, path, compress)
	return args.Error(0)
}

func TestExportProducts(t *testing.T) {
	ps := []feed.Product{{}, {}}

	t.Run("WritesFeed", func(t *testing.T) {
		feedWriter := new(MockFeedWriter)
		feedWriter.On("SerializeToFile", ps, "feed.csv", true).Return(nil)

		s := service.New(feedWriter)
		err := s.ExportProducts(t.Context(), ps, "feed.csv", true)
		require.NoError(t, err)

		feedWriter.AssertExpectations(t)
	})

	t.Run("WriteFailureSurfaces", func(t *testing.T) {
		feedWriter := new(MockFeedWriter)
		feedWriter.On("SerializeToFile", ps, "feed.csv", false).
			Return(assert.AnError)

		s := service.New(feedWriter)
		err := s.ExportProducts(t.Context(), ps, "feed.csv", false)
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.ErrorContains(t, err, "Service.ExportProducts")
	})

	t.Run("CancelledContext", func(t *testing.T) {
		feedWriter := new(MockFeedWriter)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		s := service.New(feedWriter)
		err := s.ExportProducts(ctx, ps, "feed.csv", false)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)

		feedWriter.AssertNotCalled(t, "SerializeToFile")
	})
}
