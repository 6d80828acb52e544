package product

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetProduct(ctx context.Context, slug string) (json.RawMessage, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockCatalog) ListProducts(ctx context.Context, params backend.ProductListParams) ([]json.RawMessage, *backend.PageMeta, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]json.RawMessage), args.Get(1).(*backend.PageMeta), args.Error(2)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("CachesDecodedProduct", func(t *testing.T) {
		catalog := new(MockCatalog)
		svc := NewService(catalog, cache.New[string, *Product](8, time.Minute))

		catalog.On("GetProduct", ctx, "tee").Return(json.RawMessage(productV1), nil).Once()

		p, err := svc.Get(ctx, "tee")
		require.NoError(t, err)
		assert.Equal(t, int64(10), p.ID)

		again, err := svc.Get(ctx, "tee")
		require.NoError(t, err)
		assert.Same(t, p, again)

		catalog.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		catalog := new(MockCatalog)
		svc := NewService(catalog, nil)

		notFound := &backend.APIError{Operation: "catalog.get_product", Status: 404}
		catalog.On("GetProduct", ctx, "missing").Return(nil, notFound).Twice()

		_, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, backend.ErrNotFound)

		_, err = svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, backend.ErrNotFound, "errors are not cached")

		catalog.AssertExpectations(t)
	})

	t.Run("InvalidDocument", func(t *testing.T) {
		catalog := new(MockCatalog)
		svc := NewService(catalog, nil)

		catalog.On("GetProduct", ctx, "bad").Return(json.RawMessage(`{"id": 1}`), nil)

		_, err := svc.Get(ctx, "bad")
		assert.ErrorIs(t, err, ErrUnsupportedSchema)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("NormalizesParamsAndSkipsMalformed", func(t *testing.T) {
		catalog := new(MockCatalog)
		svc := NewService(catalog, nil)

		meta := &backend.PageMeta{CurrentPage: 1, LastPage: 1, PerPage: 100, Total: 3}
		raws := []json.RawMessage{
			json.RawMessage(productV1),
			json.RawMessage(`{"id": 99}`),
			json.RawMessage(`{"id": 98, "price": 10000, "attributes": [{"name": "Size", "values": [{"value": "S"}]}]}`),
			json.RawMessage(productV2),
		}
		catalog.On("ListProducts", ctx, backend.ProductListParams{Page: 1, PerPage: 100, Search: "t"}).
			Return(raws, meta, nil)

		res, err := svc.List(ctx, backend.ProductListParams{PerPage: 500, Search: "t"})
		require.NoError(t, err)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "tee", res.Items[0].Slug)
		assert.Equal(t, "hoodie", res.Items[1].Slug)
		assert.Equal(t, meta, res.Meta)
	})

	t.Run("BackendError", func(t *testing.T) {
		catalog := new(MockCatalog)
		svc := NewService(catalog, nil)

		catalog.On("ListProducts", ctx, mock.Anything).Return(nil, nil, errors.New("timeout"))

		res, err := svc.List(ctx, backend.ProductListParams{})
		assert.Error(t, err)
		assert.Nil(t, res)
	})
}
