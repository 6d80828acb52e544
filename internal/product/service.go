package product

import (
	"context"
	"encoding/json"
	"time"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cache"
	"storefront-gateway/internal/logger"

	"go.uber.org/zap"
)

// Catalog is the part of the backend client the product service reads from.
type Catalog interface {
	GetProduct(ctx context.Context, slug string) (json.RawMessage, error)
	ListProducts(ctx context.Context, params backend.ProductListParams) ([]json.RawMessage, *backend.PageMeta, error)
}

type Service interface {
	Get(ctx context.Context, slug string) (*Product, error)
	List(ctx context.Context, params backend.ProductListParams) (*ListResult, error)
}

type ListResult struct {
	Items []Summary         `json:"items"`
	Meta  *backend.PageMeta `json:"meta,omitempty"`
}

type service struct {
	catalog Catalog
	cache   *cache.Cache[string, *Product]
}

func NewService(catalog Catalog, c *cache.Cache[string, *Product]) Service {
	if c == nil {
		c = cache.New[string, *Product](256, cache.ProductTTL)
	}
	return &service{catalog: catalog, cache: c}
}

func (s *service) Get(ctx context.Context, slug string) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProduct"),
		zap.String("slug", slug),
	)

	p, hit, err := s.cache.GetOrLoad(slug, func() (*Product, error) {
		raw, err := s.catalog.GetProduct(ctx, slug)
		if err != nil {
			return nil, err
		}
		return Decode(raw)
	})
	if err != nil {
		log.Warn("get product failed", zap.Error(err))
		return nil, err
	}

	log.Debug("get product success", zap.Bool("cache_hit", hit))
	return p, nil
}

func (s *service) List(ctx context.Context, params backend.ProductListParams) (*ListResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	start := time.Now()

	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PerPage <= 0 {
		params.PerPage = 20
	} else if params.PerPage > 100 {
		params.PerPage = 100
	}

	raws, meta, err := s.catalog.ListProducts(ctx, params)
	if err != nil {
		log.Error("failed to fetch product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	items := make([]Summary, 0, len(raws))
	for _, raw := range raws {
		p, err := Decode(raw)
		if err != nil {
			log.Warn("skipping malformed product", zap.Error(err))
			continue
		}
		items = append(items, p.Summary())
	}

	log.Info("get product list success",
		zap.Int("count", len(items)),
		zap.Int("page", params.Page),
		zap.Duration("duration", time.Since(start)),
	)

	return &ListResult{Items: items, Meta: meta}, nil
}
