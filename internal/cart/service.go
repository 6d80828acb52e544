package cart

import (
	"context"
	"fmt"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cache"
	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/product"

	"go.uber.org/zap"
)

// Backend is the cart slice of the remote API.
type Backend interface {
	GetCart(ctx context.Context, cred backend.Credentials) (*backend.Cart, error)
	AddToCart(ctx context.Context, cred backend.Credentials, req backend.AddToCartRequest) error
	UpdateCartItem(ctx context.Context, cred backend.Credentials, itemID int64, req backend.UpdateCartItemRequest) error
	RemoveCartItem(ctx context.Context, cred backend.Credentials, itemID int64) error
	ClearCart(ctx context.Context, cred backend.Credentials) error
}

// Service exposes cart intents. Every successful mutation drops the cached
// cart and returns the refetched server cart; totals are never computed here.
type Service interface {
	Get(ctx context.Context, cred backend.Credentials) (*backend.Cart, error)
	Add(ctx context.Context, cred backend.Credentials, sel *product.Selection) (*backend.Cart, error)
	UpdateQuantity(ctx context.Context, cred backend.Credentials, itemID int64, quantity int) (*backend.Cart, error)
	Remove(ctx context.Context, cred backend.Credentials, itemID int64) (*backend.Cart, error)
	Clear(ctx context.Context, cred backend.Credentials) (*backend.Cart, error)
	Invalidate(cred backend.Credentials)
}

type service struct {
	backend Backend
	cache   *cache.Cache[string, *backend.Cart]
}

func NewService(b Backend, c *cache.Cache[string, *backend.Cart]) Service {
	if c == nil {
		c = cache.New[string, *backend.Cart](1024, cache.CartTTL)
	}
	return &service{backend: b, cache: c}
}

func cacheKey(cred backend.Credentials) string {
	if cred.SessionID != "" {
		return "s:" + cred.SessionID
	}
	return "t:" + cred.Token
}

func (s *service) Get(ctx context.Context, cred backend.Credentials) (*backend.Cart, error) {
	c, _, err := s.cache.GetOrLoad(cacheKey(cred), func() (*backend.Cart, error) {
		return s.backend.GetCart(ctx, cred)
	})
	if err != nil {
		logger.FromCtx(ctx).Warn("get cart failed",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		return nil, err
	}
	return c, nil
}

// Add puts the selection into the cart. Option products need a resolved
// variant and nothing out of stock is sent to the backend.
func (s *service) Add(ctx context.Context, cred backend.Credentials, sel *product.Selection) (*backend.Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
	)

	p := sel.Product()
	view := sel.Resolve()

	req := backend.AddToCartRequest{ProductID: p.ID, Quantity: sel.Quantity()}
	if p.HasOptions {
		if view.Variant == nil {
			log.Debug("add rejected: no variant resolved",
				zap.Int64("product_id", p.ID),
				zap.String("reason", view.MatchError),
			)
			return nil, ErrSelectOptions
		}
		id := view.Variant.ID
		req.VariantID = &id
	}
	if !view.IsInStock {
		log.Debug("add rejected: out of stock", zap.Int64("product_id", p.ID))
		return nil, ErrOutOfStock
	}

	if err := s.backend.AddToCart(ctx, cred, req); err != nil {
		log.Error("add to cart failed", zap.Int64("product_id", p.ID), zap.Error(err))
		return nil, err
	}

	log.Info("item added to cart",
		zap.Int64("product_id", p.ID),
		zap.Int("quantity", req.Quantity),
	)
	return s.refetch(ctx, cred)
}

func (s *service) UpdateQuantity(ctx context.Context, cred backend.Credentials, itemID int64, quantity int) (*backend.Cart, error) {
	if itemID <= 0 {
		return nil, ErrInvalidItem
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	err := s.backend.UpdateCartItem(ctx, cred, itemID, backend.UpdateCartItemRequest{Quantity: quantity})
	if err != nil {
		return nil, s.mutationFailed(ctx, "UpdateCartItem", itemID, err)
	}
	return s.refetch(ctx, cred)
}

func (s *service) Remove(ctx context.Context, cred backend.Credentials, itemID int64) (*backend.Cart, error) {
	if itemID <= 0 {
		return nil, ErrInvalidItem
	}

	if err := s.backend.RemoveCartItem(ctx, cred, itemID); err != nil {
		return nil, s.mutationFailed(ctx, "RemoveCartItem", itemID, err)
	}
	return s.refetch(ctx, cred)
}

func (s *service) Clear(ctx context.Context, cred backend.Credentials) (*backend.Cart, error) {
	if err := s.backend.ClearCart(ctx, cred); err != nil {
		return nil, s.mutationFailed(ctx, "ClearCart", 0, err)
	}
	return s.refetch(ctx, cred)
}

func (s *service) Invalidate(cred backend.Credentials) {
	s.cache.Invalidate(cacheKey(cred))
}

func (s *service) refetch(ctx context.Context, cred backend.Credentials) (*backend.Cart, error) {
	s.Invalidate(cred)
	c, err := s.Get(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("refetch cart: %w", err)
	}
	return c, nil
}

func (s *service) mutationFailed(ctx context.Context, method string, itemID int64, err error) error {
	logger.FromCtx(ctx).Error("cart mutation failed",
		zap.String("layer", "service"),
		zap.String("method", method),
		zap.Int64("item_id", itemID),
		zap.Error(err),
	)
	return err
}
