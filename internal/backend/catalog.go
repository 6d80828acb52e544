package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// GetProduct returns the raw product document; the product package owns the
// schema adaptation.
func (c *Client) GetProduct(ctx context.Context, slug string) (json.RawMessage, error) {
	var raw json.RawMessage
	if _, err := c.do(ctx, "catalog.get_product", http.MethodGet, "/shop/products/"+url.PathEscape(slug), Credentials{}, nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) ListProducts(ctx context.Context, params ProductListParams) ([]json.RawMessage, *PageMeta, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Featured {
		q.Set("is_featured", "1")
	}

	var raws []json.RawMessage
	env, err := c.do(ctx, "catalog.list_products", http.MethodGet, "/shop/products", Credentials{}, q, nil, &raws)
	if err != nil {
		return nil, nil, err
	}
	return raws, env.Meta, nil
}
