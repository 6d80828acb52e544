package httpapi

import (
	"net/http"
	"strconv"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cart"
	"storefront-gateway/internal/product"

	"github.com/go-chi/chi/v5"
)

type cartResponse struct {
	Cart    *backend.Cart `json:"cart"`
	Summary cart.Summary  `json:"summary"`
}

type addCartItemRequest struct {
	ProductSlug string            `json:"product_slug"`
	Options     map[string]string `json:"options"`
	Quantity    int               `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func respondCart(w http.ResponseWriter, c *backend.Cart) {
	respond(w, http.StatusOK, cartResponse{Cart: c, Summary: cart.Summarize(c)})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.carts.Get(r.Context(), credentials(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondCart(w, c)
}

// addCartItem resolves the selection against the current product data before
// the cart service's guard sees it.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decode(r, &req); err != nil || req.ProductSlug == "" {
		badRequest(w)
		return
	}

	p, err := h.products.Get(r.Context(), req.ProductSlug)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	sel, err := product.SelectionFrom(p, req.Options, req.Quantity)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	c, err := h.carts.Add(r.Context(), credentials(r), sel)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondCart(w, c)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}

	var req updateCartItemRequest
	if err := decode(r, &req); err != nil {
		badRequest(w)
		return
	}

	c, err := h.carts.UpdateQuantity(r.Context(), credentials(r), id, req.Quantity)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondCart(w, c)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}

	c, err := h.carts.Remove(r.Context(), credentials(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondCart(w, c)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.carts.Clear(r.Context(), credentials(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondCart(w, c)
}

func itemID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
