package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/product"

	"github.com/go-chi/chi/v5"
)

type productResponse struct {
	Product *product.Product `json:"product"`
	View    product.View     `json:"view"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := backend.ProductListParams{
		Page:     atoiOr(q.Get("page"), 1),
		PerPage:  atoiOr(q.Get("per_page"), 0),
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Featured: q.Get("featured") == "true",
	}

	res, err := h.products.List(r.Context(), params)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, res)
}

// getProduct returns the product with its resolved selection view. Options
// arrive as repeated option=axis:value pairs.
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	q := r.URL.Query()
	choices, ok := parseOptions(q["option"])
	if !ok {
		badRequest(w)
		return
	}

	sel, err := product.SelectionFrom(p, choices, atoiOr(q.Get("quantity"), 0))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, productResponse{Product: p, View: sel.Resolve()})
}

func parseOptions(pairs []string) (product.Selected, bool) {
	choices := product.Selected{}
	for _, pair := range pairs {
		axis, value, found := strings.Cut(pair, ":")
		if !found || axis == "" {
			return nil, false
		}
		choices[axis] = value
	}
	return choices, true
}

func atoiOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
