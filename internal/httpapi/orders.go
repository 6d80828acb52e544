package httpapi

import (
	"net/http"
	"strconv"

	"storefront-gateway/internal/backend"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.orders.List(r.Context(), credentials(r), backend.OrderListParams{
		Page:    atoiOr(q.Get("page"), 1),
		PerPage: atoiOr(q.Get("per_page"), 10),
		Status:  q.Get("status"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, list)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Get(r.Context(), credentials(r), chi.URLParam(r, "ref"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(w)
		return
	}

	o, err := h.orders.Cancel(r.Context(), credentials(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, o)
}
