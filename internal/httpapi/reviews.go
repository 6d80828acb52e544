package httpapi

import (
	"net/http"
	"net/url"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/review"

	"github.com/go-chi/chi/v5"
)

func reviewParams(q url.Values) backend.ReviewListParams {
	return backend.ReviewListParams{
		Page:    atoiOr(q.Get("page"), 1),
		PerPage: atoiOr(q.Get("per_page"), 10),
		Rating:  atoiOr(q.Get("rating"), 0),
		Sort:    q.Get("sort"),
	}
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	list, err := h.reviews.List(r.Context(), chi.URLParam(r, "slug"), reviewParams(r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, list)
}

func (h *Handler) reviewEligibility(w http.ResponseWriter, r *http.Request) {
	res, err := h.reviews.Eligibility(r.Context(), credentials(r), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var form review.Form
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}

	rv, err := h.reviews.Create(r.Context(), credentials(r), chi.URLParam(r, "slug"), form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, rv)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}
	var form review.Form
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}

	rv, err := h.reviews.Update(r.Context(), credentials(r), id, form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, rv)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}

	if err := h.reviews.Delete(r.Context(), credentials(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markReviewHelpful(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		badRequest(w)
		return
	}

	res, err := h.reviews.MarkHelpful(r.Context(), credentials(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) myReviews(w http.ResponseWriter, r *http.Request) {
	list, err := h.reviews.Mine(r.Context(), credentials(r), reviewParams(r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, list)
}
