package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) getForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.forms.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, form)
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	var values map[string]any
	if err := decode(r, &values); err != nil {
		badRequest(w)
		return
	}

	res, err := h.forms.Submit(r.Context(), credentials(r), currentUser(r), chi.URLParam(r, "slug"), values)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, res)
}
