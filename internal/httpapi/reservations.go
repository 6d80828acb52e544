package httpapi

import (
	"net/http"
	"net/url"
	"strconv"

	"storefront-gateway/internal/reservation"

	"github.com/go-chi/chi/v5"
)

type cancelReservationRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) reservationSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.reservations.Settings(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, settings)
}

func (h *Handler) reservationServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.reservations.Services(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, services)
}

func (h *Handler) reservationStaff(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := optionalID(r.URL.Query(), "service_id")
	if !ok {
		badRequest(w)
		return
	}

	staff, err := h.reservations.Staff(r.Context(), serviceID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, staff)
}

func (h *Handler) availableDates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	staffID, ok := optionalID(q, "staff_id")
	if !ok {
		badRequest(w)
		return
	}

	dates, err := h.reservations.AvailableDates(r.Context(), int64(atoiOr(q.Get("service_id"), 0)), staffID, q.Get("month"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, dates)
}

func (h *Handler) availableSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	staffID, ok := optionalID(q, "staff_id")
	if !ok {
		badRequest(w)
		return
	}

	slots, err := h.reservations.AvailableSlots(r.Context(), int64(atoiOr(q.Get("service_id"), 0)), staffID, q.Get("date"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, slots)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var form reservation.Form
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}

	res, err := h.reservations.Create(r.Context(), credentials(r), form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, res)
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	list, err := h.reservations.List(r.Context(), credentials(r), r.URL.Query().Get("status"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, list)
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	var req cancelReservationRequest
	if r.ContentLength > 0 {
		if err := decode(r, &req); err != nil {
			badRequest(w)
			return
		}
	}

	res, err := h.reservations.Cancel(r.Context(), credentials(r), chi.URLParam(r, "number"), req.Reason)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, res)
}

// optionalID reads an optional positive id; ok is false only for a value
// that is present and malformed.
func optionalID(q url.Values, key string) (*int64, bool) {
	raw := q.Get(key)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}
