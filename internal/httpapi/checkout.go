package httpapi

import (
	"net/http"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cart"
	"storefront-gateway/internal/checkout"
	"storefront-gateway/internal/session"
)

type checkoutFormResponse struct {
	Form    checkout.Form `json:"form"`
	Cart    *backend.Cart `json:"cart"`
	Summary cart.Summary  `json:"summary"`
}

// checkoutForm returns the form prefilled from the member with the cart it
// would order.
func (h *Handler) checkoutForm(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())

	c, err := h.carts.Get(r.Context(), s.Credentials())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	respond(w, http.StatusOK, checkoutFormResponse{
		Form:    checkout.Form{}.Prefill(s.User),
		Cart:    c,
		Summary: cart.Summarize(c),
	})
}

func (h *Handler) submitCheckout(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}

	out, err := h.checkout.Submit(r.Context(), credentials(r), form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondOutcome(w, out)
}

func (h *Handler) paymentSuccess(w http.ResponseWriter, r *http.Request) {
	respondOutcome(w, h.payments.Confirm(r.Context(), credentials(r), r.URL.Query()))
}

func (h *Handler) paymentFail(w http.ResponseWriter, r *http.Request) {
	respondOutcome(w, h.payments.Fail(r.Context(), r.URL.Query()))
}
