package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cart"
	"storefront-gateway/internal/checkout"
	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/order"
	"storefront-gateway/internal/product"
	"storefront-gateway/internal/session"
	"storefront-gateway/internal/validation"

	"go.uber.org/zap"
)

const (
	msgBadRequest     = "요청 형식이 올바르지 않습니다."
	msgLoginRequired  = "로그인이 필요합니다."
	msgNotFound       = "요청한 정보를 찾을 수 없습니다."
	msgProductBroken  = "상품 정보를 불러오지 못했습니다."
	msgBackendFailed  = "요청을 처리하지 못했습니다. 잠시 후 다시 시도해주세요."
	msgSubmitInFlight = "주문을 처리하고 있습니다. 잠시만 기다려주세요."
)

type errorBody struct {
	Error    string            `json:"error"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func badRequest(w http.ResponseWriter) {
	respond(w, http.StatusBadRequest, errorBody{Error: "bad_request", Message: msgBadRequest})
}

// outcomeBody is the wire form of a checkout or payment outcome.
type outcomeBody struct {
	State  checkout.State   `json:"state"`
	Result checkout.Outcome `json:"result"`
}

func respondOutcome(w http.ResponseWriter, out checkout.Outcome) {
	status := http.StatusOK
	if _, ok := out.(checkout.Invalid); ok {
		status = http.StatusUnprocessableEntity
	}
	respond(w, status, outcomeBody{State: out.State(), Result: out})
}

// fail maps err onto the error taxonomy: local validation, authentication,
// missing resources, remote data and remote failures.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromCtx(r.Context()).With(zap.String("layer", "httpapi"))

	var verr *validation.Error
	var apiErr *backend.APIError

	switch {
	case errors.As(err, &verr):
		respond(w, http.StatusUnprocessableEntity, errorBody{Error: "invalid", Message: verr.Message, Fields: verr.Fields})

	case errors.Is(err, cart.ErrSelectOptions), errors.Is(err, cart.ErrOutOfStock), errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrNotCancellable):
		respond(w, http.StatusUnprocessableEntity, errorBody{Error: "invalid", Message: err.Error()})

	case errors.Is(err, product.ErrUnknownOption), errors.Is(err, cart.ErrInvalidItem):
		badRequest(w)

	case errors.Is(err, checkout.ErrSubmitInProgress):
		respond(w, http.StatusConflict, errorBody{Error: "in_progress", Message: msgSubmitInFlight})

	case errors.Is(err, backend.ErrUnauthorized), errors.Is(err, session.ErrUnauthenticated):
		if s := session.FromContext(r.Context()); s.Authenticated() {
			if ferr := h.sessions.Forget(r.Context(), s); ferr != nil {
				log.Warn("failed to drop rejected session", zap.Error(ferr))
			}
			h.sessions.ClearCookie(w)
		}
		respond(w, http.StatusUnauthorized, errorBody{Error: "unauthenticated", Message: msgLoginRequired, Redirect: "/login"})

	case errors.Is(err, backend.ErrNotFound):
		respond(w, http.StatusNotFound, errorBody{Error: "not_found", Message: backend.Message(err, msgNotFound)})

	case errors.Is(err, product.ErrInvalidVariant), errors.Is(err, product.ErrUnsupportedSchema):
		log.Error("backend sent malformed product", zap.Error(err))
		respond(w, http.StatusBadGateway, errorBody{Error: "remote_data", Message: msgProductBroken})

	case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
		respond(w, apiErr.Status, errorBody{Error: "rejected", Message: backend.Message(err, msgBackendFailed)})

	default:
		log.Error("request failed", zap.Error(err))
		respond(w, http.StatusBadGateway, errorBody{Error: "backend_unavailable", Message: backend.Message(err, msgBackendFailed)})
	}
}
