package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/session"
	"storefront-gateway/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgLoginIncomplete    = "이메일과 비밀번호를 입력해주세요."
	msgRegisterIncomplete = "회원가입 정보를 확인해주세요."
)

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerForm struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

var authMessages = validation.Messages{
	"name":                  "이름을 입력해주세요.",
	"email.required":        "이메일을 입력해주세요.",
	"email.email":           "올바른 이메일 형식이 아닙니다.",
	"password.required":     "비밀번호를 입력해주세요.",
	"password.min":          "비밀번호는 8자 이상이어야 합니다.",
	"password_confirmation": "비밀번호가 일치하지 않습니다.",
}

type sessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *backend.User `json:"user,omitempty"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var form loginForm
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}
	form.Email = strings.TrimSpace(form.Email)
	if err := validation.Check(form, msgLoginIncomplete, authMessages); err != nil {
		h.fail(w, r, err)
		return
	}

	s, err := h.sessions.Login(r.Context(), session.FromContext(r.Context()), backend.LoginRequest{
		Email:    form.Email,
		Password: form.Password,
	})
	h.started(w, r, s, err)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var form registerForm
	if err := decode(r, &form); err != nil {
		badRequest(w)
		return
	}
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if err := validation.Check(form, msgRegisterIncomplete, authMessages); err != nil {
		h.fail(w, r, err)
		return
	}

	s, err := h.sessions.Register(r.Context(), session.FromContext(r.Context()), backend.RegisterRequest{
		Name:                 form.Name,
		Email:                form.Email,
		Password:             form.Password,
		PasswordConfirmation: form.PasswordConfirmation,
	})
	h.started(w, r, s, err)
}

func (h *Handler) socialCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		badRequest(w)
		return
	}

	s, err := h.sessions.SocialLogin(r.Context(), session.FromContext(r.Context()), chi.URLParam(r, "provider"), code)
	h.started(w, r, s, err)
}

func (h *Handler) started(w http.ResponseWriter, r *http.Request, s *session.Session, err error) {
	if err != nil {
		// wrong credentials, not an expired session
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			respond(w, http.StatusUnauthorized, errorBody{Error: "rejected", Message: backend.Message(err, msgLoginRequired)})
			return
		}
		h.fail(w, r, err)
		return
	}
	h.sessions.SetCookie(w, s)
	respond(w, http.StatusOK, sessionResponse{Authenticated: true, User: s.User})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context(), session.FromContext(r.Context())); err != nil {
		logger.FromCtx(r.Context()).Error("logout failed", zap.String("layer", "httpapi"), zap.Error(err))
	}
	h.sessions.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if !s.Authenticated() {
		respond(w, http.StatusOK, sessionResponse{})
		return
	}
	respond(w, http.StatusOK, sessionResponse{Authenticated: true, User: s.User})
}
