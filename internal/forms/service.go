// Package forms serves backend-defined forms (contact, inquiry) and checks
// submissions against the form's own field definitions.
package forms

import (
	"context"
	"fmt"
	"strings"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cache"
	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/validation"

	"go.uber.org/zap"
)

const (
	msgInvalid      = "필수 항목을 확인해주세요."
	msgInvalidEmail = "올바른 이메일 형식이 아닙니다."
	msgSubmitted    = "문의가 성공적으로 접수되었습니다."
)

type Backend interface {
	GetForm(ctx context.Context, slug string) (*backend.Form, error)
	SubmitForm(ctx context.Context, cred backend.Credentials, slug string, data map[string]any) (*backend.FormSubmission, error)
}

// Result is what the visitor sees after a successful submission.
type Result struct {
	SubmissionID int64  `json:"submission_id"`
	Message      string `json:"message"`
}

type Service struct {
	backend Backend
	forms   *cache.Cache[string, *backend.Form]
}

func NewService(b Backend) *Service {
	return &Service{
		backend: b,
		forms:   cache.New[string, *backend.Form](32, cache.FormTTL),
	}
}

func (s *Service) Get(ctx context.Context, slug string) (*backend.Form, error) {
	f, _, err := s.forms.GetOrLoad(slug, func() (*backend.Form, error) {
		return s.backend.GetForm(ctx, slug)
	})
	return f, err
}

// Submit validates values against the form definition and forwards only the
// declared fields. A signed-in member is attached as member_id.
func (s *Service) Submit(ctx context.Context, cred backend.Credentials, user *backend.User, slug string, values map[string]any) (*Result, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitForm"),
		zap.String("form", slug),
	)

	form, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}

	data, fields := check(form.Fields, values)
	if len(fields) > 0 {
		return nil, &validation.Error{Message: msgInvalid, Fields: fields}
	}
	if user != nil && user.ID > 0 {
		data["member_id"] = user.ID
	}

	sub, err := s.backend.SubmitForm(ctx, cred, slug, data)
	if err != nil {
		log.Warn("form submission failed", zap.Error(err))
		return nil, err
	}

	log.Info("form submitted", zap.Int64("submission_id", sub.ID))

	msg := form.SuccessMessage
	if msg == "" {
		msg = msgSubmitted
	}
	return &Result{SubmissionID: sub.ID, Message: msg}, nil
}

func check(defs []backend.FormField, values map[string]any) (map[string]any, map[string]string) {
	data := make(map[string]any, len(defs))
	fields := map[string]string{}

	for _, def := range defs {
		v, present := values[def.Name]
		if str, ok := v.(string); ok {
			v = strings.TrimSpace(str)
		}
		empty := !present || v == nil || v == ""

		switch {
		case empty && def.Required:
			fields[def.Name] = fmt.Sprintf("%s은(는) 필수입니다.", def.Label)
		case empty:
		case def.Type == "email" && !validation.Var(v, "email"):
			fields[def.Name] = msgInvalidEmail
		default:
			data[def.Name] = v
		}
	}
	return data, fields
}
