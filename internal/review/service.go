// Package review handles product reviews: listing, eligibility and the
// member's own reviews.
package review

import (
	"context"
	"strings"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/validation"

	"go.uber.org/zap"
)

const (
	defaultPerPage = 10
	maxPerPage     = 50

	msgInvalid = "리뷰 내용을 확인해주세요."

	// ReasonLoginRequired is reported to anonymous visitors without asking
	// the backend.
	ReasonLoginRequired = "login_required"
)

type Backend interface {
	ProductReviews(ctx context.Context, slug string, params backend.ReviewListParams) (*backend.ReviewList, error)
	CanReview(ctx context.Context, cred backend.Credentials, slug string) (*backend.ReviewEligibility, error)
	CreateReview(ctx context.Context, cred backend.Credentials, slug string, req backend.ReviewRequest) (*backend.Review, error)
	UpdateReview(ctx context.Context, cred backend.Credentials, id int64, req backend.ReviewRequest) (*backend.Review, error)
	DeleteReview(ctx context.Context, cred backend.Credentials, id int64) error
	MarkReviewHelpful(ctx context.Context, cred backend.Credentials, id int64) (*backend.HelpfulResult, error)
	MyReviews(ctx context.Context, cred backend.Credentials, params backend.ReviewListParams) ([]backend.Review, *backend.PageMeta, error)
}

type Form struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Title   string `json:"title,omitempty" validate:"max=100"`
	Content string `json:"content" validate:"required,max=2000"`
}

var formMessages = validation.Messages{
	"rating":           "평점을 선택해주세요",
	"title":            "제목은 100자 이내로 입력해주세요.",
	"content.required": "리뷰 내용을 입력해주세요",
	"content.max":      "리뷰는 2000자 이내로 입력해주세요.",
}

func (f Form) request() (backend.ReviewRequest, error) {
	f.Title = strings.TrimSpace(f.Title)
	f.Content = strings.TrimSpace(f.Content)
	if err := validation.Check(f, msgInvalid, formMessages); err != nil {
		return backend.ReviewRequest{}, err
	}
	return backend.ReviewRequest{Rating: f.Rating, Title: f.Title, Content: f.Content}, nil
}

type MyReviews struct {
	Reviews []backend.Review  `json:"reviews"`
	Meta    *backend.PageMeta `json:"meta,omitempty"`
}

type Service struct {
	backend Backend
}

func NewService(b Backend) *Service {
	return &Service{backend: b}
}

func normalize(p backend.ReviewListParams) backend.ReviewListParams {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 || p.PerPage > maxPerPage {
		p.PerPage = defaultPerPage
	}
	if p.Rating < 0 || p.Rating > 5 {
		p.Rating = 0
	}
	return p
}

func (s *Service) List(ctx context.Context, slug string, params backend.ReviewListParams) (*backend.ReviewList, error) {
	list, err := s.backend.ProductReviews(ctx, slug, normalize(params))
	if err != nil {
		return nil, err
	}
	if list.Reviews == nil {
		list.Reviews = []backend.Review{}
	}
	return list, nil
}

func (s *Service) Eligibility(ctx context.Context, cred backend.Credentials, slug string) (*backend.ReviewEligibility, error) {
	if cred.Token == "" {
		return &backend.ReviewEligibility{Reason: ReasonLoginRequired}, nil
	}
	return s.backend.CanReview(ctx, cred, slug)
}

func (s *Service) Create(ctx context.Context, cred backend.Credentials, slug string, form Form) (*backend.Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateReview"),
		zap.String("product", slug),
	)

	req, err := form.request()
	if err != nil {
		return nil, err
	}

	rv, err := s.backend.CreateReview(ctx, cred, slug, req)
	if err != nil {
		log.Warn("create review failed", zap.Error(err))
		return nil, err
	}

	log.Info("review created", zap.Int64("review_id", rv.ID), zap.Int("rating", rv.Rating))
	return rv, nil
}

func (s *Service) Update(ctx context.Context, cred backend.Credentials, id int64, form Form) (*backend.Review, error) {
	req, err := form.request()
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateReview(ctx, cred, id, req)
}

func (s *Service) Delete(ctx context.Context, cred backend.Credentials, id int64) error {
	return s.backend.DeleteReview(ctx, cred, id)
}

func (s *Service) MarkHelpful(ctx context.Context, cred backend.Credentials, id int64) (*backend.HelpfulResult, error) {
	return s.backend.MarkReviewHelpful(ctx, cred, id)
}

func (s *Service) Mine(ctx context.Context, cred backend.Credentials, params backend.ReviewListParams) (*MyReviews, error) {
	reviews, meta, err := s.backend.MyReviews(ctx, cred, normalize(params))
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []backend.Review{}
	}
	return &MyReviews{Reviews: reviews, Meta: meta}, nil
}
