package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/checkout"
	"storefront-gateway/internal/community"
	"storefront-gateway/internal/forms"
	"storefront-gateway/internal/order"
	"storefront-gateway/internal/product"
	"storefront-gateway/internal/reservation"
	"storefront-gateway/internal/review"
	"storefront-gateway/internal/session"

	"github.com/stretchr/testify/mock"
)

type MockProducts struct {
	mock.Mock
}

func (m *MockProducts) Get(ctx context.Context, slug string) (*product.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProducts) List(ctx context.Context, params backend.ProductListParams) (*product.ListResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.ListResult), args.Error(1)
}

type MockCarts struct {
	mock.Mock
}

func (m *MockCarts) result(args mock.Arguments) (*backend.Cart, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Cart), args.Error(1)
}

func (m *MockCarts) Get(ctx context.Context, cred backend.Credentials) (*backend.Cart, error) {
	return m.result(m.Called(ctx, cred))
}

func (m *MockCarts) Add(ctx context.Context, cred backend.Credentials, sel *product.Selection) (*backend.Cart, error) {
	return m.result(m.Called(ctx, cred, sel))
}

func (m *MockCarts) UpdateQuantity(ctx context.Context, cred backend.Credentials, itemID int64, quantity int) (*backend.Cart, error) {
	return m.result(m.Called(ctx, cred, itemID, quantity))
}

func (m *MockCarts) Remove(ctx context.Context, cred backend.Credentials, itemID int64) (*backend.Cart, error) {
	return m.result(m.Called(ctx, cred, itemID))
}

func (m *MockCarts) Clear(ctx context.Context, cred backend.Credentials) (*backend.Cart, error) {
	return m.result(m.Called(ctx, cred))
}

func (m *MockCarts) Invalidate(cred backend.Credentials) {
	m.Called(cred)
}

type MockCheckout struct {
	mock.Mock
}

func (m *MockCheckout) Submit(ctx context.Context, cred backend.Credentials, form checkout.Form) (checkout.Outcome, error) {
	args := m.Called(ctx, cred, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(checkout.Outcome), args.Error(1)
}

type MockPayments struct {
	mock.Mock
}

func (m *MockPayments) Confirm(ctx context.Context, cred backend.Credentials, params url.Values) checkout.Outcome {
	return m.Called(ctx, cred, params).Get(0).(checkout.Outcome)
}

func (m *MockPayments) Fail(ctx context.Context, params url.Values) checkout.Outcome {
	return m.Called(ctx, params).Get(0).(checkout.Outcome)
}

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) started(args mock.Arguments) (*session.Session, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessions) Login(ctx context.Context, current *session.Session, req backend.LoginRequest) (*session.Session, error) {
	return m.started(m.Called(ctx, current, req))
}

func (m *MockSessions) Register(ctx context.Context, current *session.Session, req backend.RegisterRequest) (*session.Session, error) {
	return m.started(m.Called(ctx, current, req))
}

func (m *MockSessions) SocialLogin(ctx context.Context, current *session.Session, provider, code string) (*session.Session, error) {
	return m.started(m.Called(ctx, current, provider, code))
}

func (m *MockSessions) Logout(ctx context.Context, s *session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessions) Forget(ctx context.Context, s *session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessions) SetCookie(w http.ResponseWriter, s *session.Session) {
	m.Called(w, s)
	http.SetCookie(w, &http.Cookie{Name: session.CookieName, Value: s.ID})
}

func (m *MockSessions) ClearCookie(w http.ResponseWriter) {
	m.Called(w)
	http.SetCookie(w, &http.Cookie{Name: session.CookieName, MaxAge: -1})
}

type MockOrders struct {
	mock.Mock
}

func (m *MockOrders) List(ctx context.Context, cred backend.Credentials, params backend.OrderListParams) (*order.ListResult, error) {
	args := m.Called(ctx, cred, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.ListResult), args.Error(1)
}

func (m *MockOrders) Get(ctx context.Context, cred backend.Credentials, ref string) (*order.View, error) {
	args := m.Called(ctx, cred, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.View), args.Error(1)
}

func (m *MockOrders) Cancel(ctx context.Context, cred backend.Credentials, id int64) (*order.View, error) {
	args := m.Called(ctx, cred, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.View), args.Error(1)
}

type MockReservations struct {
	mock.Mock
}

func (m *MockReservations) Settings(ctx context.Context) (*backend.ReservationSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.ReservationSettings), args.Error(1)
}

func (m *MockReservations) Services(ctx context.Context) ([]backend.ReservationService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.ReservationService), args.Error(1)
}

func (m *MockReservations) Staff(ctx context.Context, serviceID *int64) ([]backend.Staff, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.Staff), args.Error(1)
}

func (m *MockReservations) AvailableDates(ctx context.Context, serviceID int64, staffID *int64, month string) ([]string, error) {
	args := m.Called(ctx, serviceID, staffID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReservations) AvailableSlots(ctx context.Context, serviceID int64, staffID *int64, date string) ([]backend.TimeSlot, error) {
	args := m.Called(ctx, serviceID, staffID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.TimeSlot), args.Error(1)
}

func (m *MockReservations) Create(ctx context.Context, cred backend.Credentials, form reservation.Form) (*backend.ReservationCreated, error) {
	args := m.Called(ctx, cred, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.ReservationCreated), args.Error(1)
}

func (m *MockReservations) List(ctx context.Context, cred backend.Credentials, status string) ([]backend.Reservation, error) {
	args := m.Called(ctx, cred, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.Reservation), args.Error(1)
}

func (m *MockReservations) Cancel(ctx context.Context, cred backend.Credentials, number, reason string) (*backend.Reservation, error) {
	args := m.Called(ctx, cred, number, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Reservation), args.Error(1)
}

type MockBoard struct {
	mock.Mock
}

func (m *MockBoard) post(args mock.Arguments) (*backend.Post, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Post), args.Error(1)
}

func (m *MockBoard) comment(args mock.Arguments) (*backend.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Comment), args.Error(1)
}

func (m *MockBoard) List(ctx context.Context, board string, params backend.ContentListParams) (*community.PostList, error) {
	args := m.Called(ctx, board, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.PostList), args.Error(1)
}

func (m *MockBoard) Get(ctx context.Context, id int64) (*backend.Post, error) {
	return m.post(m.Called(ctx, id))
}

func (m *MockBoard) Create(ctx context.Context, cred backend.Credentials, form community.PostForm) (*backend.Post, error) {
	return m.post(m.Called(ctx, cred, form))
}

func (m *MockBoard) Update(ctx context.Context, cred backend.Credentials, id int64, form community.PostForm) (*backend.Post, error) {
	return m.post(m.Called(ctx, cred, id, form))
}

func (m *MockBoard) Delete(ctx context.Context, cred backend.Credentials, id int64) error {
	return m.Called(ctx, cred, id).Error(0)
}

func (m *MockBoard) Comments(ctx context.Context, postID int64) ([]backend.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.Comment), args.Error(1)
}

func (m *MockBoard) CreateComment(ctx context.Context, cred backend.Credentials, postID int64, form community.CommentForm) (*backend.Comment, error) {
	return m.comment(m.Called(ctx, cred, postID, form))
}

func (m *MockBoard) UpdateComment(ctx context.Context, cred backend.Credentials, id int64, form community.CommentForm) (*backend.Comment, error) {
	return m.comment(m.Called(ctx, cred, id, form))
}

func (m *MockBoard) DeleteComment(ctx context.Context, cred backend.Credentials, id int64) error {
	return m.Called(ctx, cred, id).Error(0)
}

type MockBlog struct {
	mock.Mock
}

func (m *MockBlog) comment(args mock.Arguments) (*backend.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Comment), args.Error(1)
}

func (m *MockBlog) List(ctx context.Context, params backend.ContentListParams) (*community.BlogList, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.BlogList), args.Error(1)
}

func (m *MockBlog) Get(ctx context.Context, slug string) (*backend.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.BlogPost), args.Error(1)
}

func (m *MockBlog) Categories(ctx context.Context) []backend.BlogCategory {
	return m.Called(ctx).Get(0).([]backend.BlogCategory)
}

func (m *MockBlog) Tags(ctx context.Context) []backend.BlogTag {
	return m.Called(ctx).Get(0).([]backend.BlogTag)
}

func (m *MockBlog) Featured(ctx context.Context, limit int) ([]backend.BlogPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.BlogPost), args.Error(1)
}

func (m *MockBlog) Comments(ctx context.Context, slug string) ([]backend.Comment, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.Comment), args.Error(1)
}

func (m *MockBlog) CreateComment(ctx context.Context, cred backend.Credentials, slug string, form community.CommentForm) (*backend.Comment, error) {
	return m.comment(m.Called(ctx, cred, slug, form))
}

func (m *MockBlog) UpdateComment(ctx context.Context, cred backend.Credentials, id int64, form community.CommentForm) (*backend.Comment, error) {
	return m.comment(m.Called(ctx, cred, id, form))
}

func (m *MockBlog) DeleteComment(ctx context.Context, cred backend.Credentials, id int64) error {
	return m.Called(ctx, cred, id).Error(0)
}

type MockForms struct {
	mock.Mock
}

func (m *MockForms) Get(ctx context.Context, slug string) (*backend.Form, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Form), args.Error(1)
}

func (m *MockForms) Submit(ctx context.Context, cred backend.Credentials, user *backend.User, slug string, values map[string]any) (*forms.Result, error) {
	args := m.Called(ctx, cred, user, slug, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forms.Result), args.Error(1)
}

type MockReviews struct {
	mock.Mock
}

func (m *MockReviews) review(args mock.Arguments) (*backend.Review, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Review), args.Error(1)
}

func (m *MockReviews) List(ctx context.Context, slug string, params backend.ReviewListParams) (*backend.ReviewList, error) {
	args := m.Called(ctx, slug, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.ReviewList), args.Error(1)
}

func (m *MockReviews) Eligibility(ctx context.Context, cred backend.Credentials, slug string) (*backend.ReviewEligibility, error) {
	args := m.Called(ctx, cred, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.ReviewEligibility), args.Error(1)
}

func (m *MockReviews) Create(ctx context.Context, cred backend.Credentials, slug string, form review.Form) (*backend.Review, error) {
	return m.review(m.Called(ctx, cred, slug, form))
}

func (m *MockReviews) Update(ctx context.Context, cred backend.Credentials, id int64, form review.Form) (*backend.Review, error) {
	return m.review(m.Called(ctx, cred, id, form))
}

func (m *MockReviews) Delete(ctx context.Context, cred backend.Credentials, id int64) error {
	return m.Called(ctx, cred, id).Error(0)
}

func (m *MockReviews) MarkHelpful(ctx context.Context, cred backend.Credentials, id int64) (*backend.HelpfulResult, error) {
	args := m.Called(ctx, cred, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.HelpfulResult), args.Error(1)
}

func (m *MockReviews) Mine(ctx context.Context, cred backend.Credentials, params backend.ReviewListParams) (*review.MyReviews, error) {
	args := m.Called(ctx, cred, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.MyReviews), args.Error(1)
}
