// Package httpapi is the JSON surface the storefront frontend calls.
package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cart"
	"storefront-gateway/internal/checkout"
	"storefront-gateway/internal/community"
	"storefront-gateway/internal/forms"
	"storefront-gateway/internal/middleware"
	"storefront-gateway/internal/order"
	"storefront-gateway/internal/product"
	"storefront-gateway/internal/reservation"
	"storefront-gateway/internal/review"
	"storefront-gateway/internal/session"

	"github.com/go-chi/chi/v5"
)

type Checkout interface {
	Submit(ctx context.Context, cred backend.Credentials, form checkout.Form) (checkout.Outcome, error)
}

type Payments interface {
	Confirm(ctx context.Context, cred backend.Credentials, params url.Values) checkout.Outcome
	Fail(ctx context.Context, params url.Values) checkout.Outcome
}

type Sessions interface {
	Login(ctx context.Context, current *session.Session, req backend.LoginRequest) (*session.Session, error)
	Register(ctx context.Context, current *session.Session, req backend.RegisterRequest) (*session.Session, error)
	SocialLogin(ctx context.Context, current *session.Session, provider, code string) (*session.Session, error)
	Logout(ctx context.Context, s *session.Session) error
	Forget(ctx context.Context, s *session.Session) error
	SetCookie(w http.ResponseWriter, s *session.Session)
	ClearCookie(w http.ResponseWriter)
}

type Reservations interface {
	Settings(ctx context.Context) (*backend.ReservationSettings, error)
	Services(ctx context.Context) ([]backend.ReservationService, error)
	Staff(ctx context.Context, serviceID *int64) ([]backend.Staff, error)
	AvailableDates(ctx context.Context, serviceID int64, staffID *int64, month string) ([]string, error)
	AvailableSlots(ctx context.Context, serviceID int64, staffID *int64, date string) ([]backend.TimeSlot, error)
	Create(ctx context.Context, cred backend.Credentials, form reservation.Form) (*backend.ReservationCreated, error)
	List(ctx context.Context, cred backend.Credentials, status string) ([]backend.Reservation, error)
	Cancel(ctx context.Context, cred backend.Credentials, reservationNumber, reason string) (*backend.Reservation, error)
}

type Board interface {
	List(ctx context.Context, board string, params backend.ContentListParams) (*community.PostList, error)
	Get(ctx context.Context, id int64) (*backend.Post, error)
	Create(ctx context.Context, cred backend.Credentials, form community.PostForm) (*backend.Post, error)
	Update(ctx context.Context, cred backend.Credentials, id int64, form community.PostForm) (*backend.Post, error)
	Delete(ctx context.Context, cred backend.Credentials, id int64) error
	Comments(ctx context.Context, postID int64) ([]backend.Comment, error)
	CreateComment(ctx context.Context, cred backend.Credentials, postID int64, form community.CommentForm) (*backend.Comment, error)
	UpdateComment(ctx context.Context, cred backend.Credentials, id int64, form community.CommentForm) (*backend.Comment, error)
	DeleteComment(ctx context.Context, cred backend.Credentials, id int64) error
}

type Blog interface {
	List(ctx context.Context, params backend.ContentListParams) (*community.BlogList, error)
	Get(ctx context.Context, slug string) (*backend.BlogPost, error)
	Categories(ctx context.Context) []backend.BlogCategory
	Tags(ctx context.Context) []backend.BlogTag
	Featured(ctx context.Context, limit int) ([]backend.BlogPost, error)
	Comments(ctx context.Context, slug string) ([]backend.Comment, error)
	CreateComment(ctx context.Context, cred backend.Credentials, slug string, form community.CommentForm) (*backend.Comment, error)
	UpdateComment(ctx context.Context, cred backend.Credentials, id int64, form community.CommentForm) (*backend.Comment, error)
	DeleteComment(ctx context.Context, cred backend.Credentials, id int64) error
}

type Forms interface {
	Get(ctx context.Context, slug string) (*backend.Form, error)
	Submit(ctx context.Context, cred backend.Credentials, user *backend.User, slug string, values map[string]any) (*forms.Result, error)
}

type Reviews interface {
	List(ctx context.Context, slug string, params backend.ReviewListParams) (*backend.ReviewList, error)
	Eligibility(ctx context.Context, cred backend.Credentials, slug string) (*backend.ReviewEligibility, error)
	Create(ctx context.Context, cred backend.Credentials, slug string, form review.Form) (*backend.Review, error)
	Update(ctx context.Context, cred backend.Credentials, id int64, form review.Form) (*backend.Review, error)
	Delete(ctx context.Context, cred backend.Credentials, id int64) error
	MarkHelpful(ctx context.Context, cred backend.Credentials, id int64) (*backend.HelpfulResult, error)
	Mine(ctx context.Context, cred backend.Credentials, params backend.ReviewListParams) (*review.MyReviews, error)
}

type Deps struct {
	Products     product.Service
	Carts        cart.Service
	Checkout     Checkout
	Payments     Payments
	Sessions     Sessions
	Orders       order.Service
	Reservations Reservations
	Board        Board
	Blog         Blog
	Forms        Forms
	Reviews      Reviews
}

type Handler struct {
	products     product.Service
	carts        cart.Service
	checkout     Checkout
	payments     Payments
	sessions     Sessions
	orders       order.Service
	reservations Reservations
	board        Board
	blog         Blog
	forms        Forms
	reviews      Reviews
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		products:     d.Products,
		carts:        d.Carts,
		checkout:     d.Checkout,
		payments:     d.Payments,
		sessions:     d.Sessions,
		orders:       d.Orders,
		reservations: d.Reservations,
		board:        d.Board,
		blog:         d.Blog,
		forms:        d.Forms,
		reviews:      d.Reviews,
	}
}

// RegisterRoutes mounts every API route. The session middleware must already
// be on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.listProducts)      // GET  /api/products?page=&per_page=&category=&search=
		r.Get("/products/{slug}", h.getProduct) // GET  /api/products/{slug}?option=색상:RED&quantity=2
		r.Get("/products/{slug}/reviews", h.listReviews)
		r.Get("/products/{slug}/reviews/eligibility", h.reviewEligibility)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.getCart)                     // GET    /api/cart
			r.Post("/items", h.addCartItem)           // POST   /api/cart/items
			r.Patch("/items/{id}", h.updateCartItem)  // PATCH  /api/cart/items/{id}
			r.Delete("/items/{id}", h.removeCartItem) // DELETE /api/cart/items/{id}
			r.Delete("/", h.clearCart)                // DELETE /api/cart
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/register", h.register)
			r.Post("/logout", h.logout)
			r.Get("/me", h.me)
			r.Get("/{provider}/callback", h.socialCallback)
		})

		r.Route("/payment", func(r chi.Router) {
			r.Get("/success", h.paymentSuccess) // provider redirect: paymentKey, orderId, amount
			r.Get("/fail", h.paymentFail)       // provider redirect: code, message, orderId
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Get("/settings", h.reservationSettings)
			r.Get("/services", h.reservationServices)
			r.Get("/staff", h.reservationStaff)
			r.Get("/available-dates", h.availableDates)
			r.Get("/available-slots", h.availableSlots)
			r.Post("/", h.createReservation)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/", h.listReservations)
				r.Post("/{number}/cancel", h.cancelReservation)
			})
		})

		r.Route("/board", func(r chi.Router) {
			r.Get("/{board}/posts", h.listPosts)
			r.Get("/posts/{id}", h.getPost)
			r.Get("/posts/{id}/comments", h.listPostComments)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/posts", h.createPost)
				r.Put("/posts/{id}", h.updatePost)
				r.Delete("/posts/{id}", h.deletePost)
				r.Post("/posts/{id}/comments", h.createPostComment)
				r.Put("/comments/{id}", h.updatePostComment)
				r.Delete("/comments/{id}", h.deletePostComment)
			})
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", h.listBlogPosts)
			r.Get("/categories", h.blogCategories)
			r.Get("/tags", h.blogTags)
			r.Get("/featured", h.featuredBlogPosts)
			r.Get("/{slug}", h.getBlogPost)
			r.Get("/{slug}/comments", h.listBlogComments)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/{slug}/comments", h.createBlogComment)
				r.Put("/comments/{id}", h.updateBlogComment)
				r.Delete("/comments/{id}", h.deleteBlogComment)
			})
		})

		r.Route("/forms", func(r chi.Router) {
			r.Get("/{slug}", h.getForm)
			r.Post("/{slug}/submit", h.submitForm) // member_id is attached when signed in
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/products/{slug}/reviews", h.createReview)
			r.Get("/reviews/mine", h.myReviews)
			r.Put("/reviews/{id}", h.updateReview)
			r.Delete("/reviews/{id}", h.deleteReview)
			r.Post("/reviews/{id}/helpful", h.markReviewHelpful)

			r.Get("/checkout", h.checkoutForm)
			r.Post("/checkout", h.submitCheckout)

			r.Get("/orders", h.listOrders)
			r.Get("/orders/{ref}", h.getOrder)
			r.Post("/orders/{id}/cancel", h.cancelOrder)
		})
	})
}

func credentials(r *http.Request) backend.Credentials {
	return session.FromContext(r.Context()).Credentials()
}

func currentUser(r *http.Request) *backend.User {
	if s := session.FromContext(r.Context()); s != nil {
		return s.User
	}
	return nil
}
