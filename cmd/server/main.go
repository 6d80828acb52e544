package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/cache"
	"storefront-gateway/internal/cart"
	"storefront-gateway/internal/checkout"
	"storefront-gateway/internal/community"
	"storefront-gateway/internal/config"
	"storefront-gateway/internal/db"
	"storefront-gateway/internal/events"
	"storefront-gateway/internal/forms"
	"storefront-gateway/internal/httpapi"
	"storefront-gateway/internal/logger"
	"storefront-gateway/internal/middleware"
	"storefront-gateway/internal/order"
	"storefront-gateway/internal/payment"
	"storefront-gateway/internal/product"
	"storefront-gateway/internal/reservation"
	"storefront-gateway/internal/review"
	"storefront-gateway/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = listenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := newServer(ctx, cfg, database)

	logger.L().Info("storefront gateway running",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	return startServerFunc(ctx, ":"+cfg.AppPort, router)
}

// newServer wires every service onto one router and starts the background
// loops that live as long as ctx.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB) http.Handler {
	client := backend.NewClient(cfg.BackendBaseURL, cfg.BackendAPIKey, cfg.BackendTimeout)
	pub := events.Connect(cfg.RabbitMQURL, cfg.EventsExchange)

	products := product.NewService(client, cache.New[string, *product.Product](512, cache.ProductTTL))
	carts := cart.NewService(client, cache.New[string, *backend.Cart](1024, cache.CartTTL))
	orchestrator := checkout.NewOrchestrator(client, carts, pub, cfg.PaymentSuccessURL(), cfg.PaymentFailURL())
	payments := payment.NewHandler(client, payment.NewRepository(database), pub)

	store := session.NewRepository(database)
	sessions := session.NewManager(store, client, cfg.SessionTTL, cfg.CookieSecure)
	limiter := middleware.NewRateLimiter()

	go limiter.Run(ctx)
	go session.Sweep(ctx, store, time.Hour)
	go func() {
		<-ctx.Done()
		_ = pub.Close()
	}()

	api := httpapi.NewHandler(httpapi.Deps{
		Products:     products,
		Carts:        carts,
		Checkout:     orchestrator,
		Payments:     payments,
		Sessions:     sessions,
		Orders:       order.NewService(client),
		Reservations: reservation.NewService(client),
		Board:        community.NewBoard(client),
		Blog:         community.NewBlog(client),
		Forms:        forms.NewService(client),
		Reviews:      review.NewService(client),
	})

	return setupRouter(api, sessions.Middleware, limiter, cfg.CORSOrigin)
}

func setupRouter(api *httpapi.Handler, sessionMiddleware func(http.Handler) http.Handler, limiter *middleware.RateLimiter, corsOrigin string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(corsOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Use(limiter.Middleware)
		api.RegisterRoutes(r)
	})

	return r
}

func listenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.L().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
