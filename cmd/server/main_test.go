package main

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-gateway/internal/config"
	"storefront-gateway/internal/httpapi"
	"storefront-gateway/internal/middleware"
	"storefront-gateway/internal/session"

	"github.com/stretchr/testify/assert"
)

func TestSetupRouter(t *testing.T) {
	// Handler with no services: only the HTTP wiring is under test here.
	api := httpapi.NewHandler(httpapi.Deps{})

	sessionHit := false
	sessionMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionHit = true
			ctx := session.WithSession(r.Context(), &session.Session{ID: "guest"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	router := setupRouter(api, sessionMiddleware, middleware.NewRateLimiter(), "http://localhost:3000")

	t.Run("Health Check", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		assert.False(t, sessionHit, "health check does not hydrate a session")
	})

	t.Run("Metrics", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/metrics", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "storefront_http_requests_total")
	})

	t.Run("API routes run behind the session", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/auth/me", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, sessionHit)
		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Checkout requires login", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/checkout", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestNewServer(t *testing.T) {
	// Mock driver so no Postgres is needed
	db, err := sql.Open("mock_driver_main", "")
	assert.NoError(t, err)

	cfg := &config.Config{
		AppPort:        "8080",
		AppEnv:         "test",
		BackendBaseURL: "http://backend.invalid/api",
		CORSOrigin:     "http://localhost:3000",
		PublicBaseURL:  "http://localhost:3000",
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := newServer(ctx, cfg, db)

	assert.NotNil(t, router)
	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

// --- Mock Driver for Testing ---
type mockDriver struct{}

func (m *mockDriver) Open(name string) (driver.Conn, error)         { return &mockConn{}, nil }
func (c *mockConn) Prepare(query string) (driver.Stmt, error)       { return &mockStmt{}, nil }
func (c *mockConn) Close() error                                    { return nil }
func (c *mockConn) Begin() (driver.Tx, error)                       { return nil, nil }
func (s *mockStmt) Close() error                                    { return nil }
func (s *mockStmt) NumInput() int                                   { return 0 }
func (s *mockStmt) Exec(args []driver.Value) (driver.Result, error) { return nil, nil }
func (s *mockStmt) Query(args []driver.Value) (driver.Rows, error)  { return nil, nil }

type mockConn struct{}
type mockStmt struct{}

func init() {
	sql.Register("mock_driver_main", &mockDriver{})
}

func TestRun(t *testing.T) {
	origInitDB := initDBFunc
	defer func() { initDBFunc = origInitDB }()
	initDBFunc = func(cfg *config.Config) *sql.DB {
		db, _ := sql.Open("mock_driver_main", "")
		return db
	}

	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()
	var addr string
	startServerFunc = func(ctx context.Context, a string, handler http.Handler) error {
		addr = a
		return nil
	}

	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("BACKEND_BASE_URL", "http://backend.invalid/api")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "pass")
	t.Setenv("DB_NAME", "db")
	t.Setenv("RABBITMQ_URL", "")

	assert.NoError(t, run())
	assert.Equal(t, ":8080", addr)
}
