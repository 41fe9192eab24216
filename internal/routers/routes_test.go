package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"habitquest/internal/handlers"
	"habitquest/internal/models"
	"habitquest/internal/repositories"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stubRepo struct{}

func (stubRepo) Insert(_ context.Context, u *models.User) (*models.User, error) { return u, nil }
func (stubRepo) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (stubRepo) FindByID(context.Context, string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (stubRepo) UpdateProgress(_ context.Context, _ string, u *models.User) (*models.User, error) {
	return u, nil
}

type stubStore struct{}

func (stubStore) Get(context.Context, string, string) (string, error) {
	return "", repositories.ErrKeyNotFound
}
func (stubStore) Set(context.Context, string, string, string) error { return nil }
func (stubStore) AppendFeed(context.Context, string, models.FeedEntry) error {
	return nil
}
func (stubStore) Feed(context.Context, string, int64) ([]models.FeedEntry, error) {
	return nil, nil
}

func testRouter() *chi.Mux {
	logger := zap.NewNop()
	r := chi.NewRouter()
	AuthRoutes(r, handlers.NewAuthHandler(stubRepo{}, "secret", false, logger))
	UserRoutes(r, handlers.NewUserHandler(stubRepo{}, "secret", logger))
	ActivityRoutes(r, handlers.NewActivityHandler(stubStore{}, "secret", logger))
	HealthRoutes(r, handlers.NewHealthHandler(nil))
	return r
}

func TestRoutesAreRegistered(t *testing.T) {
	router := testRouter()
	cases := []struct {
		method string
		path   string
		want   int
	}{
		{"POST", "/api/v1/auth/signup", http.StatusBadRequest},   // empty body
		{"POST", "/api/v1/auth/login", http.StatusBadRequest},    // empty body
		{"POST", "/api/v1/auth/logout", http.StatusNoContent},
		{"GET", "/api/v1/auth/me", http.StatusUnauthorized},       // no cookie
		{"PUT", "/api/v1/user/update", http.StatusUnauthorized},   // no cookie
		{"GET", "/api/v1/activity/feed", http.StatusUnauthorized}, // no cookie
		{"GET", "/healthz", http.StatusOK},
		{"GET", "/readyz", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(c.method, c.path, nil)
		router.ServeHTTP(w, r)
		if w.Code != c.want {
			t.Errorf("%s %s: status = %d, want %d", c.method, c.path, w.Code, c.want)
		}
	}
}

func TestWrongMethodIsRejected(t *testing.T) {
	router := testRouter()
	for _, c := range []struct{ method, path string }{
		{"GET", "/api/v1/auth/signup"},
		{"GET", "/api/v1/auth/login"},
		{"POST", "/api/v1/user/update"},
	} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(c.method, c.path, nil)
		router.ServeHTTP(w, r)
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: status = %d, want 405", c.method, c.path, w.Code)
		}
	}
}
