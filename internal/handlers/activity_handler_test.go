package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"habitquest/internal/models"
	"habitquest/internal/repositories"
	"habitquest/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type mockActivityStore struct {
	getFn        func(ctx context.Context, userID, key string) (string, error)
	setFn        func(ctx context.Context, userID, key, value string) error
	appendFeedFn func(ctx context.Context, userID string, entry models.FeedEntry) error
	feedFn       func(ctx context.Context, userID string, limit int64) ([]models.FeedEntry, error)
}

func (m *mockActivityStore) Get(ctx context.Context, userID, key string) (string, error) {
	if m.getFn == nil {
		panic("unexpected call to Get")
	}
	return m.getFn(ctx, userID, key)
}

func (m *mockActivityStore) Set(ctx context.Context, userID, key, value string) error {
	if m.setFn == nil {
		panic("unexpected call to Set")
	}
	return m.setFn(ctx, userID, key, value)
}

func (m *mockActivityStore) AppendFeed(ctx context.Context, userID string, entry models.FeedEntry) error {
	if m.appendFeedFn == nil {
		panic("unexpected call to AppendFeed")
	}
	return m.appendFeedFn(ctx, userID, entry)
}

func (m *mockActivityStore) Feed(ctx context.Context, userID string, limit int64) ([]models.FeedEntry, error) {
	if m.feedFn == nil {
		panic("unexpected call to Feed")
	}
	return m.feedFn(ctx, userID, limit)
}

// activityRouter mounts the handler behind a real chi mux so URL params bind.
func activityRouter(store *mockActivityStore) *chi.Mux {
	h := NewActivityHandler(store, testSecret, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/v1/activity/feed", h.FeedHandler)
	r.Post("/api/v1/activity/feed", h.AppendFeedHandler)
	r.Get("/api/v1/activity/{key}", h.GetValueHandler)
	r.Put("/api/v1/activity/{key}", h.SetValueHandler)
	return r
}

func withAuth(t *testing.T, r *http.Request, userID string) *http.Request {
	t.Helper()
	token, err := utils.GenerateToken(testSecret, userID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	r.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: token})
	return r
}

func TestActivityRequiresAuth(t *testing.T) {
	router := activityRouter(&mockActivityStore{})
	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/v1/activity/moods"},
		{"PUT", "/api/v1/activity/moods"},
		{"GET", "/api/v1/activity/feed"},
		{"POST", "/api/v1/activity/feed"},
	} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
		router.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tc.method, tc.path, w.Code)
		}
	}
}

func TestGetValue(t *testing.T) {
	store := &mockActivityStore{
		getFn: func(_ context.Context, userID, key string) (string, error) {
			if userID != "u1" || key != "moods" {
				t.Errorf("lookup (%q, %q), want (u1, moods)", userID, key)
			}
			return "stored", nil
		},
	}
	router := activityRouter(store)
	w := httptest.NewRecorder()
	r := withAuth(t, httptest.NewRequest("GET", "/api/v1/activity/moods", nil), "u1")
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var val models.ActivityValue
	if err := json.NewDecoder(w.Body).Decode(&val); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if val.Key != "moods" || val.Value != "stored" {
		t.Errorf("body = %+v", val)
	}
}

func TestGetValueMissing(t *testing.T) {
	store := &mockActivityStore{
		getFn: func(context.Context, string, string) (string, error) {
			return "", repositories.ErrKeyNotFound
		},
	}
	router := activityRouter(store)
	w := httptest.NewRecorder()
	r := withAuth(t, httptest.NewRequest("GET", "/api/v1/activity/moods", nil), "u1")
	router.ServeHTTP(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestSetValue(t *testing.T) {
	var gotValue string
	store := &mockActivityStore{
		setFn: func(_ context.Context, _, _, value string) error {
			gotValue = value
			return nil
		},
	}
	router := activityRouter(store)
	w := httptest.NewRecorder()
	r := withAuth(t, httptest.NewRequest("PUT", "/api/v1/activity/moods",
		strings.NewReader(`{"value":"[1,2,3]"}`)), "u1")
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if gotValue != "[1,2,3]" {
		t.Errorf("stored value = %q", gotValue)
	}
}

func TestAppendFeedStampsEntry(t *testing.T) {
	var got models.FeedEntry
	store := &mockActivityStore{
		appendFeedFn: func(_ context.Context, _ string, entry models.FeedEntry) error {
			got = entry
			return nil
		},
	}
	router := activityRouter(store)
	w := httptest.NewRecorder()
	r := withAuth(t, httptest.NewRequest("POST", "/api/v1/activity/feed",
		strings.NewReader(`{"action":"Completed a task","xp":25}`)), "u1")
	router.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if got.ID == "" || got.Timestamp == "" {
		t.Errorf("entry must get an id and timestamp, got %+v", got)
	}
	if got.Action != "Completed a task" || got.XP != 25 {
		t.Errorf("entry = %+v", got)
	}
}

func TestAppendFeedMissingAction(t *testing.T) {
	router := activityRouter(&mockActivityStore{})
	w := httptest.NewRecorder()
	r := withAuth(t, httptest.NewRequest("POST", "/api/v1/activity/feed",
		strings.NewReader(`{"xp":25}`)), "u1")
	router.ServeHTTP(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestFeedBadLimit(t *testing.T) {
	router := activityRouter(&mockActivityStore{})
	w := httptest.NewRecorder()
	r := withAuth(t, httptest.NewRequest("GET", "/api/v1/activity/feed?limit=zero", nil), "u1")
	router.ServeHTTP(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestFeedListing(t *testing.T) {
	store := &mockActivityStore{
		feedFn: func(_ context.Context, _ string, limit int64) ([]models.FeedEntry, error) {
			return []models.FeedEntry{{ID: "1", Action: "a"}, {ID: "2", Action: "b"}}, nil
		},
	}
	router := activityRouter(store)
	w := httptest.NewRecorder()
	r := withAuth(t, httptest.NewRequest("GET", "/api/v1/activity/feed?limit=10", nil), "u1")
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp models.FeedResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp.Total != 2 || len(resp.Items) != 2 {
		t.Errorf("body = %+v", resp)
	}
}
