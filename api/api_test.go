package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"edmwatch/types"
)

type fakeStore struct {
	feed types.FeedOutput
	err  error
}

func (f *fakeStore) Load() (types.FeedOutput, error) {
	return f.feed, f.err
}

type fakeRefresher struct {
	count int
	err   error
	calls int
}

func (f *fakeRefresher) Refresh(ctx context.Context) (int, error) {
	f.calls++
	return f.count, f.err
}

func testFeed() types.FeedOutput {
	return types.FeedOutput{
		LastUpdated: time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC),
		TotalItems:  3,
		Items: []types.Item{
			{ID: "a", Title: "CFTC enforcement action", Tier: 1, Category: types.CategoryEnforcement, Priority: types.PriorityHigh, Date: "2025-01-20"},
			{ID: "b", Title: "Nevada notice", Tier: 1, Category: types.CategoryState, Priority: types.PriorityMedium, State: "NV", Date: "2025-01-19"},
			{ID: "c", Title: "Industry coverage", Tier: 3, Category: types.CategoryNews, Priority: types.PriorityLow, Date: "2025-01-18"},
		},
	}
}

func newTestRouter(store FeedStore, refresher Refresher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewServer(store, refresher))
}

func TestListItems(t *testing.T) {
	router := newTestRouter(&fakeStore{feed: testFeed()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var out types.FeedOutput
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.TotalItems != 3 || len(out.Items) != 3 {
		t.Fatalf("expected full feed, got %+v", out)
	}
}

func TestListItemsFiltered(t *testing.T) {
	router := newTestRouter(&fakeStore{feed: testFeed()}, nil)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"by tier", "?tier=1", []string{"a", "b"}},
		{"by category", "?category=enforcement", []string{"a"}},
		{"by priority", "?priority=low", []string{"c"}},
		{"by state", "?state=NV", []string{"b"}},
		{"combined", "?tier=1&priority=medium", []string{"b"}},
		{"no match", "?state=TX", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/items"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}

			var out types.FeedOutput
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if out.TotalItems != len(tt.want) {
				t.Fatalf("total = %d; want %d", out.TotalItems, len(tt.want))
			}
			for i, id := range tt.want {
				if out.Items[i].ID != id {
					t.Fatalf("item %d = %q; want %q", i, out.Items[i].ID, id)
				}
			}
		})
	}
}

func TestListItemsBadTier(t *testing.T) {
	router := newTestRouter(&fakeStore{feed: testFeed()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/items?tier=gold", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestListItemsStoreFailure(t *testing.T) {
	router := newTestRouter(&fakeStore{err: errors.New("no export yet")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d; want 503", w.Code)
	}
}

func TestRefresh(t *testing.T) {
	refresher := &fakeRefresher{count: 7}
	router := newTestRouter(&fakeStore{feed: testFeed()}, refresher)

	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if refresher.calls != 1 {
		t.Fatalf("refresher called %d times", refresher.calls)
	}

	var out map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["new_items"] != 7 {
		t.Fatalf("new_items = %d; want 7", out["new_items"])
	}
}

func TestRefreshNotConfigured(t *testing.T) {
	router := newTestRouter(&fakeStore{feed: testFeed()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d; want 501", w.Code)
	}
}

func TestRefreshFailure(t *testing.T) {
	router := newTestRouter(&fakeStore{feed: testFeed()}, &fakeRefresher{err: errors.New("upstream down")})

	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&fakeStore{feed: testFeed()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["status"] != "ok" {
		t.Fatalf("status field = %v", out["status"])
	}
	if stale, ok := out["stale"].(bool); !ok || !stale {
		t.Fatalf("2025 feed should read as stale, got %v", out["stale"])
	}
}
