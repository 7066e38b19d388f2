package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"newsviewer/format"
	"newsviewer/rssfeeds"
	"newsviewer/types"
)

type countingSource struct {
	calls chan struct{}
}

func (s countingSource) Articles(context.Context) ([]types.Article, error) {
	s.calls <- struct{}{}
	return []types.Article{{ID: 9, Title: "Nueva"}}, nil
}

func newTestRouter(t *testing.T, store *rssfeeds.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f, err := format.NewFormatter("es", "UTC")
	if err != nil {
		t.Fatalf("NewFormatter error: %v", err)
	}
	return NewRouter(Deps{Store: store, Formatter: f, Placeholder: "placeholder.png"})
}

func seededStore() *rssfeeds.Store {
	store := rssfeeds.NewStore(nil, nil)
	updated := types.NewTimestamp(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	store.Restore(types.Feed{
		Articles: []types.Article{
			{ID: 1, Title: "A", Summary: "S", Content: "C", Date: types.NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), Image: "http://x/i.png"},
			{ID: 2, Title: "<b>B</b>", Content: "Texto"},
		},
		LastUpdate: &updated,
	})
	return store
}

func serve(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := serve(newTestRouter(t, seededStore()), http.MethodGet, "/api/health")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("health = %d %s", w.Code, w.Body.String())
	}
}

func TestGetArticles(t *testing.T) {
	w := serve(newTestRouter(t, seededStore()), http.MethodGet, "/api/articles")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	feed, err := types.DecodeFeed(w.Body.Bytes())
	if err != nil {
		t.Fatalf("response is not a feed: %v", err)
	}
	if len(feed.Articles) != 2 || feed.Articles[0].Title != "A" {
		t.Fatalf("articles = %+v", feed.Articles)
	}
	if feed.LastUpdate == nil || feed.LastUpdate.Day() != 2 {
		t.Fatalf("lastUpdate = %v", feed.LastUpdate)
	}

	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if raw["lastUpdate"] != "2024-01-02T00:00:00Z" {
		t.Fatalf("lastUpdate wire format = %v", raw["lastUpdate"])
	}
}

func TestEmptyStoreServesEmptyList(t *testing.T) {
	w := serve(newTestRouter(t, rssfeeds.NewStore(nil, nil)), http.MethodGet, "/api/articles")
	if strings.TrimSpace(w.Body.String()) != `{"articles":[]}` {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestRefreshIsAsync(t *testing.T) {
	src := countingSource{calls: make(chan struct{}, 1)}
	store := rssfeeds.NewStore(src, nil)

	w := serve(newTestRouter(t, store), http.MethodPost, "/api/articles/refresh")
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d; want 202", w.Code)
	}

	select {
	case <-src.calls:
	case <-time.After(2 * time.Second):
		t.Fatalf("refresh did not reach the source")
	}
}

func TestCORSHeaders(t *testing.T) {
	r := newTestRouter(t, seededStore())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS header: %v", w.Header())
	}
}

func TestPreview(t *testing.T) {
	r := newTestRouter(t, seededStore())

	cases := []struct {
		name     string
		target   string
		fragment string
		want     []string
	}{
		{"grid", "/preview", "", []string{`<main id="main-view">`, "1 de enero de 2024, 00:00", "&lt;b&gt;B&lt;/b&gt;"}},
		{"detail", "/preview?fragment=article-2", "article-2", []string{`<section id="article-view">`, `<h1 id="article-title">&lt;b&gt;B&lt;/b&gt;</h1>`, "Texto", "placeholder.png"}},
		{"non-canonical", "/preview?fragment=article-02", "article-2", []string{`<section id="article-view">`}},
		{"unknown", "/preview?fragment=article-99", "", []string{`<main id="main-view">`}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := serve(r, http.MethodGet, c.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if got := w.Header().Get("X-Fragment"); got != c.fragment {
				t.Fatalf("fragment = %q; want %q", got, c.fragment)
			}
			body := w.Body.String()
			for _, want := range c.want {
				if !strings.Contains(body, want) {
					t.Fatalf("body missing %q:\n%s", want, body)
				}
			}
		})
	}
}
