package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"versebot/internal/books"
	"versebot/internal/db"
	"versebot/internal/format"
	"versebot/internal/parser"
	"versebot/internal/resolver"
	"versebot/internal/service"
)

type testEnv struct {
	api      http.Handler
	provider *httptest.Server
	hits     *atomic.Int64
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	var hits atomic.Int64
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`<html><body><p class="verseText">Throw all your anxiety on him.</p></body></html>`))
	}))
	t.Cleanup(provider.Close)

	store, err := db.Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	res := resolver.New(books.Default())
	verses := service.NewVerseClient(provider.Client(), provider.URL, "E", parser.NewFinderExtractor())
	srv := New(res, verses, store, format.Options{VersePrefix: "> "}, "E")

	return &testEnv{
		api:      srv.Handler(),
		provider: provider,
		hits:     &hits,
	}
}

func (e *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.api.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
}

func TestHandleVerseOK(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/verse?q=1+Peter+5:7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp verseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}

	if !resp.OK {
		t.Fatalf("expected ok response: %+v", resp)
	}
	if resp.Code != "60005007" {
		t.Fatalf("code %q, want 60005007", resp.Code)
	}
	if resp.Reference != "1 Peter 5:7" {
		t.Fatalf("reference %q", resp.Reference)
	}
	if resp.Text != "Throw all your anxiety on him." {
		t.Fatalf("text %q", resp.Text)
	}
	if !strings.Contains(resp.Rendered, "> Throw all your anxiety on him.") {
		t.Fatalf("rendered %q", resp.Rendered)
	}
	if env.hits.Load() != 1 {
		t.Fatalf("provider hits = %d, want 1", env.hits.Load())
	}
}

func TestHandleVerseNotRecognized(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/verse?q=Nonsense+1:1")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", rec.Code)
	}

	// Unrecoverable tier: the provider must not be contacted at all.
	if env.hits.Load() != 0 {
		t.Fatalf("provider hits = %d, want 0", env.hits.Load())
	}
}

func TestHandleVerseMissingQuery(t *testing.T) {
	env := newTestEnv(t)

	if rec := env.get(t, "/api/verse"); rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestHandleVerseSoftFailure(t *testing.T) {
	env := newTestEnv(t)
	env.provider.Close() // провайдер недоступен — ожидаем мягкую ошибку

	rec := env.get(t, "/api/verse?q=1+Peter+5:7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200 (soft failure)", rec.Code)
	}

	var resp verseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}

	if resp.OK {
		t.Fatal("expected ok=false")
	}
	if resp.ErrorKind != "network" {
		t.Fatalf("error_kind %q, want network", resp.ErrorKind)
	}
	if resp.Reference != "1 Peter 5:7" {
		t.Fatalf("reference lost: %q", resp.Reference)
	}
	if !strings.Contains(resp.Rendered, format.FetchErrorText) {
		t.Fatalf("rendered %q missing placeholder", resp.Rendered)
	}
}

func TestHandleHistory(t *testing.T) {
	env := newTestEnv(t)

	env.get(t, "/api/verse?q=John+3:16")
	env.get(t, "/api/verse?q=Nonsense+1:1")

	rec := env.get(t, "/api/history?limit=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var items []db.LookupRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 history records, got %d", len(items))
	}
	if items[0].Query != "Nonsense 1:1" || items[0].OK {
		t.Fatalf("unexpected newest record: %+v", items[0])
	}
	if items[1].Code != "43003016" {
		t.Fatalf("unexpected oldest record: %+v", items[1])
	}
}
