package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"versebot/internal/db"
	"versebot/internal/format"
	"versebot/internal/resolver"
	"versebot/internal/service"
)

type Server struct {
	resolver *resolver.Resolver
	verses   *service.VerseClient
	store    *db.Store
	opts     format.Options
	locale   string
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func New(res *resolver.Resolver, verses *service.VerseClient, store *db.Store, opts format.Options, locale string) *Server {
	return &Server{
		resolver: res,
		verses:   verses,
		store:    store,
		opts:     opts,
		locale:   locale,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/verse", s.handleVerse)
	mux.HandleFunc("/api/history", s.handleHistory)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		mux.ServeHTTP(rec, r)
		log.Printf("http %s %s -> %d ua=%s", r.Method, r.URL.Path, rec.status, r.UserAgent())
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

type verseResponse struct {
	Reference string `json:"reference"`
	Code      string `json:"code"`
	URL       string `json:"url"`
	Text      string `json:"text"`
	Rendered  string `json:"rendered"`
	OK        bool   `json:"ok"`
	ErrorKind string `json:"error_kind,omitempty"`
}

func (s *Server) handleVerse(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "параметр q пустой"})
		return
	}

	ref, err := s.resolver.Resolve(query)
	if err != nil {
		// Первый уровень ошибок: ссылка не распознана, запрос не делаем.
		s.record(r, query, "", "", false)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": format.NotRecognizedText})
		return
	}

	result, fetchErr := s.verses.FetchVerse(r.Context(), ref)
	s.record(r, query, result.Code, result.Reference, fetchErr == nil)

	resp := verseResponse{
		Reference: result.Reference,
		Code:      result.Code,
		URL:       result.URL,
		Text:      result.Text,
		Rendered:  s.opts.Render(result, fetchErr),
		OK:        fetchErr == nil,
	}

	switch {
	case errors.Is(fetchErr, service.ErrNetwork):
		resp.ErrorKind = "network"
	case errors.Is(fetchErr, service.ErrNoVerse):
		resp.ErrorKind = "no_verse"
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit некорректен"})
			return
		}
		limit = n
	}

	items, err := s.store.RecentLookups(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if items == nil {
		items = []db.LookupRecord{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) record(r *http.Request, query, code, reference string, ok bool) {
	if s.store == nil {
		return
	}
	if err := s.store.RecordLookup(r.Context(), query, code, reference, s.locale, ok); err != nil {
		log.Printf("RecordLookup error: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
