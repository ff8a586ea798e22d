package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func TestHeaderHandler(t *testing.T) {
	h := HeaderHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), map[string]string{"X-Frame-Options": "DENY"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if v := rec.Header().Get("X-Frame-Options"); v != "DENY" {
		t.Errorf("expected header DENY, got %q", v)
	}
}

func TestExpiresHandler(t *testing.T) {
	h := ExpiresHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), time.Minute, time.Hour)
	var tests = []struct {
		method, path string
		want         time.Duration
	}{
		{http.MethodGet, "/", time.Minute},
		{http.MethodGet, "/blog/hello", time.Minute},
		{http.MethodGet, "/static/site.css", time.Hour},
		{http.MethodGet, "/api/posts", 0},
		{http.MethodPost, "/contact", 0},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		v := rec.Header().Get("Expires")
		if tt.want == 0 {
			if v != "" {
				t.Errorf("%s %s: expected no Expires, got %q", tt.method, tt.path, v)
			}
			continue
		}
		e, err := time.Parse(time.RFC1123, v)
		if err != nil {
			t.Errorf("%s %s: %v", tt.method, tt.path, err)
			continue
		}
		if d := time.Until(e); d < tt.want-2*time.Second || d > tt.want+time.Second {
			t.Errorf("%s %s: expiry %s, want about %s", tt.method, tt.path, d, tt.want)
		}
	}
}

func TestErrorHandler(t *testing.T) {
	fsys := fstest.MapFS{"404.html": &fstest.MapFile{Data: []byte("custom not found")}}
	var tests = []struct {
		status      int
		contentType string
		body        string
		want        string
	}{
		{http.StatusNotFound, "text/html; charset=utf-8", "default", "custom not found"},
		{http.StatusNotFound, "application/json", `{"error":"x"}`, `{"error":"x"}`},
		{http.StatusInternalServerError, "text/html; charset=utf-8", "oops", "oops"},
		{http.StatusOK, "text/html; charset=utf-8", "fine", "fine"},
	}
	for _, tt := range tests {
		h := ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", tt.contentType)
			w.WriteHeader(tt.status)
			w.Write([]byte(tt.body))
		}), fsys)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		if rec.Code != tt.status {
			t.Errorf("expected status %d, got %d", tt.status, rec.Code)
		}
		if got := rec.Body.String(); got != tt.want {
			t.Errorf("status %d (%s): expected body %q, got %q", tt.status, tt.contentType, tt.want, got)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "Missing required fields")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("unexpected content type %q", ct)
	}
	if got := rec.Body.String(); got != `{"error":"Missing required fields"}` {
		t.Errorf("unexpected body %s", got)
	}

	rec = httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, make(chan int))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for an unencodable value, got %d", rec.Code)
	}
}

func TestHideSpecialFiles(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := HideSpecialFiles(ok)
	tests := []struct {
		path   string
		status int
	}{
		{"/static/site.css", http.StatusOK},
		{"/static/.env", http.StatusForbidden},
		{"/static/.git/config", http.StatusForbidden},
		{"/static/img/.hidden.png", http.StatusForbidden},
		{"/static/v1.2/app.js", http.StatusOK},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.status {
			t.Errorf("%s: expected %d, got %d", tt.path, tt.status, rec.Code)
		}
	}
}
