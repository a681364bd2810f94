package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mw "github.com/bookw0rm/bookshelf-api/internal/api/middlewares"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	mw.SecurityHeaders(okHandler()).ServeHTTP(rec, req)

	tests := []struct {
		header   string
		expected string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"Referrer-Policy", "no-referrer"},
		{"Content-Security-Policy", "default-src 'self'"},
	}
	for _, tt := range tests {
		if got := rec.Header().Get(tt.header); got != tt.expected {
			t.Errorf("header %s = %q, want %q", tt.header, got, tt.expected)
		}
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Error("expected Cache-Control header")
	}
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = mw.GetRequestID(r)
	})

	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	mw.RequestID(next).ServeHTTP(rec, req)

	if seen == "" {
		t.Fatal("request id not set in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("response header %q != context id %q", got, seen)
	}
}

func TestRequestID_KeepsValidIncoming(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/books", nil)
	req.Header.Set("X-Request-ID", "client-id-42")
	rec := httptest.NewRecorder()
	mw.RequestID(next).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "client-id-42" {
		t.Fatalf("request id = %q, want client-id-42", got)
	}
}

func TestRequestID_ReplacesGarbage(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/books", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces\n")
	rec := httptest.NewRecorder()
	mw.RequestID(next).ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-ID")
	if got == "" || strings.Contains(got, " ") {
		t.Fatalf("garbage id not replaced, got %q", got)
	}
}

func TestResponseTime_SetsHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	mw.ResponseTime(okHandler()).ServeHTTP(rec, req)

	if rec.Header().Get("X-Response-Time") == "" {
		t.Fatal("expected X-Response-Time header")
	}
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest("GET", "/books", nil)
	rec := httptest.NewRecorder()
	mw.Recovery(panicking).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Fatal("panic value leaked to the client")
	}
}

func TestBodySizeLimit_OnlyForWriteMethods(t *testing.T) {
	// GET keeps its body untouched
	req := httptest.NewRequest("GET", "/books", strings.NewReader("x"))
	origBody := req.Body
	var sawSame bool
	check := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSame = r.Body == origBody
	})
	rec := httptest.NewRecorder()
	mw.BodySizeLimit(check).ServeHTTP(rec, req)
	if !sawSame {
		t.Fatal("GET body should not be wrapped")
	}

	// POST gets wrapped
	req = httptest.NewRequest("POST", "/books", strings.NewReader("x"))
	origBody = req.Body
	rec = httptest.NewRecorder()
	mw.BodySizeLimit(check).ServeHTTP(rec, req)
	if sawSame {
		t.Fatal("POST body should be wrapped by MaxBytesReader")
	}
}

func TestHPP_DropsUnknownAndRepeatedParams(t *testing.T) {
	var query map[string][]string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
	})

	req := httptest.NewRequest("GET", "/books/category?category=Fiction&category=Sci-Fi&evil=1", nil)
	rec := httptest.NewRecorder()
	mw.HPP(mw.DefaultHPPOptions())(next).ServeHTTP(rec, req)

	if got := query["category"]; len(got) != 1 || got[0] != "Fiction" {
		t.Fatalf("category = %v, want [Fiction]", got)
	}
	if _, ok := query["evil"]; ok {
		t.Fatal("non-whitelisted param survived")
	}
}
