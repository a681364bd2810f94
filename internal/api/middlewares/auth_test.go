package middlewares_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/bookw0rm/bookshelf-api/internal/api/middlewares"
	"github.com/bookw0rm/bookshelf-api/internal/security/token"
)

type fakeVerifier struct {
	email string
	err   error
	calls int
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (token.Identity, error) {
	f.calls++
	if f.err != nil {
		return token.Identity{}, f.err
	}
	return token.Identity{Email: f.email}, nil
}

func authBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON body: %v", err)
	}
	return body
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	v := &fakeVerifier{email: "a@x.com"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	req := httptest.NewRequest("POST", "/books", nil)
	rec := httptest.NewRecorder()
	mw.RequireAuth(v, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := authBody(t, rec)["message"]; got != "Unauthorized Access" {
		t.Fatalf("message = %q, want %q", got, "Unauthorized Access")
	}
	if v.calls != 0 {
		t.Fatalf("verifier called %d times for a missing header, want 0", v.calls)
	}
}

func TestRequireAuth_NotBearer(t *testing.T) {
	v := &fakeVerifier{email: "a@x.com"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest("POST", "/books", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	mw.RequireAuth(v, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if v.calls != 0 {
		t.Fatalf("verifier called %d times for a non-bearer header, want 0", v.calls)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	v := &fakeVerifier{err: errors.New("expired")}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest("POST", "/books", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	mw.RequireAuth(v, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := authBody(t, rec)["message"]; got != "Unauthorized Access" {
		t.Fatalf("message = %q, want %q", got, "Unauthorized Access")
	}
}

func TestRequireAuth_AttachesEmail(t *testing.T) {
	v := &fakeVerifier{email: "a@x.com"}

	var gotEmail string
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, ok = mw.UserEmailFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/books", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	mw.RequireAuth(v, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !ok || gotEmail != "a@x.com" {
		t.Fatalf("context email = %q (ok=%v), want a@x.com", gotEmail, ok)
	}
}
