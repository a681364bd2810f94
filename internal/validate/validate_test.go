package validate_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookw0rm/bookshelf-api/internal/models"
	"github.com/bookw0rm/bookshelf-api/internal/validate"
)

func decode(t *testing.T, body string, dst any) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ok := validate.Body(rec, req, dst)
	return rec, ok
}

func TestBody_ValidPayloadPasses(t *testing.T) {
	var b models.Book
	rec, ok := decode(t, `{"book_title":"A","user_email":"a@x.com"}`, &b)
	if !ok {
		t.Fatalf("valid payload rejected: %s", rec.Body.String())
	}
	if b.Title != "A" || b.OwnerEmail != "a@x.com" {
		t.Fatalf("decoded book = %+v", b)
	}
}

func TestBody_MalformedJSONIs400(t *testing.T) {
	var b models.Book
	rec, ok := decode(t, `{"book_title":`, &b)
	if ok {
		t.Fatal("malformed JSON accepted")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBody_ReportsWireFieldNames(t *testing.T) {
	var b models.Book
	rec, ok := decode(t, `{"user_email":"nope"}`, &b)
	if ok {
		t.Fatal("invalid payload accepted")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var problem struct {
		FieldErrors []struct {
			Field string `json:"field"`
			Code  string `json:"code"`
		} `json:"field_errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("bad problem body %q: %v", rec.Body.String(), err)
	}

	fields := map[string]string{}
	for _, fe := range problem.FieldErrors {
		fields[fe.Field] = fe.Code
	}
	if fields["book_title"] != "required" {
		t.Fatalf("book_title error = %q, want required (got %v)", fields["book_title"], fields)
	}
	if fields["user_email"] != "email" {
		t.Fatalf("user_email error = %q, want email (got %v)", fields["user_email"], fields)
	}
	if _, leaked := fields["Title"]; leaked {
		t.Fatal("Go field name leaked into the error report")
	}
}

func TestBody_ProblemContentType(t *testing.T) {
	var b models.Book
	rec, _ := decode(t, `{}`, &b)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestBody_OneofViolation(t *testing.T) {
	var b models.Book
	rec, ok := decode(t, `{"book_title":"A","user_email":"a@x.com","reading_status":"paused"}`, &b)
	if ok {
		t.Fatalf("unknown reading_status accepted: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "reading_status") {
		t.Fatalf("violation not attributed to reading_status: %s", rec.Body.String())
	}
}
