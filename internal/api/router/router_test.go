package router_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookw0rm/bookshelf-api/internal/api/handlers/books"
	"github.com/bookw0rm/bookshelf-api/internal/api/handlers/ratings"
	"github.com/bookw0rm/bookshelf-api/internal/api/handlers/users"
	"github.com/bookw0rm/bookshelf-api/internal/api/router"
	"github.com/bookw0rm/bookshelf-api/internal/models"
	"github.com/bookw0rm/bookshelf-api/internal/security/token"
	"github.com/bookw0rm/bookshelf-api/internal/store/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubBookStore struct{}

func (stubBookStore) List(context.Context) ([]models.Book, error) { return []models.Book{}, nil }
func (stubBookStore) ListByCategory(context.Context, string) ([]models.Book, error) {
	return []models.Book{}, nil
}
func (stubBookStore) ListByOwner(context.Context, string) ([]models.Book, error) {
	return []models.Book{}, nil
}
func (stubBookStore) Top(context.Context, int64) ([]models.Book, error) {
	return []models.Book{}, nil
}
func (stubBookStore) Recent(context.Context, int64) ([]models.Book, error) {
	return []models.Book{}, nil
}
func (stubBookStore) GetByID(context.Context, primitive.ObjectID) (*models.Book, error) {
	return &models.Book{}, nil
}
func (stubBookStore) CountByCategory(context.Context) ([]models.CategoryCount, error) {
	return []models.CategoryCount{}, nil
}
func (stubBookStore) Insert(context.Context, models.Book) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}
func (stubBookStore) Replace(context.Context, primitive.ObjectID, models.BookUpdate) (shared.UpdateCounts, error) {
	return shared.UpdateCounts{}, nil
}
func (stubBookStore) SetStatus(context.Context, primitive.ObjectID, string) (shared.UpdateCounts, error) {
	return shared.UpdateCounts{}, nil
}
func (stubBookStore) IncrementUpvote(context.Context, primitive.ObjectID) (shared.UpdateCounts, error) {
	return shared.UpdateCounts{}, nil
}
func (stubBookStore) Delete(context.Context, primitive.ObjectID) (int64, error) { return 0, nil }

type stubRatingStore struct{}

func (stubRatingStore) Insert(_ context.Context, r models.Rating) (models.Rating, error) {
	return r, nil
}
func (stubRatingStore) List(context.Context) ([]models.Rating, error) {
	return []models.Rating{}, nil
}
func (stubRatingStore) ListByBook(context.Context, string) ([]models.Rating, error) {
	return []models.Rating{}, nil
}
func (stubRatingStore) UpdateReview(context.Context, primitive.ObjectID, string) (shared.UpdateCounts, error) {
	return shared.UpdateCounts{}, nil
}
func (stubRatingStore) Delete(context.Context, primitive.ObjectID) (int64, error) { return 0, nil }

type stubUserStore struct{}

func (stubUserStore) Insert(context.Context, models.User) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}
func (stubUserStore) List(context.Context) ([]models.User, error) { return []models.User{}, nil }
func (stubUserStore) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}

type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, tokenStr string) (token.Identity, error) {
	if tokenStr == "good" {
		return token.Identity{Email: "a@x.com"}, nil
	}
	return token.Identity{}, errors.New("bad token")
}

func testRouter() http.Handler {
	return router.Router(router.Deps{
		Verifier: stubVerifier{},
		Books:    books.NewHandler(stubBookStore{}, nil),
		Ratings:  ratings.NewHandler(stubRatingStore{}),
		Users:    users.NewHandler(stubUserStore{}),
		PingDB:   func(context.Context) error { return nil },
	})
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RootServesPlainText(t *testing.T) {
	rec := do(t, testRouter(), "GET", "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "server run" {
		t.Fatalf("body = %q, want server run", got)
	}
}

func TestRouter_RootPatternDoesNotSwallowOtherPaths(t *testing.T) {
	rec := do(t, testRouter(), "GET", "/definitely-not-a-route")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRouter_PublicRoutesNeedNoToken(t *testing.T) {
	h := testRouter()
	for _, target := range []string{
		"/books", "/books/top", "/books/recent/top",
		"/books/category", "/books/total/category",
		"/ratings", "/users", "/users/all",
		"/search/suggest?q=go", "/healthz",
	} {
		rec := do(t, h, "GET", target)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want 200: %s", target, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_ProtectedRoutesRejectMissingToken(t *testing.T) {
	h := testRouter()
	id := primitive.NewObjectID().Hex()
	cases := []struct{ method, target string }{
		{"POST", "/books"},
		{"GET", "/books/email"},
		{"GET", "/books/" + id},
		{"PUT", "/books/" + id},
		{"PATCH", "/books/" + id},
		{"PATCH", "/books/status/" + id},
		{"POST", "/books/" + id + "/cover-upload"},
		{"POST", "/ratings"},
	}
	for _, tc := range cases {
		rec := do(t, h, tc.method, tc.target)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s = %d, want 401", tc.method, tc.target, rec.Code)
		}
	}
}

func TestRouter_ValidTokenPassesTheGate(t *testing.T) {
	h := testRouter()
	id := primitive.NewObjectID().Hex()

	req := httptest.NewRequest("PATCH", "/books/"+id, nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_LiteralSegmentsBeatWildcards(t *testing.T) {
	h := testRouter()

	// /books/top must route to the listing, not GET /books/{id} (which is
	// gated and would 401 without a token).
	rec := do(t, h, "GET", "/books/top")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /books/top = %d, want 200 via the literal route", rec.Code)
	}

	rec = do(t, h, "GET", "/books/email")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET /books/email = %d, want the gated owner route (401)", rec.Code)
	}
}

func TestRouter_DeleteBookIsUngated(t *testing.T) {
	rec := do(t, testRouter(), "DELETE", "/books/"+primitive.NewObjectID().Hex())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}
