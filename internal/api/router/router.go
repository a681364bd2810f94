package router

import (
	"context"
	"net/http"

	"github.com/bookw0rm/bookshelf-api/internal/api/handlers"
	"github.com/bookw0rm/bookshelf-api/internal/api/handlers/books"
	"github.com/bookw0rm/bookshelf-api/internal/api/handlers/ratings"
	"github.com/bookw0rm/bookshelf-api/internal/api/handlers/search"
	"github.com/bookw0rm/bookshelf-api/internal/api/handlers/users"
	"github.com/bookw0rm/bookshelf-api/internal/api/middlewares"
	"github.com/bookw0rm/bookshelf-api/internal/security/token"
)

type Deps struct {
	Verifier token.Verifier
	Books    *books.Handler
	Ratings  *ratings.Handler
	Users    *users.Handler
	PingDB   func(ctx context.Context) error
}

// Router binds every endpoint. Auth coverage intentionally mirrors the
// frontend contract: note that DELETE /books/{id} and all /rating routes
// run unauthenticated while their sibling mutations do not.
func Router(d Deps) http.Handler {
	mux := http.NewServeMux()

	gate := func(h http.HandlerFunc) http.Handler {
		return middlewares.RequireAuth(d.Verifier, h)
	}

	// Root & health
	mux.HandleFunc("GET /{$}", handlers.RootHandler)
	mux.HandleFunc("GET /healthz", handlers.Healthz(d.PingDB))

	// Users
	mux.HandleFunc("POST /users", d.Users.Create)
	mux.HandleFunc("GET /users", d.Users.List)
	mux.HandleFunc("GET /users/all", d.Users.Exists)

	// Books (method-specific + 1.22 patterns)
	mux.HandleFunc("GET /books", d.Books.List)
	mux.Handle("POST /books", gate(d.Books.Create))
	mux.HandleFunc("GET /books/top", d.Books.Top)
	mux.HandleFunc("GET /books/recent/top", d.Books.Recent)
	mux.HandleFunc("GET /books/category", d.Books.ByCategoryQuery)
	mux.HandleFunc("GET /books/categories/{category}", d.Books.ByCategoryPath)
	mux.HandleFunc("GET /books/total/category", d.Books.CategoryTotals)
	mux.Handle("GET /books/email", gate(d.Books.ByOwner))
	mux.Handle("GET /books/{id}", gate(d.Books.Get))
	mux.Handle("PUT /books/{id}", gate(d.Books.Put))
	mux.Handle("PATCH /books/{id}", gate(d.Books.Upvote))
	mux.Handle("PATCH /books/status/{id}", gate(d.Books.SetStatus))
	mux.HandleFunc("DELETE /books/{id}", d.Books.Delete)
	mux.Handle("POST /books/{id}/cover-upload", gate(d.Books.CoverUpload))

	// Ratings
	mux.Handle("POST /ratings", gate(d.Ratings.Create))
	mux.HandleFunc("GET /ratings", d.Ratings.List)
	mux.HandleFunc("GET /rating/{bookId}", d.Ratings.ByBook)
	mux.HandleFunc("PATCH /rating/{id}", d.Ratings.UpdateReview)
	mux.HandleFunc("DELETE /rating/{id}", d.Ratings.Delete)

	// Search
	mux.Handle("GET /search/suggest", search.Suggest(d.Books.Sto))

	return mux
}
