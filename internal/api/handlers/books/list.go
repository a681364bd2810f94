package books

import (
	"net/http"

	"github.com/bookw0rm/bookshelf-api/internal/api/apperr"
	"github.com/bookw0rm/bookshelf-api/internal/api/httpx"
	"github.com/bookw0rm/bookshelf-api/internal/api/middlewares"
)

// List handles GET /books.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.Sto.List(r.Context())
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, books)
}

// Top handles GET /books/top: the six most upvoted books.
func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	books, err := h.Sto.Top(r.Context(), topN)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, books)
}

// Recent handles GET /books/recent/top: the six newest books.
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	books, err := h.Sto.Recent(r.Context(), topN)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, books)
}

// ByCategoryQuery handles GET /books/category?category=. No category
// means no filter: the whole collection comes back.
func (h *Handler) ByCategoryQuery(w http.ResponseWriter, r *http.Request) {
	h.byCategory(w, r, r.URL.Query().Get("category"))
}

// ByCategoryPath handles GET /books/categories/{category}, the path-param
// twin of ByCategoryQuery.
func (h *Handler) ByCategoryPath(w http.ResponseWriter, r *http.Request) {
	h.byCategory(w, r, r.PathValue("category"))
}

func (h *Handler) byCategory(w http.ResponseWriter, r *http.Request, category string) {
	books, err := h.Sto.ListByCategory(r.Context(), category)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, books)
}

// CategoryTotals handles GET /books/total/category.
func (h *Handler) CategoryTotals(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Sto.CountByCategory(r.Context())
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, counts)
}

// ByOwner handles GET /books/email?email=. The verified token identity
// must match the requested owner; a valid token for someone else's shelf
// is Forbidden, not Unauthorized.
func (h *Handler) ByOwner(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	tokenEmail, _ := middlewares.UserEmailFrom(r.Context())
	if tokenEmail != email {
		httpx.Forbidden(w)
		return
	}

	books, err := h.Sto.ListByOwner(r.Context(), email)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, books)
}
