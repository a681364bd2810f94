package users

import (
	"context"
	"net/http"

	"github.com/bookw0rm/bookshelf-api/internal/api/apperr"
	"github.com/bookw0rm/bookshelf-api/internal/api/httpx"
	"github.com/bookw0rm/bookshelf-api/internal/models"
	"github.com/bookw0rm/bookshelf-api/internal/validate"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store interface {
	Insert(ctx context.Context, u models.User) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type Handler struct {
	Sto Store
}

func NewHandler(sto Store) *Handler {
	return &Handler{Sto: sto}
}

// Create handles POST /users: store the profile the frontend sends after
// a signup. Public by design; the identity provider owns the account.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if !validate.Body(w, r, &u) {
		return
	}

	id, err := h.Sto.Insert(r.Context(), u)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"data":   map[string]string{"inserted_id": id.Hex()},
	})
}

// List handles GET /users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.Sto.List(r.Context())
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, all)
}

// Exists handles GET /users/all?email=. A missing email parameter is
// answered without touching the store. The bare {"exists":bool} shape is
// a frontend contract and stays outside the response envelope.
func (h *Handler) Exists(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"exists": false})
		return
	}

	exists, err := h.Sto.ExistsByEmail(r.Context(), email)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}
