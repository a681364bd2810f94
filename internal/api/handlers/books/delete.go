package books

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/bookw0rm/bookshelf-api/internal/api/apperr"
	"github.com/bookw0rm/bookshelf-api/internal/api/httpx"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Delete handles DELETE /books/{id}. A count of zero is a success, not an
// error: deleting an already-deleted book is idempotent.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		apperr.BadID(w, r)
		return
	}

	n, err := h.Sto.Delete(r.Context(), id)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}

	if n > 0 && h.Covers != nil {
		go h.cleanupCovers(id.Hex())
	}

	httpx.OK(w, map[string]int64{"deleted_count": n})
}

// cleanupCovers is best effort: the extension isn't recorded, so try all
// of them. Missing objects delete as no-ops.
func (h *Handler) cleanupCovers(hexID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, ext := range coverExt {
		if err := h.Covers.DeleteObject(ctx, "covers/"+hexID+ext); err != nil {
			log.Printf("[Covers] cleanup %s%s: %v\n", hexID, ext, err)
		}
	}
}
