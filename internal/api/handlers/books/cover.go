package books

import (
	"net/http"
	"strings"

	"github.com/bookw0rm/bookshelf-api/internal/api/apperr"
	"github.com/bookw0rm/bookshelf-api/internal/api/httpx"
	"github.com/bookw0rm/bookshelf-api/internal/validate"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type coverUploadPayload struct {
	ContentType string `json:"content_type" validate:"required,oneof=image/jpeg image/png image/webp"`
}

var coverExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// CoverUpload handles POST /books/{id}/cover-upload: a presigned PUT URL
// for the cover object plus the public URL to save as cover_photo. The
// book must exist first so orphan objects don't pile up under random ids.
func (h *Handler) CoverUpload(w http.ResponseWriter, r *http.Request) {
	if h.Covers == nil {
		apperr.WriteStatus(w, r, http.StatusServiceUnavailable,
			"Cover Storage Unavailable", "no object storage configured")
		return
	}

	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		apperr.BadID(w, r)
		return
	}

	var p coverUploadPayload
	if !validate.Body(w, r, &p) {
		return
	}

	if _, err := h.Sto.GetByID(r.Context(), id); err != nil {
		apperr.WriteStore(w, r, err)
		return
	}

	key := "covers/" + id.Hex() + coverExt[strings.ToLower(p.ContentType)]
	uploadURL, err := h.Covers.GeneratePresignedUploadURL(r.Context(), key, p.ContentType)
	if err != nil {
		apperr.WriteStatus(w, r, http.StatusBadGateway,
			"Cover Storage Error", "could not presign upload")
		return
	}

	httpx.OK(w, map[string]string{
		"upload_url": uploadURL,
		"public_url": h.Covers.PublicURL(key),
	})
}
