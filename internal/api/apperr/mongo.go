package apperr

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FromMongo maps a driver error to a Problem. Returns (Problem, true) if
// the error is one the client can act on; unrecognized errors map to a
// generic 500 with mapped=false so callers can log them.
func FromMongo(err error) (Problem, bool) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return Problem{Status: http.StatusNotFound, Title: "Not Found"}, true

	case errors.Is(err, primitive.ErrInvalidHex):
		return Problem{
			Status: http.StatusBadRequest,
			Title:  "Bad Request",
			FieldErrors: []FieldError{
				{Field: "id", Code: "invalid", Message: "malformed document id"},
			},
		}, true

	case mongo.IsDuplicateKeyError(err):
		return Problem{
			Status: http.StatusConflict,
			Title:  "Conflict",
			FieldErrors: []FieldError{
				{Field: "resource", Code: "unique", Message: "value already exists"},
			},
		}, true

	case mongo.IsTimeout(err),
		mongo.IsNetworkError(err),
		errors.Is(err, context.DeadlineExceeded):
		return Problem{
			Status: http.StatusServiceUnavailable,
			Title:  "Store Unavailable",
			Detail: "database did not respond",
		}, true
	}

	return Problem{Status: http.StatusInternalServerError, Title: "Store Error"}, false
}

// WriteStore writes the Problem for a failed store call.
func WriteStore(w http.ResponseWriter, r *http.Request, err error) {
	p, _ := FromMongo(err)
	Write(w, r, p)
}
