package validate

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/bookw0rm/bookshelf-api/internal/api/apperr"
	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// report violations under the wire field name, not the Go name
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return val
}

// Body decodes the request body into dst and validates it. On failure it
// writes a 400 Problem with per-field errors and returns false.
func Body(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return false
	}
	if err := v.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid payload")
			return false
		}
		apperr.Write(w, r, apperr.Problem{
			Status:      http.StatusBadRequest,
			Title:       "Bad Request",
			FieldErrors: fieldErrors(verrs),
		})
		return false
	}
	return true
}

func fieldErrors(verrs validator.ValidationErrors) []apperr.FieldError {
	out := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apperr.FieldError{
			Field:   fe.Field(),
			Code:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "too long (max " + fe.Param() + ")"
	case "min", "gte":
		return "value too small"
	case "len", "hexadecimal":
		return "malformed identifier"
	default:
		return "invalid value"
	}
}
