package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bookw0rm/bookshelf-api/internal/api/httpx"
	"github.com/bookw0rm/bookshelf-api/internal/security/token"
)

// RequireAuth extracts the bearer token, delegates to the verifier, and
// injects the verified email into the request context. A missing header
// short-circuits without calling the verifier at all.
func RequireAuth(v token.Verifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if raw == "" {
			httpx.Unauthorized(w)
			return
		}
		tokenStr, err := bearer(raw)
		if err != nil {
			httpx.Unauthorized(w)
			return
		}
		id, err := v.Verify(r.Context(), tokenStr)
		if err != nil {
			httpx.Unauthorized(w)
			return
		}

		ctx := WithUserEmail(r.Context(), id.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearer(h string) (string, error) {
	if !strings.HasPrefix(h, "Bearer ") && !strings.HasPrefix(h, "bearer ") {
		return "", errors.New("no bearer")
	}
	return strings.TrimSpace(h[len("Bearer "):]), nil
}
