package middleware

import (
	"net/http"
	"strings"

	h "aurapoll/internal/delivery/http/helpers"
	"aurapoll/internal/domain"
)

// RequireManageToken returns a wrapper that validates the Bearer manage
// token and checks that it is scoped to the event in the request path. If
// the token is missing or invalid it responds with 401; if it belongs to a
// different event it responds with 403. In both cases next is not called.
func RequireManageToken(verifier domain.ManageTokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			eventID, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			if eventID != r.PathValue("eventID") {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "token is not valid for this event")
				return
			}
			next(w, r)
		}
	}
}
