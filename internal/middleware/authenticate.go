package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/recipe-api/internal/auth"
	"github.com/pkordes/recipe-api/internal/handler/gen"
)

// TokenVerifier resolves a bearer token to the user it was issued for.
// *auth.TokenIssuer satisfies it.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// NewAuthenticator returns a middleware that enforces bearer authentication on
// operations the OpenAPI document marks with the bearerAuth security scheme.
//
// It must be installed through gen.ChiServerOptions.Middlewares: the generated
// route wrapper places gen.BearerAuthScopes in the context of secured
// operations before running it. Requests to public operations pass through.
// On secured operations a missing or invalid token is answered with 401 before
// the request body is read; a valid one puts the user ID in the context via
// auth.WithUserID.
func NewAuthenticator(tokens TokenVerifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Context().Value(gen.BearerAuthScopes) == nil {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "authentication credentials were not provided")
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				log.DebugContext(r.Context(), "rejected bearer token", "path", r.URL.Path, "error", err)
				unauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(gen.ErrorResponse{
		Error: gen.ErrorDetail{Code: "unauthorized", Message: message},
	})
}
