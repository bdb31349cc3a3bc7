package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/recipe-api/internal/auth"
	"github.com/pkordes/recipe-api/internal/handler"
	"github.com/pkordes/recipe-api/internal/handler/gen"
)

// newHTTPHandler wires a Server with the given mocks into the generated chi
// router, the same way the router package does in production, minus the
// authentication middleware.
func newHTTPHandler(tags handler.TagServicer, users handler.UserServicer) http.Handler {
	srv := handler.NewServer(tags, users)
	strict := gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return gen.Handler(strict)
}

// asUser wraps h so every request carries userID as the authenticated caller,
// standing in for the authentication middleware.
func asUser(userID uuid.UUID, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
	})
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
