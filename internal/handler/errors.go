package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/recipe-api/internal/domain"
	"github.com/pkordes/recipe-api/internal/handler/gen"
)

// Error codes carried in gen.ErrorDetail.Code.
const (
	codeValidation         = "validation_error"
	codeUnauthorized       = "unauthorized"
	codeInvalidCredentials = "invalid_credentials"
	codeConflict           = "conflict"
	codeNotFound           = "not_found"
	codeInternal           = "internal_error"
)

// errorBody builds the standard error envelope.
func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler is the layer that knows
// what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody(codeNotFound, message)
}

// validationBody returns a 400 body for a domain validation failure.
func validationBody(err error) gen.BadRequestJSONResponse {
	return gen.BadRequestJSONResponse(errorBody(codeValidation, unwrapMessage(err)))
}

// unauthorizedBody returns the 401 body used when no caller is authenticated.
func unauthorizedBody() gen.UnauthorizedJSONResponse {
	return gen.UnauthorizedJSONResponse(errorBody(codeUnauthorized, "authentication credentials were not provided"))
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TagService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	sentinel := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, sentinel); i >= 0 {
		return msg[i+len(sentinel):]
	}
	return msg
}

// StrictOptions returns the strict-server options shared by main and tests.
// Undecodable request bodies become a JSON 400 (413 when the body limit was
// hit); unexpected handler errors are logged and become a JSON 500 that does
// not leak the error text.
func StrictOptions(log *slog.Logger) gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorBody(codeValidation, "request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorBody(codeValidation, err.Error()))
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
			)
			writeJSON(w, http.StatusInternalServerError, errorBody(codeInternal, "internal server error"))
		},
	}
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
