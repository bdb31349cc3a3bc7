// Package router assembles the HTTP handler for the Recipe API: chi, the
// shared middleware stack, the generated OpenAPI routes and the
// OpenAPI document itself.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/recipe-api/internal/handler"
	"github.com/pkordes/recipe-api/internal/handler/gen"
	"github.com/pkordes/recipe-api/internal/middleware"
	"github.com/pkordes/recipe-api/spec"
)

// Deps are the collaborators the router wires together.
type Deps struct {
	Logger       *slog.Logger
	Tags         handler.TagServicer
	Users        handler.UserServicer
	Tokens       middleware.TokenVerifier
	CORSOrigins  []string
	MaxBodyBytes int64
}

// New returns the fully wired http.Handler.
//
// Middleware is applied in order: RequestID → RealIP → SlogLogger → Recoverer
// → CORS → MaxBodySize. Authentication runs per route inside the generated
// wrapper, so only operations with a bearerAuth security requirement demand a
// token.
func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(d.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(d.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(d.MaxBodyBytes))

	r.Get("/openapi.yaml", serveSpec)

	srv := handler.NewServer(d.Tags, d.Users)
	strict := gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions(d.Logger))
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:  r,
		Middlewares: []gen.MiddlewareFunc{middleware.NewAuthenticator(d.Tokens, d.Logger)},
	})

	return r
}

func serveSpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
