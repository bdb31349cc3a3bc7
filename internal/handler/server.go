// Package handler implements the HTTP handlers for the Recipe API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource files (health.go, tag.go, user.go) but all
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/recipe-api/internal/domain"
)

// TagServicer defines the business operations the tag handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TagServicer interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (domain.Tag, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error)
}

// UserServicer defines the business operations the user handlers depend on.
type UserServicer interface {
	Create(ctx context.Context, email, password, name string) (domain.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it via gen.NewStrictHandlerWithOptions(server, nil, handler.StrictOptions(log)).
type Server struct {
	tags  TagServicer
	users UserServicer
}

// NewServer constructs the Server with all its dependencies.
// Pass nil for a dependency a test does not exercise.
func NewServer(tags TagServicer, users UserServicer) *Server {
	return &Server{tags: tags, users: users}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}
