package handler

import (
	"context"
	"errors"

	"github.com/pkordes/recipe-api/internal/auth"
	"github.com/pkordes/recipe-api/internal/domain"
	"github.com/pkordes/recipe-api/internal/handler/gen"
)

// ListTags handles GET /tags.
// Returns only the caller's tags, ordered by name descending.
func (s *Server) ListTags(ctx context.Context, _ gen.ListTagsRequestObject) (gen.ListTagsResponseObject, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return gen.ListTags401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody()}, nil
	}

	tags, err := s.tags.List(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return gen.ListTags401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody()}, nil
		}
		return nil, err
	}

	resp := make(gen.ListTags200JSONResponse, len(tags))
	for i, t := range tags {
		resp[i] = tagToResponse(t)
	}
	return resp, nil
}

// CreateTag handles POST /tags.
// The new tag is always owned by the caller; the body only supplies a name.
func (s *Server) CreateTag(ctx context.Context, req gen.CreateTagRequestObject) (gen.CreateTagResponseObject, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return gen.CreateTag401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody()}, nil
	}

	var name string
	if req.Body != nil {
		name = derefString(req.Body.Name)
	}

	tag, err := s.tags.Create(ctx, userID, name)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateTag400JSONResponse{BadRequestJSONResponse: validationBody(err)}, nil
		}
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotFound) {
			// The token named a user that is gone.
			return gen.CreateTag401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody()}, nil
		}
		return nil, err
	}

	return gen.CreateTag201JSONResponse(tagToResponse(tag)), nil
}

// tagToResponse converts a domain.Tag to its {id, name} wire form.
// The owner is deliberately not serialized.
func tagToResponse(t domain.Tag) gen.Tag {
	return gen.Tag{
		Id:   t.ID,
		Name: t.Name,
	}
}

// derefString returns the string a pointer refers to, or "" for nil.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
