package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/recipe-api/internal/auth"
	"github.com/pkordes/recipe-api/internal/domain"
	"github.com/pkordes/recipe-api/internal/handler/gen"
)

// CreateUser handles POST /users.
func (s *Server) CreateUser(ctx context.Context, req gen.CreateUserRequestObject) (gen.CreateUserResponseObject, error) {
	user, err := s.users.Create(ctx, req.Body.Email, req.Body.Password, req.Body.Name)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateUser400JSONResponse{BadRequestJSONResponse: validationBody(err)}, nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.CreateUser409JSONResponse(errorBody(codeConflict, "a user with this email already exists")), nil
		}
		return nil, err
	}

	return gen.CreateUser201JSONResponse(userToResponse(user)), nil
}

// CreateToken handles POST /users/token.
// Bad credentials are a 400, matching a failed form submission rather than a
// missing token.
func (s *Server) CreateToken(ctx context.Context, req gen.CreateTokenRequestObject) (gen.CreateTokenResponseObject, error) {
	token, err := s.users.Authenticate(ctx, req.Body.Email, req.Body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			body := errorBody(codeInvalidCredentials, domain.ErrInvalidCredentials.Error())
			return gen.CreateToken400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(body)}, nil
		}
		return nil, err
	}

	return gen.CreateToken200JSONResponse{Token: token}, nil
}

// GetCurrentUser handles GET /users/me.
func (s *Server) GetCurrentUser(ctx context.Context, _ gen.GetCurrentUserRequestObject) (gen.GetCurrentUserResponseObject, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return gen.GetCurrentUser401JSONResponse{UnauthorizedJSONResponse: unauthorizedBody()}, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetCurrentUser404JSONResponse(notFoundBody("user not found")), nil
		}
		return nil, err
	}

	return gen.GetCurrentUser200JSONResponse(userToResponse(user)), nil
}

// userToResponse converts a domain.User to the generated type.
// The password hash never leaves the server.
func userToResponse(u domain.User) gen.User {
	return gen.User{
		Id:    u.ID,
		Email: openapi_types.Email(u.Email),
		Name:  u.Name,
	}
}
