package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/recipe-api/internal/domain"
	"github.com/pkordes/recipe-api/internal/handler"
	"github.com/pkordes/recipe-api/internal/handler/gen"
)

// ---- mock UserServicer ------------------------------------------------------

type mockUserServicer struct {
	create       func(ctx context.Context, email, password, name string) (domain.User, error)
	authenticate func(ctx context.Context, email, password string) (string, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.User, error)
}

func (m *mockUserServicer) Create(ctx context.Context, email, password, name string) (domain.User, error) {
	return m.create(ctx, email, password, name)
}
func (m *mockUserServicer) Authenticate(ctx context.Context, email, password string) (string, error) {
	return m.authenticate(ctx, email, password)
}
func (m *mockUserServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}

var _ handler.UserServicer = (*mockUserServicer)(nil)

func userFixture() domain.User {
	return domain.User{
		ID:           uuid.New(),
		Email:        "test@test.com",
		Name:         "Test",
		PasswordHash: "$2a$10$secret",
	}
}

// ---- POST /users -----------------------------------------------------------

func TestCreateUser_201(t *testing.T) {
	fixture := userFixture()
	svc := &mockUserServicer{
		create: func(_ context.Context, email, password, name string) (domain.User, error) {
			assert.Equal(t, "test@test.com", email)
			assert.Equal(t, "Test123", password)
			assert.Equal(t, "Test", name)
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{"email": "test@test.com", "password": "Test123", "name": "Test"})
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), fixture.PasswordHash)

	var resp gen.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.Id)
	assert.Equal(t, "test@test.com", string(resp.Email))
}

func TestCreateUser_400_Validation(t *testing.T) {
	svc := &mockUserServicer{
		create: func(context.Context, string, string, string) (domain.User, error) {
			return domain.User{}, fmt.Errorf("service.UserService.Create: %w: password must be at least 5 characters", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"email": "test@test.com", "password": "pw", "name": "Test"})
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "password must be at least 5 characters", resp.Error.Message)
}

func TestCreateUser_409_Conflict(t *testing.T) {
	svc := &mockUserServicer{
		create: func(context.Context, string, string, string) (domain.User, error) {
			return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", domain.ErrConflict)
		},
	}

	body := jsonBody(t, map[string]any{"email": "test@test.com", "password": "Test123", "name": "Test"})
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ---- POST /users/token -----------------------------------------------------

func TestCreateToken_200(t *testing.T) {
	svc := &mockUserServicer{
		authenticate: func(_ context.Context, email, password string) (string, error) {
			assert.Equal(t, "test@test.com", email)
			assert.Equal(t, "Test123", password)
			return "signed-token", nil
		},
	}

	body := jsonBody(t, map[string]any{"email": "test@test.com", "password": "Test123"})
	req := httptest.NewRequest(http.MethodPost, "/users/token", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp gen.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestCreateToken_400_InvalidCredentials(t *testing.T) {
	svc := &mockUserServicer{
		authenticate: func(context.Context, string, string) (string, error) {
			return "", fmt.Errorf("service.UserService.Authenticate: %w", domain.ErrInvalidCredentials)
		},
	}

	body := jsonBody(t, map[string]any{"email": "test@test.com", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/users/token", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "invalid_credentials", resp.Error.Code)
}

// ---- GET /users/me ---------------------------------------------------------

func TestGetCurrentUser_200(t *testing.T) {
	fixture := userFixture()
	svc := &mockUserServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.User, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	asUser(fixture.ID, newHTTPHandler(nil, svc)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp gen.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.Name, resp.Name)
}

func TestGetCurrentUser_401(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, &mockUserServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCurrentUser_404(t *testing.T) {
	svc := &mockUserServicer{
		getByID: func(context.Context, uuid.UUID) (domain.User, error) {
			return domain.User{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	asUser(uuid.New(), newHTTPHandler(nil, svc)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
