package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pkordes/recipe-api/internal/domain"
	"github.com/pkordes/recipe-api/internal/repo"
)

// TokenIssuer mints an access token for an authenticated user.
// *auth.TokenIssuer satisfies it.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// UserService implements registration, login and lookup of Users.
type UserService struct {
	users  repo.UserRepo
	tokens TokenIssuer
	cost   int
}

// UserOption configures a UserService.
type UserOption func(*UserService)

// WithBcryptCost overrides the bcrypt work factor. Tests use bcrypt.MinCost.
func WithBcryptCost(cost int) UserOption {
	return func(s *UserService) { s.cost = cost }
}

// NewUserService constructs a UserService backed by the provided UserRepo
// and token issuer.
func NewUserService(users repo.UserRepo, tokens TokenIssuer, opts ...UserOption) *UserService {
	s := &UserService{users: users, tokens: tokens, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newUserInput is the validated shape of a registration request.
// bcrypt only looks at the first 72 bytes, so longer passwords are refused.
type newUserInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=5,max=72"`
	Name     string `validate:"required,max=255"`
}

// Create registers a user with a bcrypt-hashed password.
// Returns domain.ErrValidation for bad input and domain.ErrConflict when the
// email address is already registered.
func (s *UserService) Create(ctx context.Context, email, password, name string) (domain.User, error) {
	in := newUserInput{
		Email:    normalizeEmail(email),
		Password: password,
		Name:     strings.TrimSpace(name),
	}
	if err := validateStruct(in); err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}
	return user, nil
}

// Authenticate checks email and password and returns a fresh access token.
// An unknown email and a wrong password both yield domain.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("service.UserService.Authenticate: %w", domain.ErrInvalidCredentials)
		}
		return "", fmt.Errorf("service.UserService.Authenticate: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("service.UserService.Authenticate: %w", domain.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("service.UserService.Authenticate: %w", err)
	}
	return token, nil
}

// GetByID returns a single user by ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.GetByID: %w", err)
	}
	return user, nil
}

// normalizeEmail trims whitespace and lower-cases the domain part, leaving
// the local part untouched.
func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
