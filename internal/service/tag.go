package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/recipe-api/internal/domain"
	"github.com/pkordes/recipe-api/internal/repo"
)

// TagService implements business logic for Tag operations.
// Every operation takes the caller's user ID; a tag is only ever created for,
// and listed to, its owner.
type TagService struct {
	tags repo.TagRepo
}

// NewTagService constructs a TagService backed by the provided TagRepo.
func NewTagService(tags repo.TagRepo) *TagService {
	return &TagService{tags: tags}
}

// tagInput is the validated shape of a create request.
type tagInput struct {
	Name string `validate:"required,max=255"`
}

// Create validates name and persists a new tag owned by userID.
// Surrounding whitespace is trimmed; an empty result is a validation error.
func (s *TagService) Create(ctx context.Context, userID uuid.UUID, name string) (domain.Tag, error) {
	if userID == uuid.Nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", domain.ErrUnauthorized)
	}

	in := tagInput{Name: strings.TrimSpace(name)}
	if err := validateStruct(in); err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", err)
	}

	tag, err := s.tags.Create(ctx, userID, in.Name)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.Create: %w", err)
	}
	return tag, nil
}

// List returns the tags owned by userID, ordered by name descending.
// The result is never nil.
func (s *TagService) List(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("service.TagService.List: %w", domain.ErrUnauthorized)
	}

	tags, err := s.tags.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TagService.List: %w", err)
	}
	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}
