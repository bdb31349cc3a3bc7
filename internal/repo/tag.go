package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/recipe-api/internal/domain"
)

// TagRepo defines the persistence operations for Tags.
// Every operation is scoped by the owning user's ID; there is no way to
// read or write a tag without naming its owner.
type TagRepo interface {
	// Create inserts a tag owned by userID and returns the persisted record
	// (with DB-generated id and created_at populated).
	Create(ctx context.Context, userID uuid.UUID, name string) (domain.Tag, error)

	// ListByUser returns all tags owned by userID, ordered by name descending.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error)

	// Exists reports whether userID owns a tag with exactly this name.
	Exists(ctx context.Context, userID uuid.UUID, name string) (bool, error)
}

// pgTagRepo is the Postgres implementation of TagRepo.
type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

// Create inserts a new tag row. A user_id that does not reference an
// existing user fails on the foreign key and is reported as domain.ErrNotFound.
func (r *pgTagRepo) Create(ctx context.Context, userID uuid.UUID, name string) (domain.Tag, error) {
	const q = `
		INSERT INTO tags (user_id, name)
		VALUES (@user_id, @name)
		RETURNING id, user_id, name, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "name": name})
	result, err := scanTag(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Tag{}, fmt.Errorf("repo.TagRepo.Create: user: %w", domain.ErrNotFound)
		}
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.Create: %w", err)
	}
	return result, nil
}

// ListByUser returns the user's tags, name descending. Ties on name are
// broken by id so the order is stable across calls.
func (r *pgTagRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	const q = `
		SELECT id, user_id, name, created_at
		FROM tags
		WHERE user_id = @user_id
		ORDER BY name DESC, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TagRepo.ListByUser: scan: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TagRepo.ListByUser: rows: %w", err)
	}
	return tags, nil
}

// Exists reports whether the user owns a tag with the given name.
func (r *pgTagRepo) Exists(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM tags
			WHERE user_id = @user_id
			  AND name    = @name
		)`

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "name": name}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repo.TagRepo.Exists: %w", err)
	}
	return exists, nil
}

// scanTag maps a single database row into a domain.Tag.
func scanTag(s scanner) (domain.Tag, error) {
	var (
		t      domain.Tag
		id     pgtype.UUID
		userID pgtype.UUID
	)
	err := s.Scan(&id, &userID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tag{}, domain.ErrNotFound
		}
		return domain.Tag{}, err
	}
	t.ID = uuid.UUID(id.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	return t, nil
}
