// Package domain contains the core data types for the Recipe API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a short label a user attaches to their recipes.
// Tags are private: every tag has exactly one owner and is never visible to
// anyone else. The owner is fixed when the tag is created.
type Tag struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}
