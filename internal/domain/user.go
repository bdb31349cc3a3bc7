package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated principal. Users own zero or more Tags.
// PasswordHash holds a bcrypt hash and must never leave the service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
