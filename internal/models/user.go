package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the local projection of an identity issued by the external
// auth provider. This service never authenticates users itself.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
