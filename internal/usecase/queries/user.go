package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	LicenseNumber     *string    `json:"license_number,omitempty"`
	LicenseValidUntil *time.Time `json:"license_valid_until,omitempty"`
	IsActive          bool       `json:"is_active"`
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}
