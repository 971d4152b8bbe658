package userRepo

import (
	"context"
	"errors"

	"servehub/models"
)

// ErrNotFound is returned when no user matches the given ID.
var ErrNotFound = errors.New("user not found")

// UserRepository defines the read-only user access the booking core needs:
// display fields for read-time joins and email addresses for notifications.
// Account management is owned by the identity service.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}
