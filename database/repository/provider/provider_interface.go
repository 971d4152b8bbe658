package providerRepo

import (
	"context"
	"errors"

	"servehub/models"
)

// ErrNotFound is returned when no provider matches the given ID.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository defines data access for provider records. The booking
// core reads availability and charges; the only fields it writes are the
// rating projection and the provider-owned weekly availability.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// UpdateAvailability replaces a provider's weekly availability.
	UpdateAvailability(ctx context.Context, id string, availability []models.DayAvailability) error
	// UpdateRating overwrites the cached rating projection fields.
	UpdateRating(ctx context.Context, id string, averageRating float64, totalReviews int) error
	// ListIDs returns the IDs of all providers, for reconcile sweeps.
	ListIDs(ctx context.Context) ([]string, error)
}
