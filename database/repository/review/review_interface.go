package reviewRepo

import (
	"context"

	"servehub/models"
)

// ReviewRepository defines data access for reviews and the aggregate query
// the rating projection is recomputed from.
type ReviewRepository interface {
	// Upsert creates the review for (customer, provider) or updates the
	// existing one in place, returning the stored document and whether it
	// already existed.
	Upsert(ctx context.Context, review *models.Review) (existing bool, err error)
	// AggregateProviderRating computes mean rating and review count over every
	// review currently on file for the provider.
	AggregateProviderRating(ctx context.Context, providerID string) (average float64, total int, err error)
	// ListByProvider returns a provider's reviews, newest first.
	ListByProvider(ctx context.Context, providerID string) ([]models.Review, error)
}
