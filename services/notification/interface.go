package notification

import (
	"context"

	"servehub/models"
)

// Service defines fire-and-forget notifications for booking and review
// events. Implementations must never let a delivery failure surface as a
// failure of the triggering operation.
type Service interface {
	// NotifyBookingCreated emails both the customer and the provider about a
	// freshly created booking.
	NotifyBookingCreated(ctx context.Context, booking *models.Booking) error
	// NotifyBookingStatus emails the customer about a lifecycle change.
	NotifyBookingStatus(ctx context.Context, booking *models.Booking) error
	// NotifyReviewReceived emails the provider about a new or updated review.
	NotifyReviewReceived(ctx context.Context, review *models.Review) error
}
