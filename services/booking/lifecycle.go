package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "servehub/database/repository/booking"
	"servehub/models"
)

// SetStatus drives a booking along one edge of the lifecycle graph. The
// transition table is checked against the booking's current status, and the
// storage write re-pins that status in its filter, so a concurrent transition
// cannot produce an illegal edge. Role-appropriateness of the caller is the
// route middleware's concern, not this method's.
func (s *DefaultBookingService) SetStatus(ctx context.Context, bookingID string, next models.BookingStatus) (*models.Booking, error) {
	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching booking: %w", err)
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
	}

	updated, err := s.Repo.UpdateStatusIfCurrent(ctx, bookingID, current.Status, next)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			// The status moved between the read and the guarded write; the
			// requested edge is no longer legal.
			return nil, fmt.Errorf("%w: booking no longer %s", ErrInvalidTransition, current.Status)
		}
		return nil, fmt.Errorf("updating booking status: %w", err)
	}

	s.notifyAsync(func(ctx context.Context) error {
		return s.Notifier.NotifyBookingStatus(ctx, updated)
	}, "status changed", updated.ID)

	return updated, nil
}
