package bookingRepo

import (
	"context"
	"errors"

	"servehub/models"
)

// ErrDuplicateSlot is returned when an insert collides with the partial
// unique index on (provider_id, date, time) over non-cancelled bookings.
var ErrDuplicateSlot = errors.New("slot already booked")

// ErrNotFound is returned when no booking matches the given criteria.
var ErrNotFound = errors.New("booking not found")

// ListOptions controls pagination for booking listings. A Limit of 0 returns
// everything.
type ListOptions struct {
	Page  int
	Limit int
}

// BookingRepository defines data access for the booking ledger.
type BookingRepository interface {
	// Create inserts a new booking. The storage-level uniqueness guard makes
	// the admission check atomic: a concurrent insert for the same
	// (provider, date, time) yields ErrDuplicateSlot.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatusIfCurrent sets the status of a booking only if its current
	// status still matches the expected value, returning the updated record.
	UpdateStatusIfCurrent(ctx context.Context, id string, current, next models.BookingStatus) (*models.Booking, error)
	// TakenSlots returns the time labels of all non-cancelled bookings for a
	// provider on a date.
	TakenSlots(ctx context.Context, providerID, date string) ([]string, error)
	// ListByCustomer returns a customer's bookings, most recent first.
	ListByCustomer(ctx context.Context, customerID string, opts ListOptions) ([]models.Booking, error)
	// ListByProvider returns a provider's bookings, most recent first.
	ListByProvider(ctx context.Context, providerID string, opts ListOptions) ([]models.Booking, error)
	// HasCompletedBooking reports whether the customer has at least one
	// completed booking with the provider.
	HasCompletedBooking(ctx context.Context, customerID, providerID string) (bool, error)
}
