package booking

import (
	"context"

	"servehub/models"
)

// CreateBookingRequest carries the caller-supplied fields of a new booking.
// Price is never part of the request; it is snapshotted from the provider's
// current charges at creation time.
type CreateBookingRequest struct {
	CustomerID string
	ProviderID string
	Service    string
	Date       string
	Time       string
}

// Service is the booking core: slot catalog, ledger admission, lifecycle and
// listings.
type Service interface {
	// GetAvailableSlots returns the full slot grid for a provider/date with
	// each slot tagged available or taken.
	GetAvailableSlots(ctx context.Context, providerID, date string) (*models.SlotCatalog, error)
	// GetTakenSlots returns the raw taken set for a provider/date.
	GetTakenSlots(ctx context.Context, providerID, date string) ([]string, error)
	// CreateBooking admits a new pending booking or fails with ErrSlotTaken.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	// SetStatus drives the booking lifecycle along one legal edge.
	SetStatus(ctx context.Context, bookingID string, next models.BookingStatus) (*models.Booking, error)
	// ListForCustomer returns a customer's bookings, most recent first, with
	// provider display data attached.
	ListForCustomer(ctx context.Context, customerID string, page, limit int) ([]models.BookingView, error)
	// ListForProvider returns a provider's bookings, most recent first, with
	// customer display data attached.
	ListForProvider(ctx context.Context, providerID string, page, limit int) ([]models.BookingView, error)
}
