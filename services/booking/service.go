package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "servehub/database/repository/booking"
	providerRepo "servehub/database/repository/provider"
	userRepo "servehub/database/repository/user"
	"servehub/models"
	"servehub/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of Service.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	UserRepo     userRepo.UserRepository
	Notifier     notification.Service
	Cache        *redis.Client
	Grid         SlotGrid
	Logger       *zap.Logger
}

// CreateBooking validates the request, snapshots the provider's current rate
// into the booking price and inserts a pending record. The insert is the
// admission check: the ledger's partial unique index rejects a second
// non-cancelled booking for the same (provider, date, time) no matter how the
// concurrent requests interleave. Notifications go out after the commit and
// never affect its outcome.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	provider, err := s.ProviderRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching provider: %w", err)
	}

	now := time.Now()
	booking := &models.Booking{
		ID:         uuid.New().String(),
		CustomerID: req.CustomerID,
		ProviderID: req.ProviderID,
		Service:    req.Service,
		Date:       req.Date,
		Time:       req.Time,
		Price:      provider.Charges,
		Status:     models.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	s.notifyAsync(func(ctx context.Context) error {
		return s.Notifier.NotifyBookingCreated(ctx, booking)
	}, "booking created", booking.ID)

	return booking, nil
}

func (s *DefaultBookingService) validateCreate(req CreateBookingRequest) error {
	if req.CustomerID == "" {
		return newValidationError("customerId", "required")
	}
	if req.ProviderID == "" {
		return newValidationError("providerId", "required")
	}
	if strings.TrimSpace(req.Service) == "" {
		return newValidationError("service", "required")
	}
	if _, err := dayOfWeek(req.Date); err != nil {
		return newValidationError("date", err.Error())
	}
	if !s.Grid.Contains(req.Time) {
		return newValidationError("time", fmt.Sprintf("%q is not a bookable slot", req.Time))
	}
	return nil
}

// notifyAsync fires a notification without holding the request open. Failures
// are logged and dropped; they are never a booking failure.
func (s *DefaultBookingService) notifyAsync(fn func(ctx context.Context) error, event, bookingID string) {
	if s.Notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.Logger.Warn("notification failed",
				zap.String("event", event),
				zap.String("bookingId", bookingID),
				zap.Error(err),
			)
		}
	}()
}
