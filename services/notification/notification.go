package notification

import (
	"context"
	"fmt"

	providerRepo "servehub/database/repository/provider"
	userRepo "servehub/database/repository/user"
	"servehub/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService resolves recipient addresses and enqueues email
// tasks on the asynq queue. Sending happens in the background worker; a full
// queue or broker outage is reported to the caller, who logs and moves on.
type DefaultNotificationService struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Queue     *asynq.Client
	Logger    *zap.Logger
}

func NewDefaultNotificationService(
	users userRepo.UserRepository,
	providers providerRepo.ProviderRepository,
	queue *asynq.Client,
	logger *zap.Logger,
) *DefaultNotificationService {
	return &DefaultNotificationService{
		Users:     users,
		Providers: providers,
		Queue:     queue,
		Logger:    logger,
	}
}

// parties resolves the customer and the provider's account user for a booking.
func (s *DefaultNotificationService) parties(ctx context.Context, customerID, providerID string) (customer, providerUser *models.User, err error) {
	customer, err = s.Users.GetByID(ctx, customerID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve customer %s: %w", customerID, err)
	}
	provider, err := s.Providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve provider %s: %w", providerID, err)
	}
	providerUser, err = s.Users.GetByID(ctx, provider.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve provider account %s: %w", provider.UserID, err)
	}
	return customer, providerUser, nil
}

func (s *DefaultNotificationService) enqueue(to, subject, html string) error {
	task, err := NewEmailTask(EmailPayload{To: to, Subject: subject, HTML: html})
	if err != nil {
		return err
	}
	if _, err := s.Queue.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("enqueue email to %s: %w", to, err)
	}
	return nil
}

func (s *DefaultNotificationService) NotifyBookingCreated(ctx context.Context, booking *models.Booking) error {
	customer, providerUser, err := s.parties(ctx, booking.CustomerID, booking.ProviderID)
	if err != nil {
		return err
	}

	customerHTML, err := render(customerBookingTmpl, bookingEmailData{
		Name:        customer.Name,
		Counterpart: providerUser.Name,
		Service:     booking.Service,
		Date:        booking.Date,
		Time:        booking.Time,
	})
	if err != nil {
		return err
	}
	if err := s.enqueue(customer.Email, "Booking Confirmed – ServeHub", customerHTML); err != nil {
		return err
	}

	providerHTML, err := render(providerBookingTmpl, bookingEmailData{
		Name:        providerUser.Name,
		Counterpart: customer.Name,
		Service:     booking.Service,
		Date:        booking.Date,
		Time:        booking.Time,
	})
	if err != nil {
		return err
	}
	return s.enqueue(providerUser.Email, "New Booking Request – ServeHub", providerHTML)
}

func (s *DefaultNotificationService) NotifyBookingStatus(ctx context.Context, booking *models.Booking) error {
	customer, providerUser, err := s.parties(ctx, booking.CustomerID, booking.ProviderID)
	if err != nil {
		return err
	}

	html, err := render(statusUpdateTmpl, bookingEmailData{
		Name:        customer.Name,
		Counterpart: providerUser.Name,
		Date:        booking.Date,
		Time:        booking.Time,
		Status:      string(booking.Status),
	})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Booking %s – ServeHub", booking.Status)
	return s.enqueue(customer.Email, subject, html)
}

func (s *DefaultNotificationService) NotifyReviewReceived(ctx context.Context, review *models.Review) error {
	customer, providerUser, err := s.parties(ctx, review.CustomerID, review.ProviderID)
	if err != nil {
		return err
	}

	html, err := render(reviewReceivedTmpl, reviewEmailData{
		ProviderName: providerUser.Name,
		CustomerName: customer.Name,
		Rating:       review.Rating,
		Comment:      review.Comment,
	})
	if err != nil {
		return err
	}
	return s.enqueue(providerUser.Email, "New Review Received on ServeHub", html)
}
