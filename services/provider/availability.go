package provider

import (
	"context"
	"errors"
	"fmt"

	providerRepo "servehub/database/repository/provider"
	"servehub/models"
)

// ErrNotFound is returned when the referenced provider does not exist.
var ErrNotFound = errors.New("provider not found")

// ErrForbidden is returned when the caller's account does not own the
// provider record being edited.
var ErrForbidden = errors.New("caller does not own this provider")

// AvailabilityService owns reads and writes of a provider's recurring weekly
// open hours. The booking core consumes the result read-only.
type AvailabilityService interface {
	GetWeeklyAvailability(ctx context.Context, providerID string) ([]models.DayAvailability, error)
	// UpdateWeeklyAvailability replaces the schedule. callerUserID is the
	// authenticated account id and must match the provider's owning user.
	UpdateWeeklyAvailability(ctx context.Context, providerID, callerUserID string, availability []models.DayAvailability) error
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo providerRepo.ProviderRepository
}

func (s *DefaultAvailabilityService) GetWeeklyAvailability(ctx context.Context, providerID string) ([]models.DayAvailability, error) {
	p, err := s.Repo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching provider: %w", err)
	}
	return p.Availability, nil
}

// UpdateWeeklyAvailability checks ownership and validates the schedule shape
// before any write: one entry per day, well-formed HH:MM ranges, no same-day
// overlap. The token subject is a user account id, so ownership compares it
// against the provider's UserID, never the provider document id.
func (s *DefaultAvailabilityService) UpdateWeeklyAvailability(ctx context.Context, providerID, callerUserID string, availability []models.DayAvailability) error {
	p, err := s.Repo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("fetching provider: %w", err)
	}
	if p.UserID != callerUserID {
		return ErrForbidden
	}

	if err := models.ValidateAvailability(availability); err != nil {
		return err
	}
	if err := s.Repo.UpdateAvailability(ctx, providerID, availability); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("updating availability: %w", err)
	}
	return nil
}
