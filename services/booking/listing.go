package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "servehub/database/repository/booking"
	"servehub/models"

	"go.uber.org/zap"
)

const snippetTTL = 10 * time.Minute

// ListForCustomer returns the customer's bookings, most recent first, each
// carrying the provider's display data joined at read time.
func (s *DefaultBookingService) ListForCustomer(ctx context.Context, customerID string, page, limit int) ([]models.BookingView, error) {
	bookings, err := s.Repo.ListByCustomer(ctx, customerID, bookingRepo.ListOptions{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("listing customer bookings: %w", err)
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		view.Provider = s.providerSnippet(ctx, b.ProviderID)
		views = append(views, view)
	}
	return views, nil
}

// ListForProvider returns the provider's bookings, most recent first, each
// carrying the customer's display data joined at read time.
func (s *DefaultBookingService) ListForProvider(ctx context.Context, providerID string, page, limit int) ([]models.BookingView, error) {
	bookings, err := s.Repo.ListByProvider(ctx, providerID, bookingRepo.ListOptions{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("listing provider bookings: %w", err)
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		view.Customer = s.userSnippet(ctx, b.CustomerID)
		views = append(views, view)
	}
	return views, nil
}

// providerSnippet resolves display data for a provider, caching the result.
// Listings degrade gracefully: a failed lookup yields a nil snippet, never a
// failed listing.
func (s *DefaultBookingService) providerSnippet(ctx context.Context, providerID string) *models.ProviderSnippet {
	key := "snippet:provider:" + providerID
	var snippet models.ProviderSnippet
	if s.cacheGet(ctx, key, &snippet) {
		return &snippet
	}

	provider, err := s.ProviderRepo.GetByID(ctx, providerID)
	if err != nil {
		s.Logger.Warn("provider snippet lookup failed", zap.String("providerId", providerID), zap.Error(err))
		return nil
	}
	user, err := s.UserRepo.GetByID(ctx, provider.UserID)
	if err != nil {
		s.Logger.Warn("provider account lookup failed", zap.String("userId", provider.UserID), zap.Error(err))
		return nil
	}

	snippet = models.ProviderSnippet{
		ID:         provider.ID,
		Name:       user.Name,
		ProfilePic: user.ProfilePic,
		Services:   provider.Services,
		Location:   provider.Location,
		Charges:    provider.Charges,
	}
	s.cacheSet(ctx, key, snippet)
	return &snippet
}

// userSnippet resolves display data for a customer, caching the result.
func (s *DefaultBookingService) userSnippet(ctx context.Context, userID string) *models.UserSnippet {
	key := "snippet:user:" + userID
	var snippet models.UserSnippet
	if s.cacheGet(ctx, key, &snippet) {
		return &snippet
	}

	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		s.Logger.Warn("user snippet lookup failed", zap.String("userId", userID), zap.Error(err))
		return nil
	}

	snippet = models.UserSnippet{
		ID:         user.ID,
		Name:       user.Name,
		ProfilePic: user.ProfilePic,
	}
	s.cacheSet(ctx, key, snippet)
	return &snippet
}

func (s *DefaultBookingService) cacheGet(ctx context.Context, key string, out any) bool {
	if s.Cache == nil {
		return false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), out) == nil
}

func (s *DefaultBookingService) cacheSet(ctx context.Context, key string, v any) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, snippetTTL).Err(); err != nil {
		s.Logger.Debug("snippet cache write failed", zap.String("key", key), zap.Error(err))
	}
}
