package review

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	bookingRepo "servehub/database/repository/booking"
	providerRepo "servehub/database/repository/provider"
	reviewRepo "servehub/database/repository/review"
	userRepo "servehub/database/repository/user"
	"servehub/models"
	"servehub/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxCommentLength = 500

// Service owns review writes and the provider rating projection.
type Service interface {
	// SubmitReview creates or updates the caller's review of a provider and
	// recomputes the provider's aggregate rating. Gated on a completed
	// booking between the two parties.
	SubmitReview(ctx context.Context, customerID, providerID string, rating int, comment string) (*models.Review, error)
	// RecomputeProviderRating rebuilds the rating projection from the full
	// review set. Idempotent; safe to call repeatedly.
	RecomputeProviderRating(ctx context.Context, providerID string) (*models.RatingSummary, error)
	// ListProviderReviews returns a provider's reviews, newest first, with
	// reviewer display data attached.
	ListProviderReviews(ctx context.Context, providerID string) ([]models.ReviewView, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo         reviewRepo.ReviewRepository
	BookingRepo  bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	UserRepo     userRepo.UserRepository
	Notifier     notification.Service
	Logger       *zap.Logger
}

func (s *DefaultReviewService) SubmitReview(ctx context.Context, customerID, providerID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if len(comment) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidRating, maxCommentLength)
	}

	if _, err := s.ProviderRepo.GetByID(ctx, providerID); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching provider: %w", err)
	}

	// The gate: only customers who actually received the service may review.
	completed, err := s.BookingRepo.HasCompletedBooking(ctx, customerID, providerID)
	if err != nil {
		return nil, fmt.Errorf("checking completed bookings: %w", err)
	}
	if !completed {
		return nil, ErrNotAllowed
	}

	now := time.Now()
	review := &models.Review{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ProviderID: providerID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := s.Repo.Upsert(ctx, review); err != nil {
		return nil, fmt.Errorf("storing review: %w", err)
	}

	if _, err := s.RecomputeProviderRating(ctx, providerID); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.Notifier.NotifyReviewReceived(ctx, review); err != nil {
				s.Logger.Warn("review notification failed",
					zap.String("providerId", providerID),
					zap.Error(err),
				)
			}
		}()
	}

	return review, nil
}

// RecomputeProviderRating always rebuilds the projection from every review on
// file, rounded to one decimal. Replays and retries land on the same values,
// so the aggregate cannot drift the way incremental patches would.
func (s *DefaultReviewService) RecomputeProviderRating(ctx context.Context, providerID string) (*models.RatingSummary, error) {
	average, total, err := s.Repo.AggregateProviderRating(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("aggregating reviews: %w", err)
	}

	rounded := math.Round(average*10) / 10
	if err := s.ProviderRepo.UpdateRating(ctx, providerID, rounded, total); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("writing rating projection: %w", err)
	}

	return &models.RatingSummary{AverageRating: rounded, TotalReviews: total}, nil
}

func (s *DefaultReviewService) ListProviderReviews(ctx context.Context, providerID string) ([]models.ReviewView, error) {
	reviews, err := s.Repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}

	views := make([]models.ReviewView, 0, len(reviews))
	for _, rv := range reviews {
		view := models.ReviewView{Review: rv}
		if user, err := s.UserRepo.GetByID(ctx, rv.CustomerID); err == nil {
			view.Customer = &models.UserSnippet{
				ID:         user.ID,
				Name:       user.Name,
				ProfilePic: user.ProfilePic,
			}
		}
		views = append(views, view)
	}
	return views, nil
}
