package cron

import (
	"context"
	"time"

	providerRepo "servehub/database/repository/provider"
	"servehub/services/review"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InitRatingReconciler schedules a nightly sweep that recomputes every
// provider's rating projection from the full review set. The recompute is
// idempotent, so the sweep only repairs drift (e.g. a crashed recompute after
// a review write); it never changes a correct aggregate.
func InitRatingReconciler(providers providerRepo.ProviderRepository, reviews review.Service, logger *zap.Logger) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("30 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		ids, err := providers.ListIDs(ctx)
		if err != nil {
			logger.Error("rating reconcile: listing providers failed", zap.Error(err))
			return
		}
		for _, id := range ids {
			if _, err := reviews.RecomputeProviderRating(ctx, id); err != nil {
				logger.Warn("rating reconcile failed for provider",
					zap.String("providerId", id),
					zap.Error(err),
				)
			}
		}
		logger.Info("rating reconcile sweep finished", zap.Int("providers", len(ids)))
	})
	if err != nil {
		logger.Error("failed to schedule rating reconciler", zap.Error(err))
		return c
	}
	c.Start()
	return c
}
